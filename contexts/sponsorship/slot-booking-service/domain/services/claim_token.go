package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ClaimTokens signs slot ids. The token is handed to the sponsor at checkout
// and lets them claim the slot once it is paid, whatever payment reference
// the provider did or did not send.
type ClaimTokens struct {
	Secret string
}

func (c ClaimTokens) Enabled() bool {
	return strings.TrimSpace(c.Secret) != ""
}

// Issue returns the token for slotID, or "" when no secret is configured.
func (c ClaimTokens) Issue(slotID string) string {
	if !c.Enabled() || slotID == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write([]byte("sponsor-claim:" + slotID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c ClaimTokens) Valid(slotID string, token string) bool {
	expected := c.Issue(slotID)
	if expected == "" || token == "" {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(token))))
}
