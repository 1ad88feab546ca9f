package services

import "testing"

func TestClaimTokensBindToSlotAndSecret(t *testing.T) {
	tokens := ClaimTokens{Secret: "claim-secret"}
	token := tokens.Issue("slot-1")
	if token == "" {
		t.Fatal("expected a token")
	}
	if !tokens.Valid("slot-1", token) {
		t.Fatal("expected issued token to validate")
	}
	if tokens.Valid("slot-2", token) {
		t.Fatal("token must not validate for another slot")
	}
	if (ClaimTokens{Secret: "other"}).Valid("slot-1", token) {
		t.Fatal("token must not validate under another secret")
	}
	if tokens.Valid("slot-1", "") {
		t.Fatal("empty token must not validate")
	}
}

func TestClaimTokensDisabledWithoutSecret(t *testing.T) {
	tokens := ClaimTokens{}
	if tokens.Enabled() || tokens.Issue("slot-1") != "" {
		t.Fatal("expected tokens to be disabled")
	}
	if tokens.Valid("slot-1", "") {
		t.Fatal("disabled tokens must never validate")
	}
}
