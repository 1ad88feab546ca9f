package httptransport

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Webhook-Signature"

// MaxBodyBytes bounds webhook payloads read into memory.
const MaxBodyBytes = 1 << 20

type ConfirmPaymentResponse struct {
	SlotID     string
	PaymentRef string
}
