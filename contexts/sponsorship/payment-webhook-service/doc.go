// Package paymentwebhookservice authenticates payment provider callbacks and
// turns them into slot bookings. Signatures are HMAC-SHA256 over the raw body
// and every failure rejects the request without touching slot state.
package paymentwebhookservice
