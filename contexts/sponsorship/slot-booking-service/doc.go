// Package slotbookingservice sells one sponsor slot per calendar day.
//
// Slots move available -> reserved -> booked -> approved. Reservations are a
// compare-and-swap on the slot row and lapse back to available after the
// reservation TTL. Booking is driven by the payment webhook; approval by a
// claim that presents the provider's payment reference.
package slotbookingservice
