package commands

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"poemclub/contexts/sponsorship/slot-booking-service/adapters/memory"
	"poemclub/contexts/sponsorship/slot-booking-service/adapters/paymentlink"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)

func testPricing() services.Pricing {
	return services.Pricing{BaseCents: 15000, WeekendSurchargeCents: 10000, Currency: "ZAR", Location: time.UTC}
}

func newReserveUseCase(store *memory.Store) ReserveSlotUseCase {
	return ReserveSlotUseCase{
		Slots:   store,
		Links:   paymentlink.Builder{Base: "https://pay.example.com/link"},
		Pricing: testPricing(),
		Clock:   fixedClock{now: testNow},
	}
}

func TestReserveSlotReturnsPaymentLink(t *testing.T) {
	store := memory.NewStore([]entities.Slot{{SlotID: "slot-sat", Date: "2026-06-06", Status: entities.StatusAvailable}})
	result, err := newReserveUseCase(store).Execute(context.Background(), ReserveSlotCommand{Date: "2026-06-06"})
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if result.AmountCents != 25000 || result.Currency != "ZAR" {
		t.Fatalf("unexpected price %d %s", result.AmountCents, result.Currency)
	}
	if result.Slot.Status != entities.StatusReserved || !result.Slot.ReservedUntil.Equal(testNow.Add(30*time.Minute)) {
		t.Fatalf("unexpected reservation %+v", result.Slot)
	}
	link, err := url.Parse(result.PaymentURL)
	if err != nil || link.Query().Get("reference") != "slot-sat" {
		t.Fatalf("unexpected payment url %q", result.PaymentURL)
	}

	if _, err := newReserveUseCase(store).Execute(context.Background(), ReserveSlotCommand{Date: "2026-06-06"}); !errors.Is(err, domainerrors.ErrSlotConflict) {
		t.Fatalf("expected conflict on second reserve, got %v", err)
	}
}

func TestReserveSlotReclaimsLapsedReservation(t *testing.T) {
	lapsed := testNow.Add(-time.Minute)
	store := memory.NewStore([]entities.Slot{{SlotID: "slot-1", Date: "2026-06-09", Status: entities.StatusReserved, ReservedUntil: &lapsed}})
	result, err := newReserveUseCase(store).Execute(context.Background(), ReserveSlotCommand{Date: "2026-06-09"})
	if err != nil {
		t.Fatalf("expected lapsed reservation to be reclaimed, got %v", err)
	}
	if result.AmountCents != 15000 {
		t.Fatalf("expected weekday price, got %d", result.AmountCents)
	}
}

func TestReserveSlotRejectsBadDates(t *testing.T) {
	store := memory.NewStore([]entities.Slot{{SlotID: "old", Date: "2026-05-01", Status: entities.StatusAvailable}})
	for _, date := range []string{"", "tomorrow", "2026-05-01"} {
		if _, err := newReserveUseCase(store).Execute(context.Background(), ReserveSlotCommand{Date: date}); !errors.Is(err, domainerrors.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", date, err)
		}
	}
	if _, err := newReserveUseCase(store).Execute(context.Background(), ReserveSlotCommand{Date: "2026-12-25"}); !errors.Is(err, domainerrors.ErrSlotConflict) {
		t.Fatalf("expected conflict for unseeded date, got %v", err)
	}
}

func TestReserveSlotSurfacesLinkFailure(t *testing.T) {
	store := memory.NewStore([]entities.Slot{{SlotID: "slot-1", Date: "2026-06-09", Status: entities.StatusAvailable}})
	useCase := newReserveUseCase(store)
	useCase.Links = paymentlink.Builder{}
	if _, err := useCase.Execute(context.Background(), ReserveSlotCommand{Date: "2026-06-09"}); !errors.Is(err, domainerrors.ErrPaymentLinkUnavailable) {
		t.Fatalf("expected ErrPaymentLinkUnavailable, got %v", err)
	}
}

func validClaim(slotID string, paymentRef string) ClaimSlotCommand {
	return ClaimSlotCommand{
		SlotID:      slotID,
		PaymentRef:  paymentRef,
		SponsorName: "Ink Co",
		Headline:    "Write more",
		Body:        "Fountain pens for everyone.",
		URL:         "https://ink.example",
	}
}

func TestClaimRequiresPaidBookedSlot(t *testing.T) {
	until := testNow.Add(10 * time.Minute)
	store := memory.NewStore([]entities.Slot{{SlotID: "slot-1", Date: "2026-06-09", Status: entities.StatusReserved, ReservedUntil: &until}})
	claim := ClaimSlotUseCase{Slots: store, Clock: fixedClock{now: testNow}}

	if _, err := claim.Execute(context.Background(), validClaim("slot-1", "slot-1")); !errors.Is(err, domainerrors.ErrSlotNotClaimable) {
		t.Fatalf("expected unpaid claim rejected, got %v", err)
	}
	before, _ := store.GetSlot(context.Background(), "slot-1")
	if before.Status != entities.StatusReserved || before.SponsorName != "" {
		t.Fatalf("rejected claim mutated slot: %+v", before)
	}

	book := MarkBookedUseCase{Slots: store, Clock: fixedClock{now: testNow}}
	if err := book.Execute(context.Background(), MarkBookedCommand{SlotID: "slot-1", PaymentRef: "pay_123"}); err != nil {
		t.Fatalf("mark booked failed: %v", err)
	}
	result, err := claim.Execute(context.Background(), validClaim("slot-1", "pay_123"))
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if result.Slot.Status != entities.StatusApproved || result.Slot.Headline != "Write more" {
		t.Fatalf("unexpected claimed slot %+v", result.Slot)
	}
}

func TestClaimValidatesInput(t *testing.T) {
	store := memory.NewStore([]entities.Slot{{SlotID: "slot-1", Date: "2026-06-09", Status: entities.StatusBooked, Paid: true, PaymentRef: "pay"}})
	claim := ClaimSlotUseCase{Slots: store}
	if _, err := claim.Execute(context.Background(), validClaim("", "pay")); !errors.Is(err, domainerrors.ErrInvalidSlotID) {
		t.Fatalf("expected ErrInvalidSlotID, got %v", err)
	}
	if _, err := claim.Execute(context.Background(), validClaim("slot-1", "")); !errors.Is(err, domainerrors.ErrSlotNotClaimable) {
		t.Fatalf("expected ErrSlotNotClaimable for empty ref, got %v", err)
	}
	bad := validClaim("slot-1", "pay")
	bad.URL = "not a url"
	if _, err := claim.Execute(context.Background(), bad); !errors.Is(err, domainerrors.ErrInvalidSponsorContent) {
		t.Fatalf("expected ErrInvalidSponsorContent, got %v", err)
	}
}

func TestMarkBookedRequiresSlotID(t *testing.T) {
	book := MarkBookedUseCase{Slots: memory.NewStore(nil)}
	if err := book.Execute(context.Background(), MarkBookedCommand{SlotID: " "}); !errors.Is(err, domainerrors.ErrInvalidSlotID) {
		t.Fatalf("expected ErrInvalidSlotID, got %v", err)
	}
	if err := book.Execute(context.Background(), MarkBookedCommand{SlotID: "ghost", PaymentRef: "pay"}); !errors.Is(err, domainerrors.ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestRecordClickAppendsUTM(t *testing.T) {
	store := memory.NewStore([]entities.Slot{
		{SlotID: "with-query", Date: "2026-06-01", Status: entities.StatusApproved, URL: "https://ink.example/p?ref=1"},
		{SlotID: "plain", Date: "2026-06-02", Status: entities.StatusApproved, URL: "https://ink.example"},
		{SlotID: "no-url", Date: "2026-06-03", Status: entities.StatusBooked, Paid: true},
	})
	useCase := RecordClickUseCase{Slots: store, Pricing: testPricing(), Clock: fixedClock{now: testNow}, UTMSource: "poemclub"}

	got := useCase.Execute(context.Background(), RecordClickCommand{SlotID: "with-query"}).RedirectURL
	if !strings.HasPrefix(got, "https://ink.example/p?ref=1&") {
		t.Fatalf("expected & separator, got %q", got)
	}
	parsed, _ := url.Parse(got)
	q := parsed.Query()
	if q.Get("utm_source") != "poemclub" || q.Get("utm_medium") != "sponsor" || q.Get("utm_campaign") != "2026-06-01" {
		t.Fatalf("unexpected utm params in %q", got)
	}
	if got := useCase.Execute(context.Background(), RecordClickCommand{SlotID: "plain"}).RedirectURL; !strings.HasPrefix(got, "https://ink.example?") {
		t.Fatalf("expected ? separator, got %q", got)
	}

	for _, id := range []string{"", "no-url", "missing"} {
		if got := useCase.Execute(context.Background(), RecordClickCommand{SlotID: id}).RedirectURL; got != "/" {
			t.Fatalf("expected home redirect for %q, got %q", id, got)
		}
	}

	slot, _ := store.GetSlot(context.Background(), "with-query")
	if slot.Clicks != 1 {
		t.Fatalf("expected one click, got %d", slot.Clicks)
	}
	noURL, _ := store.GetSlot(context.Background(), "no-url")
	if noURL.Clicks != 0 {
		t.Fatalf("expected no click without url, got %d", noURL.Clicks)
	}
}

func TestServeTodaysSponsorCountsImpression(t *testing.T) {
	store := memory.NewStore([]entities.Slot{
		{SlotID: "today", Date: "2026-06-01", Status: entities.StatusApproved, Headline: "Hi"},
		{SlotID: "tomorrow", Date: "2026-06-02", Status: entities.StatusApproved},
	})
	useCase := ServeTodaysSponsorUseCase{Slots: store, Pricing: testPricing(), Clock: fixedClock{now: testNow}}

	result := useCase.Execute(context.Background())
	if !result.Found || result.Slot.SlotID != "today" {
		t.Fatalf("expected today's sponsor, got %+v", result)
	}
	slot, _ := store.GetSlot(context.Background(), "today")
	if slot.Impressions != 1 {
		t.Fatalf("expected one impression, got %d", slot.Impressions)
	}

	empty := memory.NewStore([]entities.Slot{{SlotID: "booked", Date: "2026-06-01", Status: entities.StatusBooked, Paid: true}})
	if got := (ServeTodaysSponsorUseCase{Slots: empty, Pricing: testPricing(), Clock: fixedClock{now: testNow}}).Execute(context.Background()); got.Found {
		t.Fatal("unapproved slot must not be served")
	}
}

func TestClaimWithTokenUsesRecordedPaymentRef(t *testing.T) {
	store := memory.NewStore([]entities.Slot{{SlotID: "slot-1", Date: "2026-06-09", Status: entities.StatusAvailable}})
	tokens := services.ClaimTokens{Secret: "claim-secret"}
	reserve := newReserveUseCase(store)
	reserve.ClaimTokens = tokens

	reserved, err := reserve.Execute(context.Background(), ReserveSlotCommand{Date: "2026-06-09"})
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if reserved.ClaimToken != tokens.Issue("slot-1") {
		t.Fatalf("unexpected claim token %q", reserved.ClaimToken)
	}

	claim := ClaimSlotUseCase{Slots: store, ClaimTokens: tokens, Clock: fixedClock{now: testNow}}
	withToken := validClaim("slot-1", "")
	withToken.ClaimToken = reserved.ClaimToken
	if _, err := claim.Execute(context.Background(), withToken); !errors.Is(err, domainerrors.ErrSlotNotClaimable) {
		t.Fatalf("expected token to be useless before payment, got %v", err)
	}

	book := MarkBookedUseCase{Slots: store, Clock: fixedClock{now: testNow}}
	if err := book.Execute(context.Background(), MarkBookedCommand{SlotID: "slot-1", PaymentRef: "generated-3f2a"}); err != nil {
		t.Fatalf("mark booked failed: %v", err)
	}

	wrongSlot := withToken
	wrongSlot.ClaimToken = tokens.Issue("slot-2")
	if _, err := claim.Execute(context.Background(), wrongSlot); !errors.Is(err, domainerrors.ErrSlotNotClaimable) {
		t.Fatalf("expected another slot's token rejected, got %v", err)
	}

	result, err := claim.Execute(context.Background(), withToken)
	if err != nil {
		t.Fatalf("claim with token failed: %v", err)
	}
	if result.Slot.Status != entities.StatusApproved || result.Slot.PaymentRef != "generated-3f2a" {
		t.Fatalf("unexpected claimed slot %+v", result.Slot)
	}
}
