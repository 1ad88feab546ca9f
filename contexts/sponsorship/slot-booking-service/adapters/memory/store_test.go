package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
)

func available(id string, date string) entities.Slot {
	return entities.Slot{SlotID: id, Date: date, Status: entities.StatusAvailable}
}

func TestReserveAvailableRaceHasOneWinner(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewStore([]entities.Slot{available("slot-1", "2026-07-04")})
	now := time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC)

	const contenders = 16
	var (
		wins      atomic.Int64
		conflicts atomic.Int64
		wg        sync.WaitGroup
	)
	start := make(chan struct{})
	wg.Add(contenders)
	for i := 0; i < contenders; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err := store.ReserveAvailable(context.Background(), "2026-07-04", now.Add(30*time.Minute), now)
			if err == nil {
				wins.Add(1)
				return
			}
			if errors.Is(err, domainerrors.ErrSlotConflict) {
				conflicts.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if wins.Load() != 1 || conflicts.Load() != contenders-1 {
		t.Fatalf("expected 1 win and %d conflicts, got %d/%d", contenders-1, wins.Load(), conflicts.Load())
	}
}

func TestSweepExpiredOneSecondEitherSide(t *testing.T) {
	now := time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Second)
	store := NewStore([]entities.Slot{
		{SlotID: "lapsed", Date: "2026-07-02", Status: entities.StatusReserved, ReservedUntil: &past},
		{SlotID: "held", Date: "2026-07-03", Status: entities.StatusReserved, ReservedUntil: &future},
	})

	released, err := store.SweepExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if released != 1 {
		t.Fatalf("expected one release, got %d", released)
	}
	lapsed, _ := store.GetSlot(context.Background(), "lapsed")
	if lapsed.Status != entities.StatusAvailable || lapsed.ReservedUntil != nil {
		t.Fatalf("expected lapsed slot available, got %+v", lapsed)
	}
	held, _ := store.GetSlot(context.Background(), "held")
	if held.Status != entities.StatusReserved || held.ReservedUntil == nil || !held.ReservedUntil.Equal(future) {
		t.Fatalf("expected held slot unchanged, got %+v", held)
	}
}

func TestMarkBookedLeavesApprovedAlone(t *testing.T) {
	store := NewStore([]entities.Slot{{SlotID: "s", Date: "2026-07-05", Status: entities.StatusApproved, Paid: true, PaymentRef: "pay_1"}})
	if err := store.MarkBooked(context.Background(), "s", "pay_2", time.Now()); err != nil {
		t.Fatalf("mark booked failed: %v", err)
	}
	slot, _ := store.GetSlot(context.Background(), "s")
	if slot.Status != entities.StatusApproved || slot.PaymentRef != "pay_1" {
		t.Fatalf("approved slot changed: %+v", slot)
	}
	if err := store.MarkBooked(context.Background(), "nope", "pay", time.Now()); !errors.Is(err, domainerrors.ErrSlotNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReturnedSlotsDoNotAlias(t *testing.T) {
	store := NewStore([]entities.Slot{available("slot-1", "2026-07-06")})
	now := time.Now().UTC()
	reserved, err := store.ReserveAvailable(context.Background(), "2026-07-06", now.Add(time.Minute), now)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	*reserved.ReservedUntil = now.Add(-time.Hour)
	if released, _ := store.SweepExpired(context.Background(), now); released != 0 {
		t.Fatal("mutating a returned slot must not affect the store")
	}
}
