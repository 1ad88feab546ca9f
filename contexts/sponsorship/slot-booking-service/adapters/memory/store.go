package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
)

// Store is an in-memory slot repository for local runtime and tests. Each
// method holds the lock for its whole transition, which gives the same
// single-row atomicity the SQL adapter gets from conditional updates.
type Store struct {
	mu       sync.RWMutex
	slots    map[string]entities.Slot
	byDate   map[string]string
	sequence uint64
}

func NewStore(seed []entities.Slot) *Store {
	s := &Store{
		slots:  make(map[string]entities.Slot, len(seed)),
		byDate: make(map[string]string, len(seed)),
	}
	for _, slot := range seed {
		s.slots[slot.SlotID] = slot
		s.byDate[slot.Date] = slot.SlotID
	}
	return s
}

func (s *Store) SweepExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var released int64
	for id, slot := range s.slots {
		if !slot.ReservationExpired(now) {
			continue
		}
		slot.Status = entities.StatusAvailable
		slot.ReservedUntil = nil
		slot.UpdatedAt = now
		s.slots[id] = slot
		released++
	}
	return released, nil
}

func (s *Store) ListFrom(_ context.Context, fromDate string) ([]entities.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Slot, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.Date >= fromDate {
			items = append(items, cloneSlot(slot))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date < items[j].Date })
	return items, nil
}

func (s *Store) ReserveAvailable(_ context.Context, date string, until time.Time, now time.Time) (entities.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byDate[date]
	if !ok {
		return entities.Slot{}, domainerrors.ErrSlotConflict
	}
	slot := s.slots[id]
	if slot.Status != entities.StatusAvailable {
		return entities.Slot{}, domainerrors.ErrSlotConflict
	}
	until = until.UTC()
	slot.Status = entities.StatusReserved
	slot.ReservedUntil = &until
	slot.UpdatedAt = now
	s.slots[id] = slot
	return cloneSlot(slot), nil
}

func (s *Store) MarkBooked(_ context.Context, slotID string, paymentRef string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[slotID]
	if !ok {
		return domainerrors.ErrSlotNotFound
	}
	if slot.Status == entities.StatusApproved {
		return nil
	}
	slot.Paid = true
	slot.Status = entities.StatusBooked
	slot.PaymentRef = paymentRef
	slot.ReservedUntil = nil
	slot.UpdatedAt = now
	s.slots[slotID] = slot
	return nil
}

func (s *Store) Claim(_ context.Context, slotID string, paymentRef string, content entities.SponsorContent, now time.Time) (entities.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[slotID]
	if !ok || !slot.Claimable() || slot.PaymentRef != paymentRef {
		return entities.Slot{}, domainerrors.ErrSlotNotClaimable
	}
	slot.SponsorName = content.SponsorName
	slot.Headline = content.Headline
	slot.Body = content.Body
	slot.URL = content.URL
	slot.ImageURL = content.ImageURL
	slot.Status = entities.StatusApproved
	slot.UpdatedAt = now
	s.slots[slotID] = slot
	return cloneSlot(slot), nil
}

func (s *Store) GetSlot(_ context.Context, slotID string) (entities.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[slotID]
	if !ok {
		return entities.Slot{}, domainerrors.ErrSlotNotFound
	}
	return cloneSlot(slot), nil
}

func (s *Store) GetApprovedForDate(_ context.Context, date string) (entities.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byDate[date]
	if !ok {
		return entities.Slot{}, domainerrors.ErrSlotNotFound
	}
	slot := s.slots[id]
	if slot.Status != entities.StatusApproved {
		return entities.Slot{}, domainerrors.ErrSlotNotFound
	}
	return cloneSlot(slot), nil
}

func (s *Store) IncrementClicks(_ context.Context, slotID string) error {
	return s.increment(slotID, func(slot *entities.Slot) { slot.Clicks++ })
}

func (s *Store) IncrementImpressions(_ context.Context, slotID string) error {
	return s.increment(slotID, func(slot *entities.Slot) { slot.Impressions++ })
}

func (s *Store) increment(slotID string, apply func(*entities.Slot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[slotID]
	if !ok {
		return domainerrors.ErrSlotNotFound
	}
	apply(&slot)
	s.slots[slotID] = slot
	return nil
}

func (s *Store) SeedSlots(_ context.Context, slots []entities.Slot) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var inserted int64
	for _, slot := range slots {
		if _, exists := s.byDate[slot.Date]; exists {
			continue
		}
		if _, exists := s.slots[slot.SlotID]; exists {
			return inserted, fmt.Errorf("duplicate slot id %s", slot.SlotID)
		}
		s.slots[slot.SlotID] = slot
		s.byDate[slot.Date] = slot.SlotID
		inserted++
	}
	return inserted, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("slot-%d", n), nil
}

func cloneSlot(slot entities.Slot) entities.Slot {
	if slot.ReservedUntil != nil {
		until := *slot.ReservedUntil
		slot.ReservedUntil = &until
	}
	return slot
}
