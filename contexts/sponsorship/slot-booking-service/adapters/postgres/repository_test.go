package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRepository runs the gorm adapter against in-memory sqlite. The
// sqlite driver needs cgo; the test is skipped where it cannot open.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := NewRepository(db, nil)
	if err := repo.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return repo
}

var baseTime = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T, repo *Repository, dates ...string) {
	t.Helper()
	slots := make([]entities.Slot, 0, len(dates))
	for _, date := range dates {
		slots = append(slots, entities.Slot{
			SlotID:    "slot-" + date,
			Date:      date,
			Status:    entities.StatusAvailable,
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
		})
	}
	if _, err := repo.SeedSlots(context.Background(), slots); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestSeedSlotsSkipsExistingDates(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo, "2026-06-01", "2026-06-02")

	inserted, err := repo.SeedSlots(context.Background(), []entities.Slot{
		{SlotID: "other-1", Date: "2026-06-02", Status: entities.StatusAvailable, CreatedAt: baseTime, UpdatedAt: baseTime},
		{SlotID: "other-2", Date: "2026-06-03", Status: entities.StatusAvailable, CreatedAt: baseTime, UpdatedAt: baseTime},
	})
	if err != nil {
		t.Fatalf("reseed failed: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("expected 1 new row, got %d", inserted)
	}
	slots, err := repo.ListFrom(context.Background(), "2026-06-02")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(slots) != 2 || slots[0].SlotID != "slot-2026-06-02" || slots[1].SlotID != "other-2" {
		t.Fatalf("unexpected slots %+v", slots)
	}
}

func TestReserveAvailableIsCompareAndSwap(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo, "2026-06-06")

	var wins atomic.Int64
	var conflicts atomic.Int64
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.ReserveAvailable(context.Background(), "2026-06-06", baseTime.Add(30*time.Minute), baseTime)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domainerrors.ErrSlotConflict):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	if wins.Load() != 1 || conflicts.Load() != 1 {
		t.Fatalf("expected one win and one conflict, got %d/%d", wins.Load(), conflicts.Load())
	}

	if _, err := repo.ReserveAvailable(context.Background(), "2030-01-01", baseTime, baseTime); !errors.Is(err, domainerrors.ErrSlotConflict) {
		t.Fatalf("expected conflict for unseeded date, got %v", err)
	}
}

func TestSweepExpiredBoundary(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo, "2026-06-10", "2026-06-11")
	ctx := context.Background()

	if _, err := repo.ReserveAvailable(ctx, "2026-06-10", baseTime.Add(-time.Second), baseTime.Add(-time.Hour)); err != nil {
		t.Fatalf("reserve past failed: %v", err)
	}
	if _, err := repo.ReserveAvailable(ctx, "2026-06-11", baseTime.Add(time.Second), baseTime.Add(-time.Hour)); err != nil {
		t.Fatalf("reserve future failed: %v", err)
	}

	released, err := repo.SweepExpired(ctx, baseTime)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if released != 1 {
		t.Fatalf("expected one release, got %d", released)
	}

	expired, _ := repo.GetSlot(ctx, "slot-2026-06-10")
	if expired.Status != entities.StatusAvailable || expired.ReservedUntil != nil {
		t.Fatalf("expected expired slot released, got %+v", expired)
	}
	pending, _ := repo.GetSlot(ctx, "slot-2026-06-11")
	if pending.Status != entities.StatusReserved || pending.ReservedUntil == nil {
		t.Fatalf("expected pending slot untouched, got %+v", pending)
	}
}

func TestBookClaimAndCounters(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo, "2026-06-12")
	ctx := context.Background()
	content := entities.SponsorContent{SponsorName: "Ink Co", Headline: "Write more", URL: "https://ink.example"}

	if _, err := repo.ReserveAvailable(ctx, "2026-06-12", baseTime.Add(time.Hour), baseTime); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if _, err := repo.Claim(ctx, "slot-2026-06-12", "pay_1", content, baseTime); !errors.Is(err, domainerrors.ErrSlotNotClaimable) {
		t.Fatalf("expected unpaid claim rejected, got %v", err)
	}
	unchanged, _ := repo.GetSlot(ctx, "slot-2026-06-12")
	if unchanged.Status != entities.StatusReserved || unchanged.SponsorName != "" {
		t.Fatalf("rejected claim mutated slot: %+v", unchanged)
	}

	if err := repo.MarkBooked(ctx, "slot-2026-06-12", "pay_1", baseTime); err != nil {
		t.Fatalf("mark booked failed: %v", err)
	}
	if err := repo.MarkBooked(ctx, "slot-2026-06-12", "pay_1", baseTime); err != nil {
		t.Fatalf("repeat mark booked failed: %v", err)
	}
	if _, err := repo.Claim(ctx, "slot-2026-06-12", "pay_other", content, baseTime); !errors.Is(err, domainerrors.ErrSlotNotClaimable) {
		t.Fatalf("expected wrong payment ref rejected, got %v", err)
	}
	approved, err := repo.Claim(ctx, "slot-2026-06-12", "pay_1", content, baseTime)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if approved.Status != entities.StatusApproved || approved.Headline != "Write more" {
		t.Fatalf("unexpected claimed slot %+v", approved)
	}

	if err := repo.MarkBooked(ctx, "slot-2026-06-12", "pay_2", baseTime); err != nil {
		t.Fatalf("mark booked on approved failed: %v", err)
	}
	if err := repo.MarkBooked(ctx, "missing", "pay_3", baseTime); !errors.Is(err, domainerrors.ErrSlotNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := repo.IncrementClicks(ctx, "slot-2026-06-12"); err != nil {
		t.Fatalf("click failed: %v", err)
	}
	if err := repo.IncrementImpressions(ctx, "slot-2026-06-12"); err != nil {
		t.Fatalf("impression failed: %v", err)
	}
	live, err := repo.GetApprovedForDate(ctx, "2026-06-12")
	if err != nil {
		t.Fatalf("approved lookup failed: %v", err)
	}
	if live.Status != entities.StatusApproved || live.PaymentRef != "pay_1" || live.Clicks != 1 || live.Impressions != 1 {
		t.Fatalf("unexpected live slot %+v", live)
	}
}
