package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates or updates the sponsor_slots table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&slotModel{})
}

func (r *Repository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("status = ? AND reserved_until IS NOT NULL AND reserved_until < ?", string(entities.StatusReserved), now.UTC()).
		Updates(map[string]any{
			"status":         string(entities.StatusAvailable),
			"reserved_until": nil,
			"updated_at":     now.UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *Repository) ListFrom(ctx context.Context, fromDate string) ([]entities.Slot, error) {
	var rows []slotModel
	if err := r.db.WithContext(ctx).
		Where("slot_date >= ?", fromDate).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "slot_date"}}).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Slot, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ReserveAvailable(ctx context.Context, date string, until time.Time, now time.Time) (entities.Slot, error) {
	var reserved slotModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&slotModel{}).
			Where("slot_date = ? AND status = ?", date, string(entities.StatusAvailable)).
			Updates(map[string]any{
				"status":         string(entities.StatusReserved),
				"reserved_until": until.UTC(),
				"updated_at":     now.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrSlotConflict
		}
		return tx.Where("slot_date = ?", date).First(&reserved).Error
	})
	if err != nil {
		return entities.Slot{}, err
	}
	return reserved.toEntity(), nil
}

func (r *Repository) MarkBooked(ctx context.Context, slotID string, paymentRef string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("id = ? AND status <> ?", slotID, string(entities.StatusApproved)).
		Updates(map[string]any{
			"paid":           true,
			"status":         string(entities.StatusBooked),
			"payment_ref":    paymentRef,
			"reserved_until": nil,
			"updated_at":     now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	// Nothing changed: either the slot is already approved or it does not exist.
	if _, err := r.GetSlot(ctx, slotID); err != nil {
		return err
	}
	return nil
}

func (r *Repository) Claim(
	ctx context.Context,
	slotID string,
	paymentRef string,
	content entities.SponsorContent,
	now time.Time,
) (entities.Slot, error) {
	var claimed slotModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&slotModel{}).
			Where("id = ? AND paid = ? AND status = ? AND payment_ref = ?",
				slotID, true, string(entities.StatusBooked), paymentRef).
			Updates(map[string]any{
				"sponsor_name": content.SponsorName,
				"headline":     content.Headline,
				"body":         content.Body,
				"url":          content.URL,
				"image_url":    content.ImageURL,
				"status":       string(entities.StatusApproved),
				"updated_at":   now.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrSlotNotClaimable
		}
		return tx.Where("id = ?", slotID).First(&claimed).Error
	})
	if err != nil {
		return entities.Slot{}, err
	}
	return claimed.toEntity(), nil
}

func (r *Repository) GetSlot(ctx context.Context, slotID string) (entities.Slot, error) {
	var row slotModel
	if err := r.db.WithContext(ctx).Where("id = ?", slotID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Slot{}, domainerrors.ErrSlotNotFound
		}
		return entities.Slot{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetApprovedForDate(ctx context.Context, date string) (entities.Slot, error) {
	var row slotModel
	err := r.db.WithContext(ctx).
		Where("slot_date = ? AND status = ?", date, string(entities.StatusApproved)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Slot{}, domainerrors.ErrSlotNotFound
		}
		return entities.Slot{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) IncrementClicks(ctx context.Context, slotID string) error {
	return r.increment(ctx, slotID, "clicks")
}

func (r *Repository) IncrementImpressions(ctx context.Context, slotID string) error {
	return r.increment(ctx, slotID, "impressions")
}

func (r *Repository) increment(ctx context.Context, slotID string, column string) error {
	result := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("id = ?", slotID).
		UpdateColumn(column, gorm.Expr("COALESCE("+column+", 0) + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSlotNotFound
	}
	return nil
}

func (r *Repository) SeedSlots(ctx context.Context, slots []entities.Slot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	rows := make([]slotModel, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, slotModelFromEntity(slot))
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_date"}},
			DoNothing: true,
		}).
		Create(&rows)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

type slotModel struct {
	ID            string     `gorm:"column:id;primaryKey;type:varchar(64)"`
	SlotDate      string     `gorm:"column:slot_date;type:varchar(10);uniqueIndex:sponsor_slots_date_key;not null"`
	Status        string     `gorm:"column:status;type:varchar(16);not null;index"`
	ReservedUntil *time.Time `gorm:"column:reserved_until"`
	Paid          bool       `gorm:"column:paid;not null"`
	PaymentRef    string     `gorm:"column:payment_ref"`
	SponsorName   string     `gorm:"column:sponsor_name"`
	Headline      string     `gorm:"column:headline"`
	Body          string     `gorm:"column:body;type:text"`
	URL           string     `gorm:"column:url"`
	ImageURL      string     `gorm:"column:image_url"`
	Impressions   int64      `gorm:"column:impressions;not null;default:0"`
	Clicks        int64      `gorm:"column:clicks;not null;default:0"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null"`
}

func (slotModel) TableName() string {
	return "sponsor_slots"
}

func slotModelFromEntity(slot entities.Slot) slotModel {
	var until *time.Time
	if slot.ReservedUntil != nil {
		value := slot.ReservedUntil.UTC()
		until = &value
	}
	return slotModel{
		ID:            slot.SlotID,
		SlotDate:      slot.Date,
		Status:        string(slot.Status),
		ReservedUntil: until,
		Paid:          slot.Paid,
		PaymentRef:    slot.PaymentRef,
		SponsorName:   slot.SponsorName,
		Headline:      slot.Headline,
		Body:          slot.Body,
		URL:           slot.URL,
		ImageURL:      slot.ImageURL,
		Impressions:   slot.Impressions,
		Clicks:        slot.Clicks,
		CreatedAt:     slot.CreatedAt.UTC(),
		UpdatedAt:     slot.UpdatedAt.UTC(),
	}
}

func (m slotModel) toEntity() entities.Slot {
	var until *time.Time
	if m.ReservedUntil != nil {
		value := m.ReservedUntil.UTC()
		until = &value
	}
	return entities.Slot{
		SlotID:        m.ID,
		Date:          m.SlotDate,
		Status:        entities.Status(m.Status),
		ReservedUntil: until,
		Paid:          m.Paid,
		PaymentRef:    m.PaymentRef,
		SponsorName:   m.SponsorName,
		Headline:      m.Headline,
		Body:          m.Body,
		URL:           m.URL,
		ImageURL:      m.ImageURL,
		Impressions:   m.Impressions,
		Clicks:        m.Clicks,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}
