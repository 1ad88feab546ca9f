package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"poemclub/contexts/publishing/poem-service/domain/entities"
	domainerrors "poemclub/contexts/publishing/poem-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
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

// Migrate creates or updates the poems table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&poemModel{})
}

func (r *Repository) ListPublicPoems(ctx context.Context, limit int) ([]entities.Poem, error) {
	var rows []poemModel
	if err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: false}).
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Poem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetPublicPoemBySubdomain(ctx context.Context, subdomain string) (entities.Poem, error) {
	var row poemModel
	err := r.db.WithContext(ctx).
		Where("subdomain = ? AND is_public = ?", subdomain, true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Poem{}, domainerrors.ErrPoemNotFound
		}
		return entities.Poem{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreatePoem(ctx context.Context, poem entities.Poem) error {
	row := poemModelFromEntity(poem)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrSubdomainTaken
		}
		return err
	}
	return nil
}

func (r *Repository) IncrementViews(ctx context.Context, poemID string) error {
	result := r.db.WithContext(ctx).
		Model(&poemModel{}).
		Where("id = ?", poemID).
		UpdateColumn("views", gorm.Expr("COALESCE(views, 0) + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPoemNotFound
	}
	return nil
}

type poemModel struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	Title     string    `gorm:"column:title;not null"`
	Content   string    `gorm:"column:content;type:text;not null"`
	Subdomain string    `gorm:"column:subdomain;type:varchar(63);uniqueIndex:poems_subdomain_key;not null"`
	Theme     string    `gorm:"column:theme"`
	Style     string    `gorm:"column:style"`
	IsPublic  bool      `gorm:"column:is_public;not null;index"`
	Views     int64     `gorm:"column:views;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index"`
}

func (poemModel) TableName() string {
	return "poems"
}

func poemModelFromEntity(poem entities.Poem) poemModel {
	return poemModel{
		ID:        poem.PoemID,
		Title:     poem.Title,
		Content:   poem.Content,
		Subdomain: poem.Subdomain,
		Theme:     poem.Theme,
		Style:     poem.Style,
		IsPublic:  poem.IsPublic,
		Views:     poem.Views,
		CreatedAt: poem.CreatedAt.UTC(),
	}
}

func (m poemModel) toEntity() entities.Poem {
	return entities.Poem{
		PoemID:    m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Subdomain: m.Subdomain,
		Theme:     m.Theme,
		Style:     m.Style,
		IsPublic:  m.IsPublic,
		Views:     m.Views,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
