package favorites

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/internal/influencers"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates favorites persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a favorites repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a favorite and reports whether a new row was created.
// Duplicates are swallowed by the conflict clause.
func (r *Repository) Add(ctx context.Context, companyID, influencerID uuid.UUID) (bool, error) {
	if companyID == uuid.Nil || influencerID == uuid.Nil {
		return false, gorm.ErrInvalidValue
	}

	result := r.db.WithContext(ctx).
		Exec(`INSERT INTO favorites (id, company_id, influencer_id, created_at) VALUES (?, ?, ?, ?) ON CONFLICT (company_id, influencer_id) DO NOTHING`,
			uuid.New(), companyID, influencerID, time.Now().UTC())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Remove deletes the favorite if it exists and reports whether a row was removed.
func (r *Repository) Remove(ctx context.Context, companyID, influencerID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND influencer_id = ?", companyID, influencerID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByCompany returns the company's saved influencers, newest first.
func (r *Repository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]FavoriteDTO, error) {
	var records []favoriteRecord
	err := r.db.WithContext(ctx).
		Table("favorites f").
		Select("f.id AS favorite_id, f.created_at AS favorite_created_at, i.*, u.email AS owner_email").
		Joins("JOIN influencers i ON i.id = f.influencer_id").
		Joins("JOIN users u ON u.id = i.user_id").
		Where("f.company_id = ?", companyID).
		Order("f.created_at DESC").
		Order("f.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	items := make([]FavoriteDTO, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDTO())
	}
	return items, nil
}

type favoriteRecord struct {
	FavoriteID        uuid.UUID `gorm:"column:favorite_id"`
	FavoriteCreatedAt time.Time `gorm:"column:favorite_created_at"`
	models.Influencer
	OwnerEmail string `gorm:"column:owner_email"`
}

func (r favoriteRecord) toDTO() FavoriteDTO {
	dto := influencers.FromModel(&r.Influencer)
	if r.OwnerEmail != "" {
		email := r.OwnerEmail
		dto.Email = &email
	}
	return FavoriteDTO{
		ID:         r.FavoriteID,
		Influencer: *dto,
		CreatedAt:  r.FavoriteCreatedAt,
	}
}
