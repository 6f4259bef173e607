package influencers

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates influencer profile persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an influencers repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new influencer profile and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateInfluencerDTO) (*models.Influencer, error) {
	influencer := dto.ToModel()
	influencer.ID = uuid.New()
	if err := r.db.WithContext(ctx).Create(influencer).Error; err != nil {
		return nil, err
	}
	return influencer, nil
}

// FindByID loads a profile by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	var influencer models.Influencer
	if err := r.db.WithContext(ctx).First(&influencer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &influencer, nil
}

// FindByUserID loads the profile owned by the given user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Influencer, error) {
	var influencer models.Influencer
	if err := r.db.WithContext(ctx).First(&influencer, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &influencer, nil
}

// FindDetailByID loads a profile joined with the owning user's email.
func (r *Repository) FindDetailByID(ctx context.Context, id uuid.UUID) (*InfluencerDTO, error) {
	var record influencerDetailRecord
	err := r.db.WithContext(ctx).
		Table("influencers i").
		Select("i.*, u.email AS owner_email").
		Joins("JOIN users u ON u.id = i.user_id").
		Where("i.id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return record.toDTO(), nil
}

// List returns approved profiles matching the filters, newest first.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]InfluencerDTO, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Influencer{}).
		Where("is_approved = ?", true)

	if filters.Platform != nil {
		query = query.Where("platform = ?", *filters.Platform)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.MinFollowers != nil {
		query = query.Where("followers_count >= ?", *filters.MinFollowers)
	}
	if filters.MaxFollowers != nil {
		query = query.Where("followers_count <= ?", *filters.MaxFollowers)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(COALESCE(bio, '')) LIKE ?", needle, needle)
	}
	if filters.ExcludeUserID != uuid.Nil {
		query = query.Where("user_id <> ?", filters.ExcludeUserID)
	}

	var records []models.Influencer
	if err := query.Order("created_at DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	items := make([]InfluencerDTO, 0, len(records))
	for i := range records {
		items = append(items, *FromModel(&records[i]))
	}
	return items, nil
}

// Update applies the allow-listed column map and returns the fresh row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Influencer, error) {
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.Influencer{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

type influencerDetailRecord struct {
	models.Influencer
	OwnerEmail string `gorm:"column:owner_email"`
}

func (r influencerDetailRecord) toDTO() *InfluencerDTO {
	dto := FromModel(&r.Influencer)
	if r.OwnerEmail != "" {
		email := r.OwnerEmail
		dto.Email = &email
	}
	return dto
}
