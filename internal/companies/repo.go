package companies

import (
	"context"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes company profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a companies repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new company profile and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateCompanyDTO) (*models.Company, error) {
	company := dto.ToModel()
	company.ID = uuid.New()
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// FindByID loads a company profile by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// FindByUserID loads the company profile owned by the given user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &company, nil
}
