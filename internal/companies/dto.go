package companies

import (
	"time"

	"github.com/google/uuid"

	"github.com/influmatch/influmatch-backend/pkg/db/models"
)

// CompanyDTO is the transport shape for a company profile.
type CompanyDTO struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	Industry      *string   `json:"industry,omitempty"`
	Description   *string   `json:"description,omitempty"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	ContactEmail  *string   `json:"contact_email,omitempty"`
	Website       *string   `json:"website,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateCompanyDTO holds the data required by the repo to persist a profile.
type CreateCompanyDTO struct {
	UserID        uuid.UUID
	CompanyName   string
	Industry      *string
	Description   *string
	ContactPerson *string
	ContactEmail  *string
	Website       *string
}

func FromModel(c *models.Company) *CompanyDTO {
	if c == nil {
		return nil
	}

	return &CompanyDTO{
		ID:            c.ID,
		UserID:        c.UserID,
		CompanyName:   c.CompanyName,
		Industry:      c.Industry,
		Description:   c.Description,
		ContactPerson: c.ContactPerson,
		ContactEmail:  c.ContactEmail,
		Website:       c.Website,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (c CreateCompanyDTO) ToModel() *models.Company {
	return &models.Company{
		UserID:        c.UserID,
		CompanyName:   c.CompanyName,
		Industry:      c.Industry,
		Description:   c.Description,
		ContactPerson: c.ContactPerson,
		ContactEmail:  c.ContactEmail,
		Website:       c.Website,
	}
}
