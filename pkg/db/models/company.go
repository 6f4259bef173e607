package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is the brand profile owned by a user with the company role.
// One profile per user, created alongside registration.
type Company struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:companies_user_id_key"`
	CompanyName   string    `gorm:"column:company_name;not null"`
	Industry      *string   `gorm:"column:industry"`
	Description   *string   `gorm:"column:description"`
	ContactPerson *string   `gorm:"column:contact_person"`
	ContactEmail  *string   `gorm:"column:contact_email"`
	Website       *string   `gorm:"column:website"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
