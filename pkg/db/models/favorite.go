package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a company profile to a saved influencer profile.
type Favorite struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyID    uuid.UUID `gorm:"column:company_id;type:uuid;not null;index:favorites_company_id_idx;uniqueIndex:favorites_company_influencer_key"`
	InfluencerID uuid.UUID `gorm:"column:influencer_id;type:uuid;not null;index:favorites_influencer_id_idx;uniqueIndex:favorites_company_influencer_key"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
