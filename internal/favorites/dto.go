package favorites

import (
	"time"

	"github.com/google/uuid"

	"github.com/influmatch/influmatch-backend/internal/influencers"
)

// FavoriteDTO wraps the influencer profile included in a favorites row.
type FavoriteDTO struct {
	ID         uuid.UUID                 `json:"id"`
	Influencer influencers.InfluencerDTO `json:"influencer"`
	CreatedAt  time.Time                 `json:"created_at"`
}
