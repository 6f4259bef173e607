package influencers

import (
	"time"

	"github.com/google/uuid"

	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"github.com/influmatch/influmatch-backend/pkg/enums"
)

// InfluencerDTO is the transport shape for an influencer profile. Email is
// only populated on detail lookups that join the owning user.
type InfluencerDTO struct {
	ID               uuid.UUID            `json:"id"`
	UserID           uuid.UUID            `json:"user_id"`
	Name             string               `json:"name"`
	Bio              *string              `json:"bio,omitempty"`
	Platform         enums.Platform       `json:"platform"`
	Category         enums.Category       `json:"category"`
	FollowersCount   int64                `json:"followers_count"`
	AudienceGender   enums.AudienceGender `json:"audience_gender"`
	AudienceAgeRange *string              `json:"audience_age_range,omitempty"`
	AudienceCountry  *string              `json:"audience_country,omitempty"`
	InstagramURL     *string              `json:"instagram_url,omitempty"`
	YouTubeURL       *string              `json:"youtube_url,omitempty"`
	TikTokURL        *string              `json:"tiktok_url,omitempty"`
	TwitterURL       *string              `json:"twitter_url,omitempty"`
	LinkedInURL      *string              `json:"linkedin_url,omitempty"`
	ProfileImage     *string              `json:"profile_image,omitempty"`
	BannerImage      *string              `json:"banner_image,omitempty"`
	ContactEmail     *string              `json:"contact_email,omitempty"`
	IsApproved       bool                 `json:"is_approved"`
	Email            *string              `json:"email,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// CreateInfluencerRequest captures the payload for creating a profile.
type CreateInfluencerRequest struct {
	Name             string   `json:"name" validate:"required"`
	Bio              *string  `json:"bio" validate:"omitempty,max=2000"`
	Platform         string   `json:"platform" validate:"required,oneof=instagram youtube tiktok twitter linkedin"`
	Category         string   `json:"category" validate:"required,oneof=fashion fitness tech travel gaming food lifestyle beauty business"`
	FollowersCount   int64   `json:"followers_count" validate:"gte=0"`
	AudienceGender   *string `json:"audience_gender" validate:"omitempty,oneof=male female mixed"`
	AudienceAgeRange *string `json:"audience_age_range"`
	AudienceCountry  *string `json:"audience_country"`
	InstagramURL     *string  `json:"instagram_url" validate:"omitempty,url"`
	YouTubeURL       *string  `json:"youtube_url" validate:"omitempty,url"`
	TikTokURL        *string  `json:"tiktok_url" validate:"omitempty,url"`
	TwitterURL       *string  `json:"twitter_url" validate:"omitempty,url"`
	LinkedInURL      *string  `json:"linkedin_url" validate:"omitempty,url"`
	ProfileImage     *string  `json:"profile_image" validate:"omitempty,url"`
	BannerImage      *string  `json:"banner_image" validate:"omitempty,url"`
	ContactEmail     *string  `json:"contact_email" validate:"omitempty,email"`
}

// UpdateInfluencerRequest is the partial-update payload. Nil fields are left
// untouched. Ownership, approval state, and the owning user are never
// writable through this shape.
type UpdateInfluencerRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=1"`
	Bio              *string  `json:"bio" validate:"omitempty,max=2000"`
	Platform         *string  `json:"platform" validate:"omitempty,oneof=instagram youtube tiktok twitter linkedin"`
	Category         *string  `json:"category" validate:"omitempty,oneof=fashion fitness tech travel gaming food lifestyle beauty business"`
	FollowersCount   *int64  `json:"followers_count" validate:"omitempty,gte=0"`
	AudienceGender   *string `json:"audience_gender" validate:"omitempty,oneof=male female mixed"`
	AudienceAgeRange *string `json:"audience_age_range"`
	AudienceCountry  *string `json:"audience_country"`
	InstagramURL     *string  `json:"instagram_url" validate:"omitempty,url"`
	YouTubeURL       *string  `json:"youtube_url" validate:"omitempty,url"`
	TikTokURL        *string  `json:"tiktok_url" validate:"omitempty,url"`
	TwitterURL       *string  `json:"twitter_url" validate:"omitempty,url"`
	LinkedInURL      *string  `json:"linkedin_url" validate:"omitempty,url"`
	ProfileImage     *string  `json:"profile_image" validate:"omitempty,url"`
	BannerImage      *string  `json:"banner_image" validate:"omitempty,url"`
	ContactEmail     *string  `json:"contact_email" validate:"omitempty,email"`
}

// ListFilters narrows the influencer listing. Absent fields are skipped.
type ListFilters struct {
	Platform      *enums.Platform
	Category      *enums.Category
	MinFollowers  *int64
	MaxFollowers  *int64
	Search        string
	ExcludeUserID uuid.UUID
}

// CreateInfluencerDTO holds the data required by the repo to persist a profile.
type CreateInfluencerDTO struct {
	UserID           uuid.UUID
	Name             string
	Bio              *string
	Platform         enums.Platform
	Category         enums.Category
	FollowersCount   int64
	AudienceGender   enums.AudienceGender
	AudienceAgeRange *string
	AudienceCountry  *string
	InstagramURL     *string
	YouTubeURL       *string
	TikTokURL        *string
	TwitterURL       *string
	LinkedInURL      *string
	ProfileImage     *string
	BannerImage      *string
	ContactEmail     *string
}

func FromModel(m *models.Influencer) *InfluencerDTO {
	if m == nil {
		return nil
	}

	return &InfluencerDTO{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		Bio:              m.Bio,
		Platform:         m.Platform,
		Category:         m.Category,
		FollowersCount:   m.FollowersCount,
		AudienceGender:   m.AudienceGender,
		AudienceAgeRange: m.AudienceAgeRange,
		AudienceCountry:  m.AudienceCountry,
		InstagramURL:     m.InstagramURL,
		YouTubeURL:       m.YouTubeURL,
		TikTokURL:        m.TikTokURL,
		TwitterURL:       m.TwitterURL,
		LinkedInURL:      m.LinkedInURL,
		ProfileImage:     m.ProfileImage,
		BannerImage:      m.BannerImage,
		ContactEmail:     m.ContactEmail,
		IsApproved:       m.IsApproved,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (c CreateInfluencerDTO) ToModel() *models.Influencer {
	gender := c.AudienceGender
	if gender == "" {
		gender = enums.AudienceGenderMixed
	}

	return &models.Influencer{
		UserID:           c.UserID,
		Name:             c.Name,
		Bio:              c.Bio,
		Platform:         c.Platform,
		Category:         c.Category,
		FollowersCount:   c.FollowersCount,
		AudienceGender:   gender,
		AudienceAgeRange: c.AudienceAgeRange,
		AudienceCountry:  c.AudienceCountry,
		InstagramURL:     c.InstagramURL,
		YouTubeURL:       c.YouTubeURL,
		TikTokURL:        c.TikTokURL,
		TwitterURL:       c.TwitterURL,
		LinkedInURL:      c.LinkedInURL,
		ProfileImage:     c.ProfileImage,
		BannerImage:      c.BannerImage,
		ContactEmail:     c.ContactEmail,
		// New profiles are listed immediately; the approval flag only gates
		// visibility when an operator clears it.
		IsApproved: true,
	}
}
