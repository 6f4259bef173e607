package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/pkg/enums"
)

// Influencer is the public-facing profile owned by a user with the
// influencer role. One profile per user.
type Influencer struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID           uuid.UUID            `gorm:"column:user_id;type:uuid;not null;uniqueIndex:influencers_user_id_key"`
	Name             string               `gorm:"column:name;not null"`
	Bio              *string              `gorm:"column:bio"`
	Platform         enums.Platform       `gorm:"column:platform;type:text;not null;index:influencers_platform_idx"`
	Category         enums.Category       `gorm:"column:category;type:text;not null;index:influencers_category_idx"`
	FollowersCount   int64                `gorm:"column:followers_count;not null;default:0"`
	AudienceGender   enums.AudienceGender `gorm:"column:audience_gender;type:text;not null;default:mixed"`
	AudienceAgeRange *string              `gorm:"column:audience_age_range"`
	AudienceCountry  *string              `gorm:"column:audience_country"`
	InstagramURL     *string              `gorm:"column:instagram_url"`
	YouTubeURL       *string              `gorm:"column:youtube_url"`
	TikTokURL        *string              `gorm:"column:tiktok_url"`
	TwitterURL       *string              `gorm:"column:twitter_url"`
	LinkedInURL      *string              `gorm:"column:linkedin_url"`
	ProfileImage     *string              `gorm:"column:profile_image"`
	BannerImage      *string              `gorm:"column:banner_image"`
	ContactEmail     *string              `gorm:"column:contact_email"`
	IsApproved       bool                 `gorm:"column:is_approved;not null;index:influencers_is_approved_idx"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
