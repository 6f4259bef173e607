package influencers

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/pkg/db"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes business rules for influencer profiles.
type Service interface {
	List(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, filters ListFilters) ([]InfluencerDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*InfluencerDTO, error)
	CreateProfile(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, req CreateInfluencerRequest) (*InfluencerDTO, error)
	UpdateProfile(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req UpdateInfluencerRequest) (*InfluencerDTO, error)
}

type influencerRepository interface {
	Create(ctx context.Context, dto CreateInfluencerDTO) (*models.Influencer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Influencer, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*InfluencerDTO, error)
	List(ctx context.Context, filters ListFilters) ([]InfluencerDTO, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Influencer, error)
}

// ServiceParams groups dependencies for the influencers service.
type ServiceParams struct {
	Repo influencerRepository
}

type service struct {
	repo influencerRepository
}

// NewService builds an influencers service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "influencer repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// List returns the approved marketplace listing. Influencer actors never see
// their own profile in the results.
func (s *service) List(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, filters ListFilters) ([]InfluencerDTO, error) {
	if actorRole == enums.RoleInfluencer {
		filters.ExcludeUserID = actorID
	}
	items, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list influencers")
	}
	return items, nil
}

// GetByID returns the full profile, including the owner's account email.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*InfluencerDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "influencer id is required")
	}
	dto, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "influencer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load influencer")
	}
	return dto, nil
}

// CreateProfile creates the actor's influencer profile. One per user.
func (s *service) CreateProfile(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, req CreateInfluencerRequest) (*InfluencerDTO, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if actorRole != enums.RoleInfluencer {
		return nil, pkgerrors.New(pkgerrors.CodeWrongRole, "influencer role required")
	}

	if _, err := s.repo.FindByUserID(ctx, actorID); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "profile already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing profile")
	}

	dto, err := createDTOFromRequest(actorID, req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, dto)
	if err != nil {
		if db.IsUniqueViolation(err, "influencers_user_id_key") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "profile already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create influencer profile")
	}
	return FromModel(created), nil
}

// UpdateProfile applies a partial update. Existence is checked before
// ownership so probing other users' profiles yields the same 404 as a
// missing row.
func (s *service) UpdateProfile(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req UpdateInfluencerRequest) (*InfluencerDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "influencer id is required")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "influencer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load influencer")
	}
	if existing.UserID != actorID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not the profile owner")
	}

	updates, err := updatesFromRequest(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update influencer profile")
	}
	return FromModel(updated), nil
}

func createDTOFromRequest(actorID uuid.UUID, req CreateInfluencerRequest) (CreateInfluencerDTO, error) {
	platform, err := enums.ParsePlatform(req.Platform)
	if err != nil {
		return CreateInfluencerDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid platform")
	}
	category, err := enums.ParseCategory(req.Category)
	if err != nil {
		return CreateInfluencerDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}

	gender := enums.AudienceGenderMixed
	if req.AudienceGender != nil {
		gender, err = enums.ParseAudienceGender(*req.AudienceGender)
		if err != nil {
			return CreateInfluencerDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid audience gender")
		}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CreateInfluencerDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	return CreateInfluencerDTO{
		UserID:           actorID,
		Name:             name,
		Bio:              req.Bio,
		Platform:         platform,
		Category:         category,
		FollowersCount:   req.FollowersCount,
		AudienceGender:   gender,
		AudienceAgeRange: req.AudienceAgeRange,
		AudienceCountry:  req.AudienceCountry,
		InstagramURL:     req.InstagramURL,
		YouTubeURL:       req.YouTubeURL,
		TikTokURL:        req.TikTokURL,
		TwitterURL:       req.TwitterURL,
		LinkedInURL:      req.LinkedInURL,
		ProfileImage:     req.ProfileImage,
		BannerImage:      req.BannerImage,
		ContactEmail:     req.ContactEmail,
	}, nil
}

func updatesFromRequest(req UpdateInfluencerRequest) (map[string]any, error) {
	updates := map[string]any{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Platform != nil {
		platform, err := enums.ParsePlatform(*req.Platform)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid platform")
		}
		updates["platform"] = platform
	}
	if req.Category != nil {
		category, err := enums.ParseCategory(*req.Category)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		updates["category"] = category
	}
	if req.FollowersCount != nil {
		if *req.FollowersCount < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "followers count cannot be negative")
		}
		updates["followers_count"] = *req.FollowersCount
	}
	if req.AudienceGender != nil {
		gender, err := enums.ParseAudienceGender(*req.AudienceGender)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid audience gender")
		}
		updates["audience_gender"] = gender
	}
	if req.AudienceAgeRange != nil {
		updates["audience_age_range"] = *req.AudienceAgeRange
	}
	if req.AudienceCountry != nil {
		updates["audience_country"] = *req.AudienceCountry
	}
	if req.InstagramURL != nil {
		updates["instagram_url"] = *req.InstagramURL
	}
	if req.YouTubeURL != nil {
		updates["youtube_url"] = *req.YouTubeURL
	}
	if req.TikTokURL != nil {
		updates["tiktok_url"] = *req.TikTokURL
	}
	if req.TwitterURL != nil {
		updates["twitter_url"] = *req.TwitterURL
	}
	if req.LinkedInURL != nil {
		updates["linkedin_url"] = *req.LinkedInURL
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.BannerImage != nil {
		updates["banner_image"] = *req.BannerImage
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}

	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no updatable fields provided")
	}
	return updates, nil
}
