package favorites

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes business rules for a company's favorites list.
type Service interface {
	List(ctx context.Context, actorID uuid.UUID, actorRole enums.Role) ([]FavoriteDTO, error)
	Add(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, influencerID uuid.UUID) error
	Remove(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, influencerID uuid.UUID) error
}

type favoritesRepository interface {
	Add(ctx context.Context, companyID, influencerID uuid.UUID) (bool, error)
	Remove(ctx context.Context, companyID, influencerID uuid.UUID) (bool, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]FavoriteDTO, error)
}

type companyRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error)
}

type influencerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error)
}

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	FavoritesRepo  favoritesRepository
	CompanyRepo    companyRepository
	InfluencerRepo influencerRepository
}

type service struct {
	favoritesRepo  favoritesRepository
	companyRepo    companyRepository
	influencerRepo influencerRepository
}

// NewService builds a favorites service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.FavoritesRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "favorites repo is required")
	}
	if params.CompanyRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "company repo is required")
	}
	if params.InfluencerRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "influencer repo is required")
	}
	return &service{
		favoritesRepo:  params.FavoritesRepo,
		companyRepo:    params.CompanyRepo,
		influencerRepo: params.InfluencerRepo,
	}, nil
}

// List returns the actor's saved influencers.
func (s *service) List(ctx context.Context, actorID uuid.UUID, actorRole enums.Role) ([]FavoriteDTO, error) {
	company, err := s.ensureCompanyActor(ctx, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	items, err := s.favoritesRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list favorites")
	}
	return items, nil
}

// Add saves an influencer to the actor's favorites.
func (s *service) Add(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, influencerID uuid.UUID) error {
	company, err := s.ensureCompanyActor(ctx, actorID, actorRole)
	if err != nil {
		return err
	}
	if influencerID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "influencer id is required")
	}
	if _, err := s.influencerRepo.FindByID(ctx, influencerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "influencer not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load influencer")
	}

	inserted, err := s.favoritesRepo.Add(ctx, company.ID, influencerID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add favorite")
	}
	if !inserted {
		return pkgerrors.New(pkgerrors.CodeConflict, "influencer already in favorites")
	}
	return nil
}

// Remove drops the favorite entry.
func (s *service) Remove(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, influencerID uuid.UUID) error {
	company, err := s.ensureCompanyActor(ctx, actorID, actorRole)
	if err != nil {
		return err
	}
	if influencerID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "influencer id is required")
	}

	removed, err := s.favoritesRepo.Remove(ctx, company.ID, influencerID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove favorite")
	}
	if !removed {
		return pkgerrors.New(pkgerrors.CodeNotFound, "favorite not found")
	}
	return nil
}

func (s *service) ensureCompanyActor(ctx context.Context, actorID uuid.UUID, actorRole enums.Role) (*models.Company, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if actorRole != enums.RoleCompany {
		return nil, pkgerrors.New(pkgerrors.CodeWrongRole, "company role required")
	}
	company, err := s.companyRepo.FindByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "company profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load company profile")
	}
	return company, nil
}
