package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/internal/companies"
	"github.com/influmatch/influmatch-backend/internal/influencers"
	"github.com/influmatch/influmatch-backend/internal/users"
	pkgAuth "github.com/influmatch/influmatch-backend/pkg/auth"
	"github.com/influmatch/influmatch-backend/pkg/config"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"github.com/influmatch/influmatch-backend/pkg/security"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller and middleware.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
	ResolveIdentity(ctx context.Context, userID uuid.UUID) (*Identity, error)
}

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type influencerProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Influencer, error)
}

type companyProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error)
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	InfluencerRepo influencerProfileRepository
	CompanyRepo    companyProfileRepository
	JWTConfig      config.JWTConfig
}

type service struct {
	users       userRepository
	influencers influencerProfileRepository
	companies   companyProfileRepository
	jwtCfg      config.JWTConfig
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.InfluencerRepo == nil {
		return nil, fmt.Errorf("influencer repository is required")
	}
	if params.CompanyRepo == nil {
		return nil, fmt.Errorf("company repository is required")
	}
	return &service{
		users:       params.UserRepo,
		influencers: params.InfluencerRepo,
		companies:   params.CompanyRepo,
		jwtCfg:      params.JWTConfig,
	}, nil
}

// Login authenticates the credentials and mints a fresh access token.
// Unknown emails and wrong passwords produce the same response.
func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	influencerDTO, companyDTO, err := s.roleProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:      token,
		User:       users.FromModel(user),
		Influencer: influencerDTO,
		Company:    companyDTO,
	}, nil
}

// Profile returns the account plus its role-specific profile, when present.
func (s *service) Profile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	influencerDTO, companyDTO, err := s.roleProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		User:       users.FromModel(user),
		Influencer: influencerDTO,
		Company:    companyDTO,
	}, nil
}

// roleProfile fetches the profile matching the user's role. A missing profile
// is not an error; influencers have none until their first profile create.
func (s *service) roleProfile(ctx context.Context, user *models.User) (*influencers.InfluencerDTO, *companies.CompanyDTO, error) {
	switch user.Role {
	case enums.RoleInfluencer:
		profile, err := s.influencers.FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load influencer profile")
		}
		return influencers.FromModel(profile), nil, nil
	case enums.RoleCompany:
		profile, err := s.companies.FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load company profile")
		}
		return nil, companies.FromModel(profile), nil
	}
	return nil, nil, nil
}

// ResolveIdentity loads the actor's current role and email from the database.
// Tokens never carry role claims, so a stale or tampered token cannot widen
// access.
func (s *service) ResolveIdentity(ctx context.Context, userID uuid.UUID) (*Identity, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "account no longer exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return &Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

func (s *service) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	input := strings.TrimSpace(email)
	if input == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, invalidCredentialsMessage)
	}
	user, err := s.users.FindByEmail(ctx, strings.ToLower(input))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, invalidCredentialsMessage)
	}
	return user, nil
}
