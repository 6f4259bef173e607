package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/influmatch/influmatch-backend/internal/companies"
	"github.com/influmatch/influmatch-backend/internal/users"
	pkgAuth "github.com/influmatch/influmatch-backend/pkg/auth"
	"github.com/influmatch/influmatch-backend/pkg/config"
	"github.com/influmatch/influmatch-backend/pkg/db"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"github.com/influmatch/influmatch-backend/pkg/security"
	"gorm.io/gorm"
)

// RegisterService handles the onboarding transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type registerUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type registerCompanyRepository interface {
	Create(ctx context.Context, dto companies.CreateCompanyDTO) (*models.Company, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
// The repo factories default to the real repositories bound to the
// transaction handle.
type RegisterServiceParams struct {
	TxRunner           txRunner
	UserRepoFactory    func(tx *gorm.DB) registerUserRepository
	CompanyRepoFactory func(tx *gorm.DB) registerCompanyRepository
	PasswordConfig     config.PasswordConfig
	JWTConfig          config.JWTConfig
}

type registerService struct {
	tx          txRunner
	userRepo    func(tx *gorm.DB) registerUserRepository
	companyRepo func(tx *gorm.DB) registerCompanyRepository
	passwordCfg config.PasswordConfig
	jwtCfg      config.JWTConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	if params.UserRepoFactory == nil {
		params.UserRepoFactory = func(tx *gorm.DB) registerUserRepository {
			return users.NewRepository(tx)
		}
	}
	if params.CompanyRepoFactory == nil {
		params.CompanyRepoFactory = func(tx *gorm.DB) registerCompanyRepository {
			return companies.NewRepository(tx)
		}
	}
	return &registerService{
		tx:          params.TxRunner,
		userRepo:    params.UserRepoFactory,
		companyRepo: params.CompanyRepoFactory,
		passwordCfg: params.PasswordConfig,
		jwtCfg:      params.JWTConfig,
	}, nil
}

// Register creates the account and, for company accounts, the brand profile
// in a single transaction, then signs the new user in.
func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	role, err := enums.ParseRole(req.Role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
	}

	var companyName string
	if role == enums.RoleCompany {
		if req.CompanyName == nil || strings.TrimSpace(*req.CompanyName) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "company_name is required for company accounts")
		}
		companyName = strings.TrimSpace(*req.CompanyName)
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *users.UserDTO
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := s.userRepo(tx)
		companyRepo := s.companyRepo(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "users_email_key") {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		if role == enums.RoleCompany {
			if _, err := companyRepo.Create(ctx, companies.CreateCompanyDTO{
				UserID:        user.ID,
				CompanyName:   companyName,
				Industry:      req.Industry,
				Description:   req.Description,
				ContactPerson: req.ContactPerson,
				ContactEmail:  req.ContactEmail,
				Website:       req.Website,
			}); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create company profile")
			}
		}

		created = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), created.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &AuthResponse{
		Token: token,
		User:  created,
	}, nil
}
