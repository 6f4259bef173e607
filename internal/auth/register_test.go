package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/internal/companies"
	"github.com/influmatch/influmatch-backend/internal/users"
	"github.com/influmatch/influmatch-backend/pkg/config"
	pkgmodels "github.com/influmatch/influmatch-backend/pkg/db/models"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubTxRunner struct{}

func (s stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubRegisterUserRepo struct {
	data    map[string]*pkgmodels.User
	created *pkgmodels.User
}

func newStubRegisterUserRepo() *stubRegisterUserRepo {
	return &stubRegisterUserRepo{data: map[string]*pkgmodels.User{}}
}

func (s *stubRegisterUserRepo) FindByEmail(ctx context.Context, email string) (*pkgmodels.User, error) {
	if user, ok := s.data[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRegisterUserRepo) Create(ctx context.Context, dto users.CreateUserDTO) (*pkgmodels.User, error) {
	user := &pkgmodels.User{
		ID:           uuid.New(),
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		Role:         dto.Role,
	}
	s.data[dto.Email] = user
	s.created = user
	return user, nil
}

type stubRegisterCompanyRepo struct {
	created *pkgmodels.Company
}

func (s *stubRegisterCompanyRepo) Create(ctx context.Context, dto companies.CreateCompanyDTO) (*pkgmodels.Company, error) {
	company := dto.ToModel()
	company.ID = uuid.New()
	s.created = company
	return company, nil
}

type registerTestSetup struct {
	service     RegisterService
	userRepo    *stubRegisterUserRepo
	companyRepo *stubRegisterCompanyRepo
}

func newRegisterTestSetup(t *testing.T) *registerTestSetup {
	t.Helper()
	userRepo := newStubRegisterUserRepo()
	companyRepo := &stubRegisterCompanyRepo{}
	svc, err := NewRegisterService(RegisterServiceParams{
		TxRunner: stubTxRunner{},
		UserRepoFactory: func(tx *gorm.DB) registerUserRepository {
			return userRepo
		},
		CompanyRepoFactory: func(tx *gorm.DB) registerCompanyRepository {
			return companyRepo
		},
		PasswordConfig: config.PasswordConfig{},
		JWTConfig: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "influmatch",
			ExpirationMinutes: 7 * 24 * 60,
		},
	})
	if err != nil {
		t.Fatalf("new register service: %v", err)
	}
	return &registerTestSetup{
		service:     svc,
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

func strPtr(s string) *string { return &s }

func TestRegisterInfluencerDefersProfileCreation(t *testing.T) {
	setup := newRegisterTestSetup(t)

	resp, err := setup.service.Register(context.Background(), RegisterRequest{
		Email:    "Creator@Example.com",
		Password: "Secret123!",
		Role:     "influencer",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if setup.userRepo.created == nil {
		t.Fatal("expected user to be created")
	}
	if setup.userRepo.created.Email != "creator@example.com" {
		t.Fatalf("expected lowercased email, got %s", setup.userRepo.created.Email)
	}
	if setup.userRepo.created.Role != enums.RoleInfluencer {
		t.Fatalf("unexpected role %s", setup.userRepo.created.Role)
	}
	if setup.companyRepo.created != nil {
		t.Fatal("influencer registration must not create a company profile")
	}
	if resp.Token == "" {
		t.Fatal("expected a signed token")
	}
}

func TestRegisterCompanyCreatesProfileInSameFlow(t *testing.T) {
	setup := newRegisterTestSetup(t)

	_, err := setup.service.Register(context.Background(), RegisterRequest{
		Email:       "brand@example.com",
		Password:    "Secret123!",
		Role:        "company",
		CompanyName: strPtr("  Acme Brands  "),
		Industry:    strPtr("consumer goods"),
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if setup.companyRepo.created == nil {
		t.Fatal("expected company profile to be created")
	}
	if setup.companyRepo.created.CompanyName != "Acme Brands" {
		t.Fatalf("expected trimmed company name, got %q", setup.companyRepo.created.CompanyName)
	}
	if setup.companyRepo.created.UserID != setup.userRepo.created.ID {
		t.Fatal("company profile not linked to created user")
	}
}

func TestRegisterCompanyRequiresCompanyName(t *testing.T) {
	setup := newRegisterTestSetup(t)

	_, err := setup.service.Register(context.Background(), RegisterRequest{
		Email:    "brand@example.com",
		Password: "Secret123!",
		Role:     "company",
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	setup := newRegisterTestSetup(t)
	setup.userRepo.data["taken@example.com"] = &pkgmodels.User{
		ID:    uuid.New(),
		Email: "taken@example.com",
		Role:  enums.RoleInfluencer,
	}

	_, err := setup.service.Register(context.Background(), RegisterRequest{
		Email:    "Taken@Example.com",
		Password: "Secret123!",
		Role:     "influencer",
	})
	assertCode(t, err, pkgerrors.CodeConflict)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	setup := newRegisterTestSetup(t)

	_, err := setup.service.Register(context.Background(), RegisterRequest{
		Email:    "odd@example.com",
		Password: "Secret123!",
		Role:     "admin",
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}
