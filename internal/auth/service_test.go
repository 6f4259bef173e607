package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/pkg/auth"
	"github.com/influmatch/influmatch-backend/pkg/config"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"github.com/influmatch/influmatch-backend/pkg/security"
	"gorm.io/gorm"
)

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

type stubUserLookup struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newStubUserLookup(users ...*models.User) *stubUserLookup {
	s := &stubUserLookup{
		byEmail: map[string]*models.User{},
		byID:    map[uuid.UUID]*models.User{},
	}
	for _, u := range users {
		s.byEmail[u.Email] = u
		s.byID[u.ID] = u
	}
	return s
}

func (s *stubUserLookup) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserLookup) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubInfluencerLookup struct {
	profile *models.Influencer
}

func (s *stubInfluencerLookup) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Influencer, error) {
	if s.profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.profile, nil
}

type stubCompanyLookup struct {
	profile *models.Company
}

func (s *stubCompanyLookup) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error) {
	if s.profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.profile, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "influmatch",
		ExpirationMinutes: 7 * 24 * 60,
	}
}

func buildTestService(t *testing.T, userRepo userRepository, infl *stubInfluencerLookup, comp *stubCompanyLookup) Service {
	t.Helper()
	if infl == nil {
		infl = &stubInfluencerLookup{}
	}
	if comp == nil {
		comp = &stubCompanyLookup{}
	}
	svc, err := NewService(ServiceParams{
		UserRepo:       userRepo,
		InfluencerRepo: infl,
		CompanyRepo:    comp,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected code %s, got %v", code, err)
	}
}

func TestLoginMintsTokenBoundToUserIDOnly(t *testing.T) {
	password := "super-secret"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "creator@example.com",
		PasswordHash: mustHashPassword(t, password),
		Role:         enums.RoleInfluencer,
	}
	svc := buildTestService(t, newStubUserLookup(user), nil, nil)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Creator@Example.com ",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := auth.ParseAccessToken(testJWTConfig(), resp.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s, got %s", user.ID, claims.UserID)
	}
	if resp.User == nil || resp.User.Role != enums.RoleInfluencer {
		t.Fatalf("expected user payload with role, got %+v", resp.User)
	}
}

func TestLoginIncludesRoleProfile(t *testing.T) {
	password := "super-secret"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "brand@example.com",
		PasswordHash: mustHashPassword(t, password),
		Role:         enums.RoleCompany,
	}
	company := &models.Company{ID: uuid.New(), UserID: user.ID, CompanyName: "Acme"}
	svc := buildTestService(t, newStubUserLookup(user), nil, &stubCompanyLookup{profile: company})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: password})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Company == nil || resp.Company.CompanyName != "Acme" {
		t.Fatalf("expected company profile in login response, got %+v", resp)
	}
	if resp.Influencer != nil {
		t.Fatal("influencer profile must not be set for company accounts")
	}
}

func TestLoginUnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	password := "super-secret"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "creator@example.com",
		PasswordHash: mustHashPassword(t, password),
		Role:         enums.RoleInfluencer,
	}
	svc := buildTestService(t, newStubUserLookup(user), nil, nil)

	_, unknownErr := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: password,
	})
	_, wrongErr := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})

	assertCode(t, unknownErr, pkgerrors.CodeInvalidCredentials)
	assertCode(t, wrongErr, pkgerrors.CodeInvalidCredentials)
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("responses must match: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
}

func TestProfileIncludesRoleSpecificProfile(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "brand@example.com",
		PasswordHash: "hash",
		Role:         enums.RoleCompany,
	}
	company := &models.Company{ID: uuid.New(), UserID: user.ID, CompanyName: "Acme"}
	svc := buildTestService(t, newStubUserLookup(user), nil, &stubCompanyLookup{profile: company})

	resp, err := svc.Profile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if resp.Company == nil || resp.Company.CompanyName != "Acme" {
		t.Fatalf("expected company profile, got %+v", resp)
	}
	if resp.Influencer != nil {
		t.Fatal("influencer profile must not be set for company accounts")
	}
}

func TestProfileToleratesMissingInfluencerProfile(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "creator@example.com",
		PasswordHash: "hash",
		Role:         enums.RoleInfluencer,
	}
	svc := buildTestService(t, newStubUserLookup(user), &stubInfluencerLookup{}, nil)

	resp, err := svc.Profile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if resp.Influencer != nil {
		t.Fatal("expected nil influencer profile before creation")
	}
}

func TestResolveIdentityUsesFreshRole(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "creator@example.com",
		PasswordHash: "hash",
		Role:         enums.RoleInfluencer,
	}
	svc := buildTestService(t, newStubUserLookup(user), nil, nil)

	identity, err := svc.ResolveIdentity(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("resolve identity: %v", err)
	}
	if identity.Role != enums.RoleInfluencer || identity.Email != user.Email {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestResolveIdentityDeletedAccountIsUnauthorized(t *testing.T) {
	svc := buildTestService(t, newStubUserLookup(), nil, nil)

	_, err := svc.ResolveIdentity(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeUnauthorized)
}
