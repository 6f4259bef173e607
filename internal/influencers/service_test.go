package influencers

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/influmatch/influmatch-backend/pkg/db/models"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubRepo struct {
	profile     *models.Influencer
	byUserErr   error
	findErr     error
	createErr   error
	created     *CreateInfluencerDTO
	listFilters *ListFilters
	listItems   []InfluencerDTO
	listErr     error
	updates     map[string]any
}

func (s *stubRepo) Create(ctx context.Context, dto CreateInfluencerDTO) (*models.Influencer, error) {
	s.created = &dto
	if s.createErr != nil {
		return nil, s.createErr
	}
	return dto.ToModel(), nil
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.profile, nil
}

func (s *stubRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Influencer, error) {
	if s.byUserErr != nil {
		return nil, s.byUserErr
	}
	return s.profile, nil
}

func (s *stubRepo) FindDetailByID(ctx context.Context, id uuid.UUID) (*InfluencerDTO, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return FromModel(s.profile), nil
}

func (s *stubRepo) List(ctx context.Context, filters ListFilters) ([]InfluencerDTO, error) {
	s.listFilters = &filters
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listItems, nil
}

func (s *stubRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Influencer, error) {
	s.updates = updates
	return s.profile, nil
}

func newTestService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
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

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestCreateProfileRequiresInfluencerRole(t *testing.T) {
	svc := newTestService(t, &stubRepo{byUserErr: gorm.ErrRecordNotFound})

	_, err := svc.CreateProfile(context.Background(), uuid.New(), enums.RoleCompany, CreateInfluencerRequest{
		Name:     "Acme",
		Platform: "instagram",
		Category: "tech",
	})
	assertCode(t, err, pkgerrors.CodeWrongRole)
}

func TestCreateProfileConflictsWhenProfileExists(t *testing.T) {
	existing := &models.Influencer{ID: uuid.New()}
	svc := newTestService(t, &stubRepo{profile: existing})

	_, err := svc.CreateProfile(context.Background(), uuid.New(), enums.RoleInfluencer, CreateInfluencerRequest{
		Name:     "Dup",
		Platform: "instagram",
		Category: "tech",
	})
	assertCode(t, err, pkgerrors.CodeConflict)
}

func TestCreateProfileDefaultsAudienceGender(t *testing.T) {
	repo := &stubRepo{byUserErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo)

	dto, err := svc.CreateProfile(context.Background(), uuid.New(), enums.RoleInfluencer, CreateInfluencerRequest{
		Name:     "  Creator  ",
		Platform: "youtube",
		Category: "gaming",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if dto.AudienceGender != enums.AudienceGenderMixed {
		t.Fatalf("expected mixed default, got %s", dto.AudienceGender)
	}
	if repo.created == nil || repo.created.Name != "Creator" {
		t.Fatalf("expected trimmed name persisted, got %+v", repo.created)
	}
}

func TestCreateProfileRejectsUnknownPlatform(t *testing.T) {
	svc := newTestService(t, &stubRepo{byUserErr: gorm.ErrRecordNotFound})

	_, err := svc.CreateProfile(context.Background(), uuid.New(), enums.RoleInfluencer, CreateInfluencerRequest{
		Name:     "Creator",
		Platform: "myspace",
		Category: "tech",
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestUpdateProfileMissingRowIsNotFoundEvenForStrangers(t *testing.T) {
	svc := newTestService(t, &stubRepo{findErr: gorm.ErrRecordNotFound})

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), uuid.New(), UpdateInfluencerRequest{})
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateProfileForbiddenForNonOwner(t *testing.T) {
	owner := uuid.New()
	svc := newTestService(t, &stubRepo{profile: &models.Influencer{ID: uuid.New(), UserID: owner}})

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), uuid.New(), UpdateInfluencerRequest{})
	assertCode(t, err, pkgerrors.CodeForbidden)
}

func TestUpdateProfileBuildsAllowListedColumns(t *testing.T) {
	owner := uuid.New()
	profileID := uuid.New()
	repo := &stubRepo{profile: &models.Influencer{ID: profileID, UserID: owner}}
	svc := newTestService(t, repo)

	name := "New Name"
	followers := int64(42)
	platform := "tiktok"
	_, err := svc.UpdateProfile(context.Background(), owner, profileID, UpdateInfluencerRequest{
		Name:           &name,
		FollowersCount: &followers,
		Platform:       &platform,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if repo.updates["name"] != "New Name" {
		t.Fatalf("expected name update, got %v", repo.updates)
	}
	if repo.updates["followers_count"] != int64(42) {
		t.Fatalf("expected followers update, got %v", repo.updates)
	}
	if repo.updates["platform"] != enums.PlatformTikTok {
		t.Fatalf("expected platform update, got %v", repo.updates)
	}
	if _, ok := repo.updates["is_approved"]; ok {
		t.Fatal("approval state must not be writable")
	}
}

func TestUpdateProfileRejectsEmptyPayload(t *testing.T) {
	owner := uuid.New()
	profileID := uuid.New()
	svc := newTestService(t, &stubRepo{profile: &models.Influencer{ID: profileID, UserID: owner}})

	_, err := svc.UpdateProfile(context.Background(), owner, profileID, UpdateInfluencerRequest{})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestListExcludesSelfForInfluencerActors(t *testing.T) {
	actor := uuid.New()
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	if _, err := svc.List(context.Background(), actor, enums.RoleInfluencer, ListFilters{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.listFilters == nil || repo.listFilters.ExcludeUserID != actor {
		t.Fatalf("expected actor excluded, got %+v", repo.listFilters)
	}

	if _, err := svc.List(context.Background(), actor, enums.RoleCompany, ListFilters{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.listFilters.ExcludeUserID != uuid.Nil {
		t.Fatalf("company actors see the full listing, got %+v", repo.listFilters)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(t, &stubRepo{findErr: gorm.ErrRecordNotFound})

	_, err := svc.GetByID(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestGetByIDDependencyError(t *testing.T) {
	svc := newTestService(t, &stubRepo{findErr: errors.New("boom")})

	_, err := svc.GetByID(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeDependency)
}
