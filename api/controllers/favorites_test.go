package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/influmatch/influmatch-backend/internal/favorites"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
)

type stubFavoritesService struct {
	listResp []favorites.FavoriteDTO
	listErr  error

	addInfluencer uuid.UUID
	addErr        error

	removeInfluencer uuid.UUID
	removeErr        error
}

func (s *stubFavoritesService) List(ctx context.Context, actorID uuid.UUID, actorRole enums.Role) ([]favorites.FavoriteDTO, error) {
	return s.listResp, s.listErr
}

func (s *stubFavoritesService) Add(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, influencerID uuid.UUID) error {
	s.addInfluencer = influencerID
	return s.addErr
}

func (s *stubFavoritesService) Remove(ctx context.Context, actorID uuid.UUID, actorRole enums.Role, influencerID uuid.UUID) error {
	s.removeInfluencer = influencerID
	return s.removeErr
}

func TestFavoriteAddForwardsPathID(t *testing.T) {
	svc := &stubFavoritesService{}
	handler := FavoriteAdd(svc, nil)

	influencerID := uuid.New()
	req := authedRequest(http.MethodPost, "/api/v1/companies/favorites/"+influencerID.String(), nil, uuid.New(), enums.RoleCompany)
	req = withChiParam(req, "influencerId", influencerID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.addInfluencer != influencerID {
		t.Fatalf("expected influencer %s got %s", influencerID, svc.addInfluencer)
	}
}

func TestFavoriteAddDuplicateSurfacesConflict(t *testing.T) {
	svc := &stubFavoritesService{addErr: pkgerrors.New(pkgerrors.CodeConflict, "influencer already in favorites")}
	handler := FavoriteAdd(svc, nil)

	influencerID := uuid.New()
	req := authedRequest(http.MethodPost, "/api/v1/companies/favorites/"+influencerID.String(), nil, uuid.New(), enums.RoleCompany)
	req = withChiParam(req, "influencerId", influencerID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestFavoriteAddRejectsMalformedID(t *testing.T) {
	handler := FavoriteAdd(&stubFavoritesService{}, nil)

	req := authedRequest(http.MethodPost, "/api/v1/companies/favorites/not-a-uuid", nil, uuid.New(), enums.RoleCompany)
	req = withChiParam(req, "influencerId", "not-a-uuid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestFavoriteRemoveForwardsPathID(t *testing.T) {
	svc := &stubFavoritesService{}
	handler := FavoriteRemove(svc, nil)

	influencerID := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/v1/companies/favorites/"+influencerID.String(), nil, uuid.New(), enums.RoleCompany)
	req = withChiParam(req, "influencerId", influencerID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.removeInfluencer != influencerID {
		t.Fatalf("expected influencer %s got %s", influencerID, svc.removeInfluencer)
	}
}

func TestFavoriteRemoveMissingRowIsNotFound(t *testing.T) {
	svc := &stubFavoritesService{removeErr: pkgerrors.New(pkgerrors.CodeNotFound, "favorite not found")}
	handler := FavoriteRemove(svc, nil)

	influencerID := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/v1/companies/favorites/"+influencerID.String(), nil, uuid.New(), enums.RoleCompany)
	req = withChiParam(req, "influencerId", influencerID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestFavoritesListWrongRoleIsForbidden(t *testing.T) {
	svc := &stubFavoritesService{listErr: pkgerrors.New(pkgerrors.CodeWrongRole, "company role required")}
	handler := FavoritesList(svc, nil)

	req := authedRequest(http.MethodGet, "/api/v1/companies/favorites", nil, uuid.New(), enums.RoleInfluencer)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}
