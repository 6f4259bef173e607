package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/influmatch/influmatch-backend/api/responses"
	"github.com/influmatch/influmatch-backend/api/validators"
	"github.com/influmatch/influmatch-backend/internal/influencers"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"github.com/influmatch/influmatch-backend/pkg/logger"
)

// InfluencerList returns the approved marketplace listing with optional
// filters. Malformed filter values widen the result set rather than erroring.
func InfluencerList(svc influencers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "influencers service unavailable"))
			return
		}

		actorID, actorRole, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := listFiltersFromQuery(r)

		result, err := svc.List(r.Context(), actorID, actorRole, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// InfluencerDetail returns the full profile including the owner's email.
func InfluencerDetail(svc influencers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "influencers service unavailable"))
			return
		}

		id, err := influencerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// InfluencerCreate creates the actor's influencer profile.
func InfluencerCreate(svc influencers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "influencers service unavailable"))
			return
		}

		actorID, actorRole, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body influencers.CreateInfluencerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateProfile(r.Context(), actorID, actorRole, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// InfluencerUpdate applies a partial update to the actor's own profile.
func InfluencerUpdate(svc influencers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "influencers service unavailable"))
			return
		}

		actorID, _, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := influencerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body influencers.UpdateInfluencerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateProfile(r.Context(), actorID, id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func influencerIDParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "influencerId"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "influencer id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid influencer id")
	}
	return id, nil
}

func listFiltersFromQuery(r *http.Request) influencers.ListFilters {
	filters := influencers.ListFilters{
		MinFollowers: validators.ParseOptionalInt64(r, "minFollowers"),
		MaxFollowers: validators.ParseOptionalInt64(r, "maxFollowers"),
		Search:       validators.QueryString(r, "search"),
	}
	if platform, err := enums.ParsePlatform(validators.QueryString(r, "platform")); err == nil {
		filters.Platform = &platform
	}
	if category, err := enums.ParseCategory(validators.QueryString(r, "category")); err == nil {
		filters.Category = &category
	}
	return filters
}
