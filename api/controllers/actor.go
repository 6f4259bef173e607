package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/influmatch/influmatch-backend/api/middleware"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
)

// actorFromContext recovers the authenticated actor seeded by the auth
// middleware. Handlers behind that middleware should never see an error here.
func actorFromContext(ctx context.Context) (uuid.UUID, enums.Role, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, "", pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	actorID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid actor id")
	}
	role, err := enums.ParseRole(middleware.RoleFromContext(ctx))
	if err != nil {
		return uuid.Nil, "", pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid actor role")
	}
	return actorID, role, nil
}
