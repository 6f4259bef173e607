package auth

import (
	"github.com/google/uuid"

	"github.com/influmatch/influmatch-backend/internal/companies"
	"github.com/influmatch/influmatch-backend/internal/influencers"
	"github.com/influmatch/influmatch-backend/internal/users"
	"github.com/influmatch/influmatch-backend/pkg/enums"
)

// RegisterRequest contains the payload for onboarding a new account. Company
// accounts get their brand profile in the same transaction; influencers
// create theirs later through the profiles endpoint.
type RegisterRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Role          string  `json:"role" validate:"required,oneof=influencer company"`
	CompanyName   *string `json:"company_name" validate:"required_if=Role company"`
	Industry      *string `json:"industry,omitempty"`
	Description   *string `json:"description,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	ContactEmail  *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse contains the token and user produced by login or registration.
// Login also includes the role-specific profile when one exists; registration
// leaves both profile fields empty.
type AuthResponse struct {
	Token      string                     `json:"token"`
	User       *users.UserDTO             `json:"user"`
	Influencer *influencers.InfluencerDTO `json:"influencer,omitempty"`
	Company    *companies.CompanyDTO      `json:"company,omitempty"`
}

// ProfileResponse bundles the account with its role-specific profile. Exactly
// one of Influencer/Company is set, and either may be nil when the profile
// has not been created yet.
type ProfileResponse struct {
	User       *users.UserDTO             `json:"user"`
	Influencer *influencers.InfluencerDTO `json:"influencer,omitempty"`
	Company    *companies.CompanyDTO      `json:"company,omitempty"`
}

// Identity is the per-request actor state resolved from the database.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   enums.Role
}
