// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"prelovin/internal/domain/entity"
)

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	// SyncCurrentUser upserts the user row from the identity claims and
	// returns the stored record. Called on every authenticated identity
	// refresh, so it must be idempotent.
	SyncCurrentUser(ctx context.Context, claims *IdentityClaims) (*entity.User, error)

	// GetPublicProfile returns the user with private contact fields
	// stripped. This is the anonymous seller-page view.
	GetPublicProfile(ctx context.Context, userID string) (*entity.User, error)
}

// --- Input DTOs ---

// IdentityClaims carries the profile attributes asserted by the external
// identity provider's token.
type IdentityClaims struct {
	Subject         string `json:"sub"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}
