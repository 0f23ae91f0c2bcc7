// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"prelovin/internal/domain/entity"
)

// ErrUserNotFound is returned when no user row exists for the given id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their opaque identity-provider id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert inserts the user if the id is absent, otherwise overwrites the
	// identity-provider fields (email, name, avatar) and refreshes
	// UpdatedAt, leaving the user-entered contact fields intact. It must be
	// a single atomic insert-or-update statement so that two concurrent
	// identity-refresh events for the same user cannot race; last write
	// wins on conflicting fields. The resulting row is returned.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
}
