// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"messenger/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id. Returns ErrUserNotFound when missing.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email. Returns ErrUserNotFound when missing.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user and fills its ID. Returns ErrUserAlreadyExists on a name or email clash.
	Create(ctx context.Context, user *entity.User) error

	Update(ctx context.Context, user *entity.User) error

	Delete(ctx context.Context, id int64) error
}
