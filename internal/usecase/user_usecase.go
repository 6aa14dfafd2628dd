package usecase

import (
	"context"

	"messenger/internal/domain/entity"
)

// CreateUserInput is used by administrators to create accounts with an explicit role.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateUserInput carries optional changes. Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *entity.Role
}

// UserUsecase defines user account management.
type UserUsecase interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, actor Actor, input *CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, actor Actor, id int64, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}
