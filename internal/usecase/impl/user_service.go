package impl

import (
	"context"
	"log/slog"

	deliverycontext "messenger/internal/delivery/context"
	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/domain/repository"
	"messenger/internal/domain/service"
	"messenger/internal/errors"
	"messenger/internal/usecase"

	"go.uber.org/fx"
)

type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// Create is restricted to administrators.
func (srv *userService) Create(ctx context.Context, actor usecase.Actor, input *usecase.CreateUserInput) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only administrators can create users")
	}

	role := entity.RoleOrDefault(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	verifier, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: verifier,
		Role:         role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", user.ID), slog.Int64("by", actor.UserID), slog.String("role", role.String()))

	return user, nil
}

// Update applies the non-nil fields. A new password is hashed again; a role change needs Admin.
func (srv *userService) Update(ctx context.Context, actor usecase.Actor, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	if !actor.CanActFor(id) {
		return nil, domainerrors.ErrForbidden.WithDetails("cannot modify another user")
	}
	if input.Role != nil && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only administrators can change roles")
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + input.Role.String())
	}

	var verifier string
	if input.Password != nil {
		var err error
		if verifier, err = srv.hashPassword(ctx, *input.Password); err != nil {
			return nil, err
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if verifier != "" {
			user.PasswordHash = verifier
		}
		if input.Role != nil {
			user.Role = *input.Role
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Int64("userID", id), slog.Int64("by", actor.UserID), slog.Bool("passwordChanged", verifier != ""))

	return updated, nil
}

func (srv *userService) Delete(ctx context.Context, actor usecase.Actor, id int64) error {
	if !actor.CanActFor(id) {
		return domainerrors.ErrForbidden.WithDetails("cannot delete another user")
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id), slog.Int64("by", actor.UserID))

	return nil
}

func (srv *userService) hashPassword(ctx context.Context, password string) (string, error) {
	verifier, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return verifier, nil
}
