package impl

import (
	"context"
	"log/slog"

	deliverycontext "messenger/internal/delivery/context"
	"messenger/internal/domain/entity"
	"messenger/internal/domain/repository"
	"messenger/internal/domain/service"
	"messenger/internal/errors"
	"messenger/internal/usecase"

	"go.uber.org/fx"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "Password1!"

type seedAccount struct {
	name  string
	email string
	role  entity.Role
}

// The seeded "admin" account is the only one carrying the Admin role.
var seedAccounts = []seedAccount{
	{name: "admin", email: "admin@example.com", role: entity.RoleAdmin},
	{name: "alice", email: "alice@example.com", role: entity.RoleUser},
	{name: "bob", email: "bob@example.com", role: entity.RoleUser},
}

type devService struct {
	seeder repository.DatabaseSeeder
	hasher service.PasswordHasher
	logger *slog.Logger
}

// DevServiceParams holds dependencies for DevService, injected by Fx.
type DevServiceParams struct {
	fx.In

	Seeder repository.DatabaseSeeder
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewDevService is the constructor for devService.
func NewDevService(params DevServiceParams) usecase.DevUsecase {
	return &devService{
		seeder: params.Seeder,
		hasher: params.Hasher,
		logger: params.Logger,
	}
}

func (srv *devService) ResetDatabase(ctx context.Context) error {
	seed, err := srv.buildSeed()
	if err != nil {
		return err
	}

	if err := srv.seeder.Reset(ctx, seed); err != nil {
		return errors.Wrap(err, "failed to reset database")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Database reset to seed data")

	return nil
}

// buildSeed hashes every seed password separately so each account gets its own salt.
func (srv *devService) buildSeed() (*repository.Seed, error) {
	seed := &repository.Seed{
		Users:         make([]*entity.User, 0, len(seedAccounts)),
		Conversations: []*entity.Conversation{{}},
		Members:       map[int][]int{0: {1, 2}},
	}

	for _, account := range seedAccounts {
		verifier, err := srv.hasher.Hash(SeedPassword)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash seed password for %s", account.name)
		}

		seed.Users = append(seed.Users, &entity.User{
			Name:         account.name,
			Email:        account.email,
			PasswordHash: verifier,
			Role:         account.role,
		})
	}

	return seed, nil
}
