package postgres

import (
	"context"
	"log/slog"

	"messenger/internal/domain/entity"
	"messenger/internal/domain/repository"
	"messenger/internal/errors"
	"messenger/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type gormSeeder struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewDatabaseSeeder is the constructor for the development seeder.
func NewDatabaseSeeder(db *gorm.DB, logger *slog.Logger) repository.DatabaseSeeder {
	return &gormSeeder{db: db, logger: logger}
}

// Reset drops and recreates the schema, then writes seed inside one transaction.
func (s *gormSeeder) Reset(ctx context.Context, seed *repository.Seed) error {
	migrator := s.db.WithContext(ctx).Migrator()

	models := model.All()
	for i := len(models) - 1; i >= 0; i-- {
		if err := migrator.DropTable(models[i]); err != nil {
			return errors.Wrap(err, "failed to drop table")
		}
	}

	if err := Migrate(ctx, s.db); err != nil {
		return err
	}

	txManager := NewTransactionManager(s.db)

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()
		for _, user := range seed.Users {
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrapf(err, "failed to seed user %s", user.Name)
			}
		}

		convRepo := factory.NewConversationRepository()
		for i, conversation := range seed.Conversations {
			if err := convRepo.Create(ctx, conversation); err != nil {
				return errors.Wrap(err, "failed to seed conversation")
			}

			for _, userIdx := range seed.Members[i] {
				member := &entity.ConversationMember{
					ConversationID: conversation.ID,
					UserID:         seed.Users[userIdx].ID,
				}
				if err := convRepo.AddMember(ctx, member); err != nil {
					return errors.Wrap(err, "failed to seed conversation member")
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Database reset",
		slog.Int("users", len(seed.Users)),
		slog.Int("conversations", len(seed.Conversations)),
	)

	return nil
}
