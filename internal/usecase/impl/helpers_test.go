package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"messenger/config"
	"messenger/internal/domain/repository"
	mockRepo "messenger/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Secret:   strings.Repeat("s", config.MinSecretLength),
		Issuer:   "messenger",
		Audience: "messenger-clients",
	}
	cfg.PasswordHash = config.PasswordHashConfig{
		Memory:      config.DefaultHashMemory,
		Iterations:  config.DefaultHashIterations,
		Parallelism: config.DefaultHashParallelism,
		SaltLength:  config.DefaultHashSaltLength,
		KeyLength:   config.DefaultHashKeyLength,
	}

	return cfg
}

// repoFixtures holds the repository mocks shared by transactional tests.
type repoFixtures struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	convRepo  *mockRepo.MockConversationRepository
	msgRepo   *mockRepo.MockMessageRepository
}

func newRepoFixtures(t *testing.T) repoFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	convRepo := mockRepo.NewMockConversationRepository(t)
	msgRepo := mockRepo.NewMockMessageRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	factory.EXPECT().NewConversationRepository().Return(convRepo).Maybe()
	factory.EXPECT().NewMessageRepository().Return(msgRepo).Maybe()

	return repoFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   factory,
		userRepo:  userRepo,
		convRepo:  convRepo,
		msgRepo:   msgRepo,
	}
}

// expectTransaction runs the next Execute callback against the fixture repositories.
func (f repoFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Once()
}

func ptr[T any](v T) *T {
	return &v
}
