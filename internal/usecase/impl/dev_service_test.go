package impl

import (
	"context"
	"testing"

	"messenger/internal/domain/entity"
	"messenger/internal/domain/repository"
	mockRepo "messenger/internal/mocks/repository"
	mockSvc "messenger/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDevService_ResetDatabase(t *testing.T) {
	ctx := context.Background()
	seeder := mockRepo.NewMockDatabaseSeeder(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	srv := NewDevService(DevServiceParams{Seeder: seeder, Hasher: hasher, Logger: newDiscardLogger()})

	hasher.EXPECT().Hash(SeedPassword).Return("verifier", nil).Times(3)

	var seed *repository.Seed
	seeder.EXPECT().Reset(ctx, mock.Anything).Run(func(_ context.Context, s *repository.Seed) {
		seed = s
	}).Return(nil).Once()

	require.NoError(t, srv.ResetDatabase(ctx))

	require.Len(t, seed.Users, 3)
	assert.Equal(t, "admin", seed.Users[0].Name)
	assert.Equal(t, entity.RoleAdmin, seed.Users[0].Role)
	assert.Equal(t, entity.RoleUser, seed.Users[1].Role)
	assert.Equal(t, entity.RoleUser, seed.Users[2].Role)

	require.Len(t, seed.Conversations, 1)
	assert.Equal(t, []int{1, 2}, seed.Members[0])
}
