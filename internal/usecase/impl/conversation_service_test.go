package impl

import (
	"context"
	"testing"

	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	mockSvc "messenger/internal/mocks/service"
	"messenger/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type conversationServiceFixtures struct {
	repoFixtures
	service   usecase.ConversationUsecase
	publisher *mockSvc.MockEventPublisher
}

func createTestConversationService(t *testing.T) conversationServiceFixtures {
	repos := newRepoFixtures(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return conversationServiceFixtures{
		repoFixtures: repos,
		publisher:    publisher,
		service: NewConversationService(ConversationServiceParams{
			TxManager:   repos.txManager,
			ConvRepo:    repos.convRepo,
			MessageRepo: repos.msgRepo,
			Publisher:   publisher,
			Logger:      newDiscardLogger(),
		}),
	}
}

func TestConversationService_CreateAddsCreator(t *testing.T) {
	ctx := context.Background()
	f := createTestConversationService(t)

	f.expectTransaction(ctx)
	f.convRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, c *entity.Conversation) {
		c.ID = 5
	}).Return(nil).Once()
	f.convRepo.EXPECT().AddMember(ctx, &entity.ConversationMember{ConversationID: 5, UserID: 2}).Return(nil).Once()

	conversation, err := f.service.Create(ctx, aliceActor)
	require.NoError(t, err)
	assert.Equal(t, int64(5), conversation.ID)
}

func TestConversationService_AddMember(t *testing.T) {
	ctx := context.Background()
	conversation := &entity.Conversation{ID: 5}

	t.Run("member adds user", func(t *testing.T) {
		f := createTestConversationService(t)
		f.expectTransaction(ctx)
		f.convRepo.EXPECT().FindByID(ctx, int64(5)).Return(conversation, nil).Once()
		f.convRepo.EXPECT().IsMember(ctx, int64(5), int64(2)).Return(true, nil).Once()
		f.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3}, nil).Once()
		f.convRepo.EXPECT().AddMember(ctx, &entity.ConversationMember{ConversationID: 5, UserID: 3}).Return(nil).Once()

		got, err := f.service.AddMember(ctx, aliceActor, 5, 3)
		require.NoError(t, err)
		assert.Equal(t, conversation, got)
	})

	t.Run("admin bypasses membership", func(t *testing.T) {
		f := createTestConversationService(t)
		f.expectTransaction(ctx)
		f.convRepo.EXPECT().FindByID(ctx, int64(5)).Return(conversation, nil).Once()
		f.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3}, nil).Once()
		f.convRepo.EXPECT().AddMember(ctx, mock.Anything).Return(nil).Once()

		_, err := f.service.AddMember(ctx, adminActor, 5, 3)
		assert.NoError(t, err)
	})

	t.Run("outsider rejected", func(t *testing.T) {
		f := createTestConversationService(t)
		f.expectTransaction(ctx)
		f.convRepo.EXPECT().FindByID(ctx, int64(5)).Return(conversation, nil).Once()
		f.convRepo.EXPECT().IsMember(ctx, int64(5), int64(2)).Return(false, nil).Once()

		_, err := f.service.AddMember(ctx, aliceActor, 5, 3)
		assert.ErrorIs(t, err, domainerrors.ErrNotConversationMember)
	})

	t.Run("already member", func(t *testing.T) {
		f := createTestConversationService(t)
		f.expectTransaction(ctx)
		f.convRepo.EXPECT().FindByID(ctx, int64(5)).Return(conversation, nil).Once()
		f.convRepo.EXPECT().IsMember(ctx, int64(5), int64(2)).Return(true, nil).Once()
		f.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3}, nil).Once()
		f.convRepo.EXPECT().AddMember(ctx, mock.Anything).Return(domainerrors.ErrAlreadyConversationMember).Once()

		_, err := f.service.AddMember(ctx, aliceActor, 5, 3)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyConversationMember)
	})

	t.Run("missing conversation", func(t *testing.T) {
		f := createTestConversationService(t)
		f.expectTransaction(ctx)
		f.convRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, domainerrors.ErrConversationNotFound).Once()

		_, err := f.service.AddMember(ctx, aliceActor, 8, 3)
		assert.ErrorIs(t, err, domainerrors.ErrConversationNotFound)
	})
}

func TestConversationService_PostMessage(t *testing.T) {
	ctx := context.Background()
	conversation := &entity.Conversation{ID: 5}

	t.Run("member posts", func(t *testing.T) {
		f := createTestConversationService(t)
		f.convRepo.EXPECT().FindByID(ctx, int64(5)).Return(conversation, nil).Once()
		f.convRepo.EXPECT().IsMember(ctx, int64(5), int64(2)).Return(true, nil).Once()
		f.msgRepo.EXPECT().Create(ctx, mock.MatchedBy(func(m *entity.Message) bool {
			return m.SenderID == 2 && m.ConversationID != nil && *m.ConversationID == 5 && m.RecipientID == nil
		})).Return(nil).Once()
		f.publisher.EXPECT().PublishMessageEvent(ctx, mock.Anything).Return(nil).Once()

		msg, err := f.service.PostMessage(ctx, aliceActor, 5, "hello all")
		require.NoError(t, err)
		assert.False(t, msg.IsDirect())
	})

	t.Run("non member rejected even as admin", func(t *testing.T) {
		f := createTestConversationService(t)
		f.convRepo.EXPECT().FindByID(ctx, int64(5)).Return(conversation, nil).Once()
		f.convRepo.EXPECT().IsMember(ctx, int64(5), int64(1)).Return(false, nil).Once()

		_, err := f.service.PostMessage(ctx, adminActor, 5, "hello all")
		assert.ErrorIs(t, err, domainerrors.ErrNotConversationMember)
	})

	t.Run("missing conversation", func(t *testing.T) {
		f := createTestConversationService(t)
		f.convRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, domainerrors.ErrConversationNotFound).Once()

		_, err := f.service.PostMessage(ctx, aliceActor, 8, "hello all")
		assert.ErrorIs(t, err, domainerrors.ErrConversationNotFound)
	})
}

func TestConversationService_ListMessagesAndMembers(t *testing.T) {
	ctx := context.Background()
	conversation := &entity.Conversation{ID: 5}

	f := createTestConversationService(t)
	f.convRepo.EXPECT().FindByID(ctx, int64(5)).Return(conversation, nil).Times(3)
	f.convRepo.EXPECT().IsMember(ctx, int64(5), int64(2)).Return(true, nil).Once()
	f.msgRepo.EXPECT().ListByConversation(ctx, int64(5)).Return([]*entity.Message{{ID: 1}}, nil).Twice()
	f.convRepo.EXPECT().ListMembers(ctx, int64(5)).Return([]*entity.ConversationMember{{ConversationID: 5, UserID: 2}}, nil).Once()

	messages, err := f.service.ListMessages(ctx, aliceActor, 5)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	messages, err = f.service.ListMessages(ctx, adminActor, 5)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	members, err := f.service.ListMembers(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), members[0].UserID)
}

func TestConversationService_List(t *testing.T) {
	ctx := context.Background()
	f := createTestConversationService(t)

	f.convRepo.EXPECT().List(ctx).Return([]*entity.Conversation{{ID: 1}, {ID: 2}}, nil).Once()

	conversations, err := f.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, conversations, 2)
}
