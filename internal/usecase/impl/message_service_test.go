package impl

import (
	"context"
	"testing"

	deliverycontext "messenger/internal/delivery/context"
	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/domain/service"
	"messenger/internal/errors"
	mockRepo "messenger/internal/mocks/repository"
	mockSvc "messenger/internal/mocks/service"
	"messenger/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceFixtures struct {
	service   usecase.MessageUsecase
	userRepo  *mockRepo.MockUserRepository
	msgRepo   *mockRepo.MockMessageRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	msgRepo := mockRepo.NewMockMessageRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return messageServiceFixtures{
		service: NewMessageService(MessageServiceParams{
			UserRepo:    userRepo,
			MessageRepo: msgRepo,
			Publisher:   publisher,
			Logger:      newDiscardLogger(),
		}),
		userRepo:  userRepo,
		msgRepo:   msgRepo,
		publisher: publisher,
	}
}

func TestMessageService_SendDirect(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	f := createTestMessageService(t)

	f.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3}, nil).Once()
	f.msgRepo.EXPECT().Create(ctx, mock.MatchedBy(func(m *entity.Message) bool {
		return m.SenderID == 2 && m.RecipientID != nil && *m.RecipientID == 3 && m.ConversationID == nil
	})).Run(func(_ context.Context, m *entity.Message) {
		m.ID = 100
	}).Return(nil).Once()
	f.publisher.EXPECT().PublishMessageEvent(ctx, mock.MatchedBy(func(e *service.MessageEvent) bool {
		return e.MessageID == 100 && e.SenderID == 2 && e.RequestID == "req-42"
	})).Return(nil).Once()

	msg, err := f.service.SendDirect(ctx, aliceActor, 3, "hello bob")
	require.NoError(t, err)
	assert.Equal(t, int64(100), msg.ID)
	assert.True(t, msg.IsDirect())
}

func TestMessageService_SendDirect_PublishFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	f := createTestMessageService(t)

	f.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3}, nil).Once()
	f.msgRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishMessageEvent(ctx, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := f.service.SendDirect(ctx, aliceActor, 3, "hello bob")
	assert.NoError(t, err)
}

func TestMessageService_SendDirect_UnknownRecipient(t *testing.T) {
	ctx := context.Background()
	f := createTestMessageService(t)

	f.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, domainerrors.ErrUserNotFound).Once()

	_, err := f.service.SendDirect(ctx, aliceActor, 99, "anyone?")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestMessageService_Inbox(t *testing.T) {
	ctx := context.Background()
	f := createTestMessageService(t)

	messages := []*entity.Message{{ID: 1, Text: "hi", SenderID: 3, RecipientID: ptr(int64(2))}}
	f.msgRepo.EXPECT().ListReceivedBy(ctx, int64(2)).Return(messages, nil).Once()

	got, err := f.service.Inbox(ctx, aliceActor)
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestMessageService_ListSentBy(t *testing.T) {
	ctx := context.Background()

	t.Run("self", func(t *testing.T) {
		f := createTestMessageService(t)
		f.userRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.User{ID: 2}, nil).Once()
		f.msgRepo.EXPECT().ListSentBy(ctx, int64(2)).Return([]*entity.Message{}, nil).Once()

		_, err := f.service.ListSentBy(ctx, aliceActor, 2)
		assert.NoError(t, err)
	})

	t.Run("other user forbidden", func(t *testing.T) {
		f := createTestMessageService(t)

		_, err := f.service.ListSentBy(ctx, aliceActor, 3)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin on missing user", func(t *testing.T) {
		f := createTestMessageService(t)
		f.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, domainerrors.ErrUserNotFound).Once()

		_, err := f.service.ListSentBy(ctx, adminActor, 9)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
