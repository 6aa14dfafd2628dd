package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"messenger/config"
	"messenger/internal/delivery/http/middleware"
	"messenger/internal/delivery/http/router"
	"messenger/internal/delivery/http/router/handler"
	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/domain/service"
	"messenger/internal/infra/auth"
	mockUC "messenger/internal/mocks/usecase"
	"messenger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type apiFixture struct {
	e             *echo.Echo
	tokens        service.TokenService
	auth          *mockUC.MockAuthUsecase
	users         *mockUC.MockUserUsecase
	messages      *mockUC.MockMessageUsecase
	conversations *mockUC.MockConversationUsecase
	dev           *mockUC.MockDevUsecase
}

var (
	adminUser = &entity.User{ID: 1, Name: "admin", Email: "admin@example.com", Role: entity.RoleAdmin}
	aliceUser = &entity.User{ID: 2, Name: "alice", Email: "alice@example.com", Role: entity.RoleUser}
)

func newTestConfig(devRoutes bool) *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.JWT = config.JWTConfig{
		Secret:   strings.Repeat("s", config.MinSecretLength),
		Issuer:   "messenger",
		Audience: "messenger-clients",
	}
	cfg.DevRoutes = &config.DevRoutesConfig{Enabled: devRoutes}

	return cfg
}

func newAPIFixture(t *testing.T, devRoutes bool) *apiFixture {
	t.Helper()

	cfg := newTestConfig(devRoutes)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	f := &apiFixture{
		tokens:        tokens,
		auth:          mockUC.NewMockAuthUsecase(t),
		users:         mockUC.NewMockUserUsecase(t),
		messages:      mockUC.NewMockMessageUsecase(t),
		conversations: mockUC.NewMockConversationUsecase(t),
		dev:           mockUC.NewMockDevUsecase(t),
	}

	f.e, err = NewEcho(cfg, logger)
	require.NoError(t, err)

	router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(f.auth),
		UserHandler:         handler.NewUserHandler(f.users),
		MessageHandler:      handler.NewMessageHandler(f.messages),
		ConversationHandler: handler.NewConversationHandler(f.conversations),
		DevHandler:          handler.NewDevHandler(f.dev),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokens, logger),
		Config:              cfg,
	}).RegisterRoutes(f.e)

	return f
}

func (f *apiFixture) tokenFor(t *testing.T, user *entity.User) string {
	t.Helper()

	token, err := f.tokens.Issue(user, time.Now().UTC())
	require.NoError(t, err)

	return token
}

func (f *apiFixture) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t, false)

	rec, env := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestRegister(t *testing.T) {
	t.Run("created without verifier", func(t *testing.T) {
		f := newAPIFixture(t, false)
		f.auth.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Name: "alice", Email: "alice@example.com", Password: "Secret1",
		}).Return(&entity.User{ID: 2, Name: "alice", Email: "alice@example.com", PasswordHash: "c2FsdA==", Role: entity.RoleUser}, nil).Once()

		rec, env := f.do(t, http.MethodPost, "/api/auth/register", "",
			`{"name":"alice","email":"alice@example.com","password":"Secret1"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":2,"name":"alice","email":"alice@example.com","role":"User"}`, string(env.Data))
		assert.NotContains(t, rec.Body.String(), "c2FsdA==")
	})

	t.Run("password without digit", func(t *testing.T) {
		f := newAPIFixture(t, false)

		rec, env := f.do(t, http.MethodPost, "/api/auth/register", "",
			`{"name":"alice","email":"alice@example.com","password":"Secret"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "password")
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newAPIFixture(t, false)
		f.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

		rec, env := f.do(t, http.MethodPost, "/api/auth/register", "",
			`{"name":"alice","email":"alice@example.com","password":"Secret1"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newAPIFixture(t, false)

		rec, env := f.do(t, http.MethodPost, "/api/auth/register", "", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestLogin(t *testing.T) {
	f := newAPIFixture(t, false)
	f.auth.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "Secret1"}).
		Return(&usecase.LoginOutput{AccessToken: "token", User: aliceUser}, nil).Once()
	f.auth.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong1"}).
		Return(nil, domainerrors.ErrInvalidCredentials).Once()

	rec, env := f.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"alice@example.com","password":"Secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accessToken":"token","user":{"id":2,"name":"alice","email":"alice@example.com","role":"User"}}`, string(env.Data))

	rec, env = f.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"alice@example.com","password":"wrong1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestProtectedRoutes(t *testing.T) {
	f := newAPIFixture(t, false)

	rec, env := f.do(t, http.MethodGet, "/api/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)

	rec, env = f.do(t, http.MethodGet, "/api/users", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", env.Error.Code)

	f.users.EXPECT().List(mock.Anything).Return([]*entity.User{adminUser, aliceUser}, nil).Once()
	rec, env = f.do(t, http.MethodGet, "/api/users", f.tokenFor(t, aliceUser), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"role":"Admin"`)
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	f := newAPIFixture(t, false)
	body := `{"name":"carol","email":"carol@example.com","password":"Secret1","role":"Admin"}`

	rec, env := f.do(t, http.MethodPost, "/api/users", f.tokenFor(t, aliceUser), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	f.users.EXPECT().Create(mock.Anything, usecase.Actor{UserID: 1, Role: entity.RoleAdmin}, &usecase.CreateUserInput{
		Name: "carol", Email: "carol@example.com", Password: "Secret1", Role: entity.RoleAdmin,
	}).Return(&entity.User{ID: 4, Name: "carol", Email: "carol@example.com", Role: entity.RoleAdmin}, nil).Once()

	rec, env = f.do(t, http.MethodPost, "/api/users", f.tokenFor(t, adminUser), body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":4,"name":"carol","email":"carol@example.com","role":"Admin"}`, string(env.Data))
}

func TestUserByID(t *testing.T) {
	f := newAPIFixture(t, false)
	token := f.tokenFor(t, aliceUser)
	alice := usecase.Actor{UserID: 2, Role: entity.RoleUser}

	rec, env := f.do(t, http.MethodGet, "/api/users/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	f.users.EXPECT().Get(mock.Anything, int64(9)).Return(nil, domainerrors.ErrUserNotFound).Once()
	rec, _ = f.do(t, http.MethodGet, "/api/users/9", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	newName := "alicia"
	f.users.EXPECT().Update(mock.Anything, alice, int64(2), &usecase.UpdateUserInput{Name: &newName}).
		Return(&entity.User{ID: 2, Name: newName, Email: "alice@example.com", Role: entity.RoleUser}, nil).Once()
	rec, env = f.do(t, http.MethodPut, "/api/users/2", token, `{"name":"alicia"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"alicia"`)

	f.users.EXPECT().Delete(mock.Anything, alice, int64(2)).Return(nil).Once()
	rec, _ = f.do(t, http.MethodDelete, "/api/users/2", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMessages(t *testing.T) {
	f := newAPIFixture(t, false)
	token := f.tokenFor(t, aliceUser)
	alice := usecase.Actor{UserID: 2, Role: entity.RoleUser}
	sentAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	bob := int64(3)

	f.messages.EXPECT().SendDirect(mock.Anything, alice, int64(3), "hi bob").
		Return(&entity.Message{ID: 10, Text: "hi bob", SenderID: 2, RecipientID: &bob, CreatedAt: sentAt}, nil).Once()
	rec, env := f.do(t, http.MethodPost, "/api/users/3/messages", token, `{"text":"hi bob"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":10,"text":"hi bob","senderId":2,"recipientId":3,"createdAt":"2024-05-01T12:00:00Z"}`, string(env.Data))

	rec, env = f.do(t, http.MethodPost, "/api/users/3/messages", token, `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	f.messages.EXPECT().Inbox(mock.Anything, alice).Return([]*entity.Message{}, nil).Once()
	rec, env = f.do(t, http.MethodGet, "/api/messages", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	f.messages.EXPECT().ListSentBy(mock.Anything, alice, int64(3)).Return(nil, domainerrors.ErrForbidden).Once()
	rec, _ = f.do(t, http.MethodGet, "/api/users/3/messages", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestConversations(t *testing.T) {
	f := newAPIFixture(t, false)
	token := f.tokenFor(t, aliceUser)
	alice := usecase.Actor{UserID: 2, Role: entity.RoleUser}
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	f.conversations.EXPECT().Create(mock.Anything, alice).Return(&entity.Conversation{ID: 5, CreatedAt: createdAt}, nil).Once()
	rec, env := f.do(t, http.MethodPost, "/api/conversations", token, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":5,"createdAt":"2024-05-01T12:00:00Z"}`, string(env.Data))

	f.conversations.EXPECT().AddMember(mock.Anything, alice, int64(5), int64(3)).Return(nil, domainerrors.ErrAlreadyConversationMember).Once()
	rec, env = f.do(t, http.MethodPost, "/api/conversations/5/users", token, `{"userId":3}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_CONVERSATION_MEMBER", env.Error.Code)

	f.conversations.EXPECT().ListMembers(mock.Anything, int64(5)).
		Return([]*entity.ConversationMember{{ConversationID: 5, UserID: 2}, {ConversationID: 5, UserID: 3}}, nil).Once()
	rec, env = f.do(t, http.MethodGet, "/api/conversations/5/users", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"userId":2},{"userId":3}]`, string(env.Data))

	f.conversations.EXPECT().PostMessage(mock.Anything, alice, int64(6), "hello").Return(nil, domainerrors.ErrNotConversationMember).Once()
	rec, env = f.do(t, http.MethodPost, "/api/conversations/6/messages", token, `{"text":"hello"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_CONVERSATION_MEMBER", env.Error.Code)
}

func TestDevRoutes(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		f := newAPIFixture(t, true)
		f.dev.EXPECT().ResetDatabase(mock.Anything).Return(nil).Once()

		rec, _ := f.do(t, http.MethodPost, "/api/dev/reset-database", "", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		f := newAPIFixture(t, false)

		rec, _ := f.do(t, http.MethodPost, "/api/dev/reset-database", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
