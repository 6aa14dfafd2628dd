package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"messenger/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrUserNotFound.WithDetails("user 42")

	assert.True(t, stderrors.Is(err, ErrUserNotFound))
	assert.False(t, stderrors.Is(err, ErrConversationNotFound))
	assert.Equal(t, "user 42", err.Details())
	assert.Empty(t, ErrUserNotFound.Details())
}

func TestBaseError_WrapMessageStillResolvesAppError(t *testing.T) {
	wrapped := ErrNotConversationMember.WrapMessage("post message")

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "NOT_CONVERSATION_MEMBER", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to find user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to find user", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, stderrors.Is(err, cause))
}
