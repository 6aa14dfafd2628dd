package validator

import (
	"testing"

	domainerrors "messenger/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string  `json:"name" validate:"required,min=3,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=3,max=255,letterdigit"`
	Role     *string `json:"role" validate:"omitempty,oneof=User Admin"`
}

func TestValidate(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	admin, root := "Admin", "root"

	tests := []struct {
		name    string
		input   signup
		wantErr string
	}{
		{name: "valid", input: signup{Name: "alice", Email: "alice@example.com", Password: "abc1"}},
		{name: "valid with role", input: signup{Name: "alice", Email: "alice@example.com", Password: "abc1", Role: &admin}},
		{name: "short name", input: signup{Name: "al", Email: "alice@example.com", Password: "abc1"}, wantErr: "name must be at least 3"},
		{name: "bad email", input: signup{Name: "alice", Email: "alice", Password: "abc1"}, wantErr: "email must be a valid email"},
		{name: "no digit", input: signup{Name: "alice", Email: "alice@example.com", Password: "abcd"}, wantErr: "password must contain a letter and a digit"},
		{name: "no letter", input: signup{Name: "alice", Email: "alice@example.com", Password: "1234"}, wantErr: "password must contain a letter and a digit"},
		{name: "unknown role", input: signup{Name: "alice", Email: "alice@example.com", Password: "abc1", Role: &root}, wantErr: "role must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			appErr, ok := err.(domainerrors.AppError)
			require.True(t, ok)
			assert.Contains(t, appErr.Details(), tt.wantErr)
		})
	}
}
