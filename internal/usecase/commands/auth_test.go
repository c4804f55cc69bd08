//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/pkg/jwt"
	"bloom-express/internal/pkg/password"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	hash, err := password.Hash("correct horse")
	require.NoError(t, err)

	store := newFakeStore()
	adminID := uuid.New()
	store.admins["pat@example.com"] = shared.AdminSnapshot{
		ID:           adminID,
		Email:        "pat@example.com",
		PasswordHash: hash,
	}

	jwtService := jwt.NewService("test-secret", time.Hour)
	cmds := commands.NewAuthCommands(&fakeUoW{store: store}, jwtService)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		result, err := cmds.Login(context.Background(), "pat@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "pat@example.com", result.Email)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, adminID, claims.AdminID)
		assert.Equal(t, "pat@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := cmds.Login(context.Background(), "pat@example.com", "wrong")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		_, err := cmds.Login(context.Background(), "nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
