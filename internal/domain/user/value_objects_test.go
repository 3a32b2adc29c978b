//go:build unit

package user_test

import (
	"strings"
	"testing"

	"oficina-criativa/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := user.NewEmail("Ana@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", e.Value())
	})

	t.Run("rejects missing at sign", func(t *testing.T) {
		_, err := user.NewEmail("not-an-email")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("rejects missing domain dot", func(t *testing.T) {
		_, err := user.NewEmail("ana@localhost")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := user.NewEmail("   ")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("truncates before the shape check", func(t *testing.T) {
		long := strings.Repeat("a", user.MaxEmailLength) + "@example.com"
		_, err := user.NewEmail(long)
		// The cut lands inside the local part, so the shape check fails.
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("long but valid emails survive truncation", func(t *testing.T) {
		local := strings.Repeat("a", 50)
		e, err := user.NewEmail(local + "@example.com")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(e.Value()), user.MaxEmailLength)
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"user", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
