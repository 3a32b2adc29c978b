//go:build unit

package user_test

import (
	"testing"

	"oficina-criativa/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("ana@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, user.RoleUser)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, email, u.Email())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.Empty(t, u.PasswordHash())
	assert.Nil(t, u.LastLogin())
}

func TestNewUserGeneratesUniqueIDs(t *testing.T) {
	email, err := user.NewEmail("ana@example.com")
	require.NoError(t, err)

	a := user.NewUser(email, user.RoleUser)
	b := user.NewUser(email, user.RoleAdmin)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, user.RoleAdmin, b.Role())
}
