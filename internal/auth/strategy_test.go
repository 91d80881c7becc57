package auth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanbek/weatherdesk/internal/models"
)

// fakeAuthenticator accepts one credential pair.
type fakeAuthenticator struct {
	user     models.User
	password string
}

func (f *fakeAuthenticator) Authenticate(username, password string) (models.User, error) {
	if username != f.user.Username || password != f.password {
		return models.User{}, fmt.Errorf("authentication failed")
	}
	return f.user, nil
}

func TestUserFlagStrategyReadsAdminFromRecord(t *testing.T) {
	users := &fakeAuthenticator{
		user:     models.User{ID: "u1", Username: "marzhan", IsAdmin: true},
		password: "pw",
	}
	strategy := NewUserFlagStrategy(users)

	p, err := strategy.Login("marzhan", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.True(t, p.IsAdmin)

	_, err = strategy.Login("marzhan", "wrong")
	assert.Error(t, err)
}

func TestFixedAdminStrategy(t *testing.T) {
	users := &fakeAuthenticator{
		user:     models.User{ID: "u1", Username: "marzhan", IsAdmin: true},
		password: "pw",
	}
	strategy := NewFixedAdminStrategy(users, "root", "hunter2")

	t.Run("configured pair is admin", func(t *testing.T) {
		p, err := strategy.Login("root", "hunter2")
		require.NoError(t, err)
		assert.True(t, p.IsAdmin)
		assert.Equal(t, FixedAdminID, p.UserID)
	})

	t.Run("wrong admin password fails", func(t *testing.T) {
		_, err := strategy.Login("root", "hunter3")
		assert.Error(t, err)
	})

	t.Run("regular users never get admin", func(t *testing.T) {
		// Even with is_admin set on the record, this model ignores it.
		p, err := strategy.Login("marzhan", "pw")
		require.NoError(t, err)
		assert.False(t, p.IsAdmin)
		assert.Equal(t, "u1", p.UserID)
	})

	t.Run("unknown user fails", func(t *testing.T) {
		_, err := strategy.Login("nobody", "pw")
		assert.Error(t, err)
	})
}
