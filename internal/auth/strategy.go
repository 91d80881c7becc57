package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/aslanbek/weatherdesk/internal/models"
	"github.com/aslanbek/weatherdesk/internal/session"
)

// FixedAdminID is the principal id used when the configured admin credential
// pair signs in. It never corresponds to a row in the users table.
const FixedAdminID = "admin"

// UserAuthenticator verifies a credential pair against the user collection.
type UserAuthenticator interface {
	Authenticate(username, password string) (models.User, error)
}

// LoginStrategy turns a credential pair into a session principal. The two
// implementations correspond to the two authorization models the app
// supports; exactly one is selected at startup.
type LoginStrategy interface {
	Login(username, password string) (session.Principal, error)
}

// UserFlagStrategy authenticates against the user collection and reads the
// admin flag from the user record.
type UserFlagStrategy struct {
	users UserAuthenticator
}

// NewUserFlagStrategy creates the per-user-flag authorization model.
func NewUserFlagStrategy(users UserAuthenticator) *UserFlagStrategy {
	return &UserFlagStrategy{users: users}
}

// Login implements LoginStrategy.
func (s *UserFlagStrategy) Login(username, password string) (session.Principal, error) {
	user, err := s.users.Authenticate(username, password)
	if err != nil {
		return session.Principal{}, err
	}
	return session.Principal{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// FixedAdminStrategy authenticates a configured credential pair as the sole
// admin, bypassing the user collection entirely. All other credentials fall
// through to the user collection and can never yield an admin principal.
type FixedAdminStrategy struct {
	users         UserAuthenticator
	adminUsername string
	adminPassword string
}

// NewFixedAdminStrategy creates the fixed-credential authorization model.
func NewFixedAdminStrategy(users UserAuthenticator, adminUsername, adminPassword string) *FixedAdminStrategy {
	return &FixedAdminStrategy{
		users:         users,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Login implements LoginStrategy.
func (s *FixedAdminStrategy) Login(username, password string) (session.Principal, error) {
	if username == s.adminUsername {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
			return session.Principal{}, fmt.Errorf("invalid admin credentials")
		}
		return session.Principal{
			UserID:   FixedAdminID,
			Username: s.adminUsername,
			IsAdmin:  true,
		}, nil
	}

	user, err := s.users.Authenticate(username, password)
	if err != nil {
		return session.Principal{}, err
	}
	return session.Principal{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  false, // admin rights exist only for the fixed credential
	}, nil
}
