package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist/internal/model"
	"legalassist/internal/pkg/jwtutil"
	"legalassist/internal/repository"
	"legalassist/internal/repository/memory"
)

// racingUserStore hides an existing user from the lookup, as if another
// instance inserted it after the check.
type racingUserStore struct {
	repository.UserStore
}

func (racingUserStore) GetByUsername(string) (*model.User, error) {
	return nil, nil
}

func TestEnsureUserAndLogin(t *testing.T) {
	svc := NewAuthService(memory.NewStore().Users(), "secret", time.Hour)

	created, err := svc.EnsureUser("admin", "correct-horse")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureUser("admin", "another-password")
	require.NoError(t, err)
	assert.False(t, created)

	res, err := svc.Login(LoginInput{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.User.Username)

	claims, err := jwtutil.ParseToken("secret", res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	user, err := svc.GetUserByID(claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(memory.NewStore().Users(), "secret", time.Hour)
	_, err := svc.EnsureUser("admin", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Username: "admin", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login(LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login(LoginInput{Username: "", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEnsureUserRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(memory.NewStore().Users(), "secret", time.Hour)
	_, err := svc.EnsureUser("admin", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEnsureUserToleratesConcurrentCreate(t *testing.T) {
	users := memory.NewStore().Users()
	require.NoError(t, users.Create(&model.User{Username: "admin", PasswordHash: "x"}))
	svc := NewAuthService(racingUserStore{UserStore: users}, "secret", time.Hour)

	created, err := svc.EnsureUser("admin", "correct-horse")
	require.NoError(t, err)
	assert.False(t, created)
}
