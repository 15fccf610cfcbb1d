package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Vectus-Drive/backend/internal/auth"
	autherrors "github.com/Vectus-Drive/backend/internal/auth/errors"
	"github.com/Vectus-Drive/backend/internal/domain"
)

func newTestManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := newTestManager()

	pair, err := m.IssuePair("user-1", domain.RoleCustomer)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEmpty(t, pair.RefreshJTI)

	access, err := m.ParseAccess(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", access.UserID)
	assert.Equal(t, domain.RoleCustomer, access.Role)
	assert.NotEmpty(t, access.JTI)

	refresh, err := m.ParseRefresh(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", refresh.UserID)
	assert.Equal(t, pair.RefreshJTI, refresh.JTI)

	// Tokens of one kind must not pass as the other.
	_, err = m.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	_, err = m.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	m := newTestManager()
	other := auth.NewTokenManager("different-secret", 15*time.Minute, 24*time.Hour)

	pair, err := m.IssuePair("user-1", domain.RoleAdmin)
	assert.NoError(t, err)

	_, err = other.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	// A non-positive TTL falls back to the default, so the shortest TTL a
	// manager can be built with is one nanosecond.
	m := auth.NewTokenManager("test-secret", time.Nanosecond, 24*time.Hour)

	pair, err := m.IssuePair("user-1", domain.RoleCustomer)
	assert.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	_, err = m.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := newTestManager()
	_, err := m.ParseAccess("not.a.token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
