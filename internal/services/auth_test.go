package services

import (
	"testing"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc := NewAuthService(openTestDB(t), "test-secret", "admin", "motdepasse")
	require.NoError(t, svc.SeedPasswordHash())
	return svc
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login("admin", "motdepasse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("admin", "mauvais")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))

	_, err = svc.Login("autre", "motdepasse")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	svc := newAuthService(t)
	other := NewAuthService(svc.db, "other-secret", "admin", "motdepasse")

	token, err := other.GenerateToken("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)

	err := svc.ChangePassword("motdepasse", "court")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	err = svc.ChangePassword("mauvais", "nouveaumotdepasse")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))

	require.NoError(t, svc.ChangePassword("motdepasse", "nouveaumotdepasse"))

	// Old password no longer works; the new one does, even for a fresh
	// service instance reading the stored hash.
	assert.Error(t, svc.VerifyCredentials("admin", "motdepasse"))
	fresh := NewAuthService(svc.db, "test-secret", "admin", "motdepasse")
	require.NoError(t, fresh.VerifyCredentials("admin", "nouveaumotdepasse"))
}

func TestSeedPasswordHashKeepsExistingHash(t *testing.T) {
	svc := newAuthService(t)
	require.NoError(t, svc.ChangePassword("motdepasse", "nouveaumotdepasse"))

	// Re-seeding (a restart) must not clobber the changed password.
	require.NoError(t, svc.SeedPasswordHash())
	require.NoError(t, svc.VerifyCredentials("admin", "nouveaumotdepasse"))
}
