package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, keys Keys) *Manager {
	t.Helper()
	m, err := New(Config{Mode: keys.Mode, Issuer: "auth.psyassist", Audience: "psyassist-api", AccessTTL: time.Minute}, keys)
	require.NoError(t, err)
	return m
}

func TestIssueVerify(t *testing.T) {
	for name, keys := range map[string]Keys{"local": NewLocalKeys(), "public": NewPublicKeys()} {
		t.Run(name, func(t *testing.T) {
			m := newManager(t, keys)
			uid := uuid.New()
			sid := uuid.New()

			tok, err := m.IssueAccess(uid, &sid, "supervisor")
			require.NoError(t, err)

			claims, err := m.Verify(tok)
			require.NoError(t, err)
			assert.Equal(t, uid, claims.GetUserID())
			assert.Equal(t, sid, *claims.GetSessionID())
			assert.Equal(t, "supervisor", claims.GetRole())
			assert.Equal(t, "access", claims.GetTokenType())
			assert.False(t, claims.IsExpired())
		})
	}
}

func TestRoleDefaultsToPsychologist(t *testing.T) {
	m := newManager(t, NewLocalKeys())
	tok, err := m.IssueAccess(uuid.New(), nil, "")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Nil(t, claims.SessionID)
	assert.Equal(t, DefaultRole, claims.GetRole())
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newManager(t, NewLocalKeys())
	tok, err := m.IssueAccess(uuid.New(), nil, "")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = m.Verify(tok)
	var invalid ErrInvalidToken
	assert.ErrorAs(t, err, &invalid)
}

func TestVerifyRejectsOtherAudience(t *testing.T) {
	keys := NewLocalKeys()
	other, err := New(Config{Mode: ModeLocal, Issuer: "auth.psyassist", Audience: "billing"}, keys)
	require.NoError(t, err)
	tok, err := other.IssueAccess(uuid.New(), nil, "")
	require.NoError(t, err)

	_, err = newManager(t, keys).Verify(tok)
	assert.Error(t, err)
}

func TestLoadKeys(t *testing.T) {
	_, err := LoadKeys(KeyStrings{Mode: ModeLocal})
	assert.Error(t, err)
	_, err = LoadKeys(KeyStrings{Mode: "jwt"})
	assert.Error(t, err)

	pub := NewPublicKeys()
	keys, err := LoadKeys(KeyStrings{Mode: ModePublic, PublicHex: pub.Public.ExportHex()})
	require.NoError(t, err)
	assert.Nil(t, keys.Secret)
	assert.NotNil(t, keys.Public)
}

func TestNewRequiresIssuerAndAudience(t *testing.T) {
	_, err := New(Config{Mode: ModeLocal, Audience: "a"}, NewLocalKeys())
	assert.Error(t, err)
	_, err = New(Config{Mode: ModePublic, Issuer: "i", Audience: "a"}, NewLocalKeys())
	assert.Error(t, err)
}
