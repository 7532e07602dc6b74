package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestBox_SealOpen(t *testing.T) {
	box, err := NewBox(testKey)
	require.NoError(t, err)
	require.True(t, box.Enabled())

	sealed, err := box.Seal([]byte(`{"scores":[]}`))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "scores")

	plain, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"scores":[]}`, string(plain))

	legacy, err := box.Open(`{"scores":[1]}`)
	require.NoError(t, err)
	assert.Equal(t, `{"scores":[1]}`, string(legacy))
}

func TestBox_Passthrough(t *testing.T) {
	box, err := NewBox("")
	require.NoError(t, err)
	assert.False(t, box.Enabled())

	stored, err := box.Seal([]byte("plain"))
	require.NoError(t, err)
	assert.Equal(t, "plain", stored)

	keyed, _ := NewBox(testKey)
	sealed, err := keyed.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = box.Open(sealed)
	assert.ErrorIs(t, err, ErrKeyRequired)
}

func TestBox_WrongKeyFails(t *testing.T) {
	a, _ := NewBox(testKey)
	b, _ := NewBox(strings.Repeat("ab", 32))

	sealed, err := a.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = b.Open(sealed)
	assert.Error(t, err)
}

func TestNewBox_InvalidKey(t *testing.T) {
	_, err := NewBox("abcd")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewBox("zz")
	assert.Error(t, err)
}
