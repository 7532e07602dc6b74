package crypto

import (
	"errors"
	"strings"
)

// sealedPrefix marks a stored value produced by Box.Seal with a key.
const sealedPrefix = "enc:v1:"

var ErrKeyRequired = errors.New("value is sealed but no encryption key is configured")

// Box seals blobs for storage. A Box without a key stores plaintext and
// still opens plaintext written before a key was configured.
type Box struct {
	key []byte
}

// NewBox builds a Box from a 64-char hex key. An empty key yields a
// passthrough Box.
func NewBox(hexKey string) (*Box, error) {
	if hexKey == "" {
		return &Box{}, nil
	}
	key, err := KeyFromHex(hexKey)
	if err != nil {
		return nil, err
	}
	return &Box{key: key}, nil
}

func (b *Box) Enabled() bool { return b != nil && len(b.key) > 0 }

func (b *Box) Seal(plain []byte) (string, error) {
	if !b.Enabled() {
		return string(plain), nil
	}
	enc, err := Encrypt(b.key, plain)
	if err != nil {
		return "", err
	}
	return sealedPrefix + enc, nil
}

func (b *Box) Open(stored string) ([]byte, error) {
	enc, sealed := strings.CutPrefix(stored, sealedPrefix)
	if !sealed {
		return []byte(stored), nil
	}
	if !b.Enabled() {
		return nil, ErrKeyRequired
	}
	return Decrypt(b.key, enc)
}
