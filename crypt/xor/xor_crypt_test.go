package xor

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/twister/crypt"
	"github.com/tutils/twister/mt19937"
)

func TestEncrypt_selfInverse(t *testing.T) {
	cases := []struct {
		seed      uint32
		plaintext []byte
	}{
		{0, nil},
		{1, []byte("a")},
		{544141, []byte("abcdefg")},
		{0xffffffff, bytes.Repeat([]byte("YELLOW SUBMARINE"), 200)},
		{mt19937.Uint16Seed(0xbeef), []byte("A computer once beat me at chess, but it was no match for me at kick boxing")},
	}
	for _, c := range cases {
		ciphertext := Encrypt(c.plaintext, c.seed)
		require.Len(t, ciphertext, len(c.plaintext))
		assert.Equal(t, len(c.plaintext), len(Decrypt(ciphertext, c.seed)))
		if len(c.plaintext) > 0 {
			assert.Equal(t, c.plaintext, Decrypt(ciphertext, c.seed))
			assert.Equal(t, c.plaintext, Encrypt(Encrypt(c.plaintext, c.seed), c.seed))
		}
	}
}

func TestEncrypt_keystream(t *testing.T) {
	// encrypting zeros exposes the keystream: big-endian MT19937 outputs
	ks := Encrypt(make([]byte, 8), 0)
	assert.Equal(t, []byte{0x8c, 0x7f, 0x0a, 0xac, 0x97, 0xc4, 0xaa, 0x2f}, ks)
}

func TestXORKeyStream_short(t *testing.T) {
	assert.Panics(t, func() {
		XORKeyStream(make([]byte, 1), make([]byte, 2), Keystream(0))
	})
}

func TestNewCrypt(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCrypt(544141)
	en := c.NewEncoder(buf)
	de := c.NewDecoder(buf)

	en.Write([]byte("abc"))
	en.Write([]byte("defg"))
	assert.Equal(t, Encrypt([]byte("abcdefg"), 544141), buf.Bytes())

	bs, err := io.ReadAll(de)
	require.NoError(t, err)
	assert.Equal(t, "abcdefg", string(bs))
}

func TestNewCrypt_keystreamNewer(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCrypt(33280939)
	en := c.NewEncoder(buf, WithEncoderKeystreamNewer(crypt.NewLCGKeystream))
	en.Write([]byte("gob encoded args"))
	assert.NotEqual(t, Encrypt([]byte("gob encoded args"), 33280939), buf.Bytes())

	de := c.NewDecoder(buf, WithDecoderKeystreamNewer(crypt.NewLCGKeystream))
	bs, err := io.ReadAll(de)
	require.NoError(t, err)
	assert.Equal(t, "gob encoded args", string(bs))
}
