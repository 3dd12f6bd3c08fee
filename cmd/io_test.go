package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		err  bool
	}{
		{"2357136044", 2357136044, false},
		{"0x8c7f0aac", 0x8c7f0aac, false},
		{"4294967296", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}
	for _, c := range cases {
		got, err := parseWord(c.in)
		if c.err {
			assert.Errorf(t, err, "input %q", c.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestReadWords(t *testing.T) {
	words, err := readWords(strings.NewReader("1 2\n0x10\n\n  42\n"))
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 16, 42}, words)
}

func TestDecodeHex(t *testing.T) {
	b, err := decodeHex([]byte("8c7f 0aac\n97c4aa2f\n"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x8c, 0x7f, 0x0a, 0xac, 0x97, 0xc4, 0xaa, 0x2f}, b)

	_, err = decodeHex([]byte("zz"))
	assert.Error(t, err)
}

func TestWriteOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeOutput(buf, []byte{1, 2}, false))
	assert.Equal(t, []byte{1, 2}, buf.Bytes())

	buf.Reset()
	require.NoError(t, writeOutput(buf, []byte{1, 2}, true))
	assert.Equal(t, "0102\n", buf.String())
}

func TestCipherSeed(t *testing.T) {
	defer func() { cipherKey, cipherKey16 = 0, false }()

	cipherKey, cipherKey16 = 0xbeef, true
	seed, err := cipherSeed()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xbeef), seed)

	cipherKey = 0x10000
	_, err = cipherSeed()
	assert.Error(t, err)
}
