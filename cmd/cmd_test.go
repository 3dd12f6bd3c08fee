package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestUntemperCmd(t *testing.T) {
	out, err := execute(t, "untemper", "2357136044")
	require.NoError(t, err)
	assert.Equal(t, "2443250962\t0x91a10d12\n", out)
}

func TestEncryptCmd_key16WithNow(t *testing.T) {
	t.Cleanup(func() {
		cipherKey16, cipherNow = false, false
		for _, name := range []string{"key16", "now"} {
			encryptCmd.Flags().Lookup(name).Changed = false
		}
	})

	_, err := execute(t, "encrypt", "--key16", "--now")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key16")
}
