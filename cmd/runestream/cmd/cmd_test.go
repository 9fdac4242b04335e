package cmd

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRow(t *testing.T) {
	assert.Equal(t, "", hexRow(nil))
	assert.Equal(t, "01 02 ff", hexRow([]byte{0x01, 0x02, 0xFF}))
}

func TestAsciiRow(t *testing.T) {
	assert.Equal(t, "Hi..", asciiRow([]byte{'H', 'i', 0x00, 0x7F}))
}

func TestCRCCommand(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "runestream_cmd_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "payload.bin")
	payload := []byte("hello world")
	require.NoError(t, os.WriteFile(path, payload, 0600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"crc", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), fmt.Sprintf("%08x", crc32.ChecksumIEEE(payload)))
}

func TestB64Commands(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"b64", "encode", "Man"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "TWFu\n", out.String())
	})

	t.Run("decode", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"b64", "decode", "TQ=="})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "M", out.String())
	})
}
