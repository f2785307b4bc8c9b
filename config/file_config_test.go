package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"NumConv/constants"
)

func TestReadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "server:\n  addr: \"127.0.0.1:7000\"\nlimits:\n  max-phrase-length: 32\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	require.NotEmpty(t, cfg.Server.LogDir)
	require.NotEmpty(t, cfg.Server.LockFilePath)
	require.Equal(t, 32, cfg.Limits.MaxPhraseLength)
	require.Equal(t, constants.DefaultMaxEncodedLength, cfg.Limits.MaxEncodedLength)
}

func TestReadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("limits: [1, 2"), 0o600))
	_, err = ReadConfig(bad)
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	srv := DefaultServerOpts("/home/someone")
	require.Equal(t, ":6380", srv.Addr)
	require.Equal(t, "/home/someone/.numconv/logs", srv.LogDir)
	require.Equal(t, "/home/someone/.numconv/numconv-redis.lock", srv.LockFilePath)

	conv := DefaultConvOpts()
	require.Equal(t, constants.DefaultMaxPhraseLength, conv.MaxPhraseLength)
}
