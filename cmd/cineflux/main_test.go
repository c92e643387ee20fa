package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLog_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cineflux.log")

	w, closeFn, err := openLog(path)
	require.NoError(t, err)
	defer closeFn()

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestOpenLog_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	w, closeFn, err := openLog(filepath.Join(blocker, "cineflux.log"))
	require.Error(t, err)
	assert.NotNil(t, w)
	assert.NotPanics(t, closeFn)
}

func TestRun_VersionAndHelp(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-version"}))
	assert.Equal(t, 0, run([]string{"-h"}))
}

func TestRun_BadFlag(t *testing.T) {
	assert.Equal(t, 2, run([]string{"-definitely-not-a-flag"}))
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	assert.Equal(t, 1, run(nil))
}
