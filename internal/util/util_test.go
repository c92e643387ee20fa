package util

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTermFromArgs(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no args", nil, ""},
		{"single word", []string{"batman"}, "batman"},
		{"multiple words", []string{"the", "dark", "knight"}, "the dark knight"},
		{"only spaces", []string{" ", " "}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SearchTermFromArgs(tc.args))
		})
	}
}

func TestErrorHandler(t *testing.T) {
	defer SetDebugMode(false)

	err := errors.New("TMDB_API_KEY is required")

	SetDebugMode(false)
	msg := ErrorHandler(err)
	assert.Contains(t, msg, "TMDB_API_KEY is required")
	assert.Contains(t, msg, "-debug")

	SetDebugMode(true)
	msg = ErrorHandler(err)
	assert.Contains(t, msg, "DEBUG ERROR")
	assert.Contains(t, msg, "TMDB_API_KEY is required")
}

func TestHelpText(t *testing.T) {
	help := HelpText()

	for _, want := range []string{"TMDB_API_KEY", "-debug", "-lang", "-version"} {
		assert.Contains(t, help, want)
	}
}

func TestInitLogger_WritesToGivenWriter(t *testing.T) {
	defer func() { Logger = nil }()

	var buf bytes.Buffer
	InitLogger(&buf)
	require.NotNil(t, Logger)

	Error("list fetch failed", "term", "batman")
	assert.Contains(t, buf.String(), "list fetch failed")
	assert.Contains(t, buf.String(), "batman")
}

func TestLogHelpers_NilLogger(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Info("ignored")
		Warn("ignored")
		Error("ignored")
		Errorf("ignored %d", 1)
	})
}

func TestGetSharedClient(t *testing.T) {
	c1 := GetSharedClient()
	c2 := GetSharedClient()

	require.NotNil(t, c1)
	assert.Same(t, c1, c2)
	assert.NotZero(t, c1.Timeout)
}
