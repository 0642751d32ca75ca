package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/haikunator/pkg/config"
	"github.com/dmitrymomot/haikunator/pkg/haikunator"
)

func execute(t *testing.T, args ...string) ([]string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetCache)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return nil, stderr.String(), err
	}
	return strings.Split(out, "\n"), stderr.String(), err
}

func TestRoot_Default(t *testing.T) {
	lines, _, err := execute(t)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\w+-\w+-[0-9]{4}$`, lines[0])
}

func TestRoot_Count(t *testing.T) {
	lines, _, err := execute(t, "-n", "5")
	require.NoError(t, err)
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Regexp(t, `^\w+-\w+-[0-9]{4}$`, l)
	}
}

func TestRoot_Flags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		pattern string
	}{
		{name: "delimiter", args: []string{"-d", "@"}, pattern: `^\w+@\w+@[0-9]{4}$`},
		{name: "hex", args: []string{"--hex", "-l", "8"}, pattern: `^\w+-\w+-[0-9a-f]{8}$`},
		{name: "no token", args: []string{"--token-length", "0"}, pattern: `^\w+-\w+$`},
		{name: "unicode chars", args: []string{"--chars", "忠犬ハチ公", "-l", "5"}, pattern: `^\w+-\w+-[忠犬ハチ公]{5}$`},
		{name: "word list", args: []string{"--words", "testdata/words.yaml"}, pattern: `^(flying|bubbly)-(bat|soda)-[0-9]{4}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, _, err := execute(t, append(tt.args, "-n", "20")...)
			require.NoError(t, err)
			require.Len(t, lines, 20)
			for _, l := range lines {
				assert.Regexp(t, tt.pattern, l)
			}
		})
	}
}

func TestRoot_Seed(t *testing.T) {
	first, _, err := execute(t, "--seed", "42", "-n", "10")
	require.NoError(t, err)
	second, _, err := execute(t, "--seed", "42", "-n", "10")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoot_Environment(t *testing.T) {
	t.Setenv("HAIKUNATOR_DELIMITER", ".")
	t.Setenv("HAIKUNATOR_TOKEN_HEX", "true")

	lines, _, err := execute(t)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\w+\.\w+\.[0-9a-f]{4}$`, lines[0])

	// flags win over the environment
	lines, _, err = execute(t, "--delimiter=-")
	require.NoError(t, err)
	assert.Regexp(t, `^\w+-\w+-[0-9a-f]{4}$`, lines[0])
}

func TestRoot_EnvFile(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("HAIKUNATOR_DELIMITER")
		os.Unsetenv("HAIKUNATOR_TOKEN_LENGTH")
	})

	lines, _, err := execute(t, "--env-file", "testdata/.env.test")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\w+\+\w+\+[0-9]{3}$`, lines[0])
}

func TestRoot_DebugLogging(t *testing.T) {
	lines, logs, err := execute(t, "--log-level", "debug", "--log-format", "json", "-n", "2")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Contains(t, logs, `"msg":"generator configured"`)
	assert.Contains(t, logs, `"component":"haikunate"`)
	assert.Contains(t, logs, `"count":2`)
}

func TestRoot_Errors(t *testing.T) {
	t.Run("negative token length", func(t *testing.T) {
		_, _, err := execute(t, "--token-length=-1")
		assert.ErrorIs(t, err, haikunator.ErrInvalidTokenLength)
	})

	t.Run("zero count", func(t *testing.T) {
		_, _, err := execute(t, "-n", "0")
		assert.ErrorIs(t, err, errInvalidCount)
	})

	t.Run("missing word list", func(t *testing.T) {
		_, logs, err := execute(t, "--words", "testdata/missing.yaml")
		assert.Error(t, err)
		assert.Contains(t, logs, "loading word list")
	})

	t.Run("missing env file", func(t *testing.T) {
		_, _, err := execute(t, "--env-file", "testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadEnvFile)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud")
		assert.Error(t, err)
	})

	t.Run("positional arguments rejected", func(t *testing.T) {
		_, _, err := execute(t, "extra")
		assert.Error(t, err)
	})
}
