package tone

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, 0.4, config.ContextWeight)
	assert.Equal(t, 0.3, config.NGramWeight)
	assert.Equal(t, 0.2, config.IntentWeight)
	assert.Equal(t, 0.1, config.KeywordWeight)
	assert.Equal(t, 1.5, config.Amplifier)
	assert.Equal(t, 0.5, config.Hedge)
	assert.Equal(t, 0.7, config.ContrastBefore)
	assert.Equal(t, 1.3, config.ContrastAfter)
	assert.Equal(t, 1.2, config.IntentMultiplier)
	assert.Equal(t, 1.5, config.StrongIntentMultiplier)
	assert.Equal(t, 10, config.ContextWindow)
	assert.Equal(t, 20, config.NGramGap)
	assert.Equal(t, 2.0, config.NGramMatchWeight)
	assert.Equal(t, 1e-6, config.Epsilon)
	assert.Equal(t, 5, config.TopTerms)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "tone.yaml", "context_weight: 0.5\nngram_weight: 0.2\namplifier: 2.0\nkeyword_only: true\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, config.ContextWeight)
	assert.Equal(t, 0.2, config.NGramWeight)
	assert.Equal(t, 0.2, config.IntentWeight)
	assert.Equal(t, 2.0, config.Amplifier)
	assert.Equal(t, 0.5, config.Hedge)
	assert.True(t, config.KeywordOnly)

	t.Setenv("TONE_AMPLIFIER", "1.8")
	t.Setenv("TONE_CONTEXT_WINDOW", "12")
	config, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1.8, config.Amplifier)
	assert.Equal(t, 12, config.ContextWindow)
}

func TestLoadConfigEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "TONE_HEDGE=0.25\n")
	t.Cleanup(func() { os.Unsetenv("TONE_HEDGE") })

	config, err := LoadConfig("", path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, config.Hedge)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, ErrConfig))

	_, err = LoadConfig(writeFile(t, "bad.yaml", "context_weight: [\n"))
	assert.True(t, errors.Is(err, ErrConfig))

	_, err = LoadConfig(writeFile(t, "sum.yaml", "context_weight: 0.9\n"))
	assert.True(t, errors.Is(err, ErrConfig))

	_, err = LoadConfig("", filepath.Join(t.TempDir(), "missing.env"))
	assert.True(t, errors.Is(err, ErrConfig))

	t.Setenv("TONE_WORKERS", "many")
	_, err = LoadConfig("")
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		mutate func(c *Config)
		desc   string
	}{
		{func(c *Config) { c.KeywordWeight = -0.1; c.ContextWeight = 0.6 }, "negative weight"},
		{func(c *Config) { c.IntentWeight = 0.3 }, "weights above one"},
		{func(c *Config) { c.Hedge = 0 }, "zero hedge"},
		{func(c *Config) { c.Amplifier = -1 }, "negative amplifier"},
		{func(c *Config) { c.Epsilon = 0 }, "zero epsilon"},
		{func(c *Config) { c.ContextWindow = -1 }, "negative window"},
		{func(c *Config) { c.NGramGap = -1 }, "negative gap"},
		{func(c *Config) { c.TopTerms = -1 }, "negative top terms"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			err := config.Validate()
			assert.True(t, errors.Is(err, ErrConfig), "got %v", err)
		})
	}
}
