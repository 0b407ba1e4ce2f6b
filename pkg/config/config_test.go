package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlinkcheck/pkg/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, []string{".md", ".markdown"}, cfg.Extensions)
	assert.Equal(t, "auto", cfg.Color)
	assert.Empty(t, cfg.Ignore)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte("extensions: [\".md\"]\nignore:\n  - vendor\n  - \"*.tmp.md\"\ncolor: never\n")

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, []string{".md"}, cfg.Extensions)
	assert.Equal(t, []string{"vendor", "*.tmp.md"}, cfg.Ignore)
	assert.Equal(t, "never", cfg.Color)
}

func TestFromYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("extensions: {broken"))
	require.Error(t, err)
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadDiscoversWellKnownName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".mdlinkcheck.yml")
	require.NoError(t, os.WriteFile(path, []byte("ignore: [node_modules]\n"), 0o644))

	cfg, err := config.Load(dir, "")
	require.NoError(t, err)

	// File values overlay defaults.
	assert.Equal(t, []string{"node_modules"}, cfg.Ignore)
	assert.Equal(t, []string{".md", ".markdown"}, cfg.Extensions)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	t.Parallel()

	_, err := config.Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.Default()
	merged := base.Merge(&config.Config{Color: "always"})

	assert.Equal(t, "always", merged.Color)
	assert.Equal(t, base.Extensions, merged.Extensions)
	// The receiver is not mutated.
	assert.Equal(t, "auto", base.Color)
}
