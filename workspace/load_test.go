package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	// Run from an empty directory so no chromana.toml is picked up.
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "icons", cfg.Paths.Icons)
	assert.Equal(t, "dist", cfg.Paths.Dist)
	assert.Equal(t, "Chromana", cfg.Font.FamilyPrefix)
	assert.Equal(t, "nanoemoji", cfg.Assembly.NanoemojiCommand)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Greater(t, cfg.Build.Workers, 0, "workers fallback should resolve to NumCPU")
}

func TestLoadFromFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "chromana.toml")
	content := `
[paths]
icons = "artwork"

[font]
family_prefix = "Glyphona"

[build]
workers = 3

[server]
port = 9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "artwork", cfg.Paths.Icons)
	assert.Equal(t, "Glyphona", cfg.Font.FamilyPrefix)
	assert.Equal(t, 3, cfg.Build.Workers)
	assert.Equal(t, 9000, cfg.Server.Port)
	// Unset sections keep defaults.
	assert.Equal(t, "dist", cfg.Paths.Dist)
	assert.Equal(t, "python3", cfg.Assembly.PythonCommand)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
