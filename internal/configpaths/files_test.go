package configpaths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padshape/internal/configpaths"
)

func TestConfigCandidatePaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AppData", dir)

	c := configpaths.ConfigCandidatePaths("my.toml")
	require.NotEmpty(t, c.TOML)
	assert.Equal(t, "my.toml", c.TOML[0])
	assert.Contains(t, c.YAML, filepath.Join(dir, "padshape", "config.yml"))
	assert.Contains(t, c.JSON, filepath.Join(dir, "padshape", "profile.json"))

	c = configpaths.ConfigCandidatePaths("noext")
	assert.Equal(t, "noext", c.JSON[0])

	if runtime.GOOS != "windows" {
		assert.Contains(t, c.TOML, filepath.Join("/etc", "padshape", "config.toml"))
	}
}

func TestDefaultNamedConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AppData", dir)

	p, err := configpaths.DefaultNamedConfigPath("replay", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "padshape", "replay.yaml"), p)

	nested := filepath.Join(dir, "a", "b", "c.json")
	require.NoError(t, configpaths.EnsureDir(nested))
	assert.DirExists(t, filepath.Dir(nested))
}
