package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("KEYBAR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("width", DefaultWidth, "")
	fs.String("separator", DefaultSeparator, "")
	fs.Bool("simplified-ui", false, "")
	fs.Bool("show-mode", false, "")
	fs.String("mode", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, Config{Width: DefaultWidth, Separator: DefaultSeparator}, c)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 80\nseparator = \">\"\nshow_mode = true\n"), 0o644))
	t.Setenv("KEYBAR_CONFIG", path)

	c, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 80, c.Width)
	assert.Equal(t, ">", c.Separator)
	assert.True(t, c.ShowMode)
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "keybar"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keybar", "config.toml"), []byte("log_level = \"debug\"\n"), 0o644))

	c, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	dir := isolate(t)
	t.Setenv("KEYBAR_CONFIG", filepath.Join(dir, "missing.toml"))

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("KEYBAR_WIDTH", "42")
	t.Setenv("KEYBAR_SIMPLIFIED_UI", "true")

	c, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 42, c.Width)
	assert.True(t, c.SimplifiedUI)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("KEYBAR_WIDTH", "42")
	t.Setenv("KEYBAR_SEPARATOR", "|")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--width", "60", "--simplified-ui", "--mode", "pane"}))

	c, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, 60, c.Width, "set flag wins over env")
	assert.Equal(t, "|", c.Separator, "unset flag does not mask env")
	assert.True(t, c.SimplifiedUI)
	assert.Equal(t, "pane", c.Mode)
}

func TestLoad_InvalidWidth(t *testing.T) {
	isolate(t)
	t.Setenv("KEYBAR_WIDTH", "-1")

	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
