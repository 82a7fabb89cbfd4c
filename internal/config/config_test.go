package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clai-tools/clai/internal/errors"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.False(t, s.Debug)
	assert.False(t, s.NoColor)
	assert.Equal(t, DefaultSpinnerInterval, s.SpinnerInterval)
	assert.Equal(t, "Thinking...", s.WaitingMessage)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	// An isolated cwd and home so no real config is found
	tmp := t.TempDir()
	t.Chdir(tmp)
	t.Setenv("HOME", tmp)

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	content := "debug: true\nno_color: true\nspinner_interval: 120ms\nwaiting_message: Pondering...\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.Debug)
	assert.True(t, s.NoColor)
	assert.Equal(t, 120*time.Millisecond, s.SpinnerInterval)
	assert.Equal(t, "Pondering...", s.WaitingMessage)
}

func TestLoadClampsInterval(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spinner_interval: 5s\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MaxSpinnerInterval, s.SpinnerInterval)

	require.NoError(t, os.WriteFile(path, []byte("spinner_interval: 1ms\n"), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, MinSpinnerInterval, s.SpinnerInterval)
}

func TestLoadInvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindLocalConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)
	t.Setenv("HOME", tmp)

	assert.Equal(t, "", Find())

	local := filepath.Join(tmp, ConfigFileName)
	require.NoError(t, os.WriteFile(local, []byte("debug: false\n"), 0o644))
	assert.Equal(t, local, Find())
}

func TestFindGlobalConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)

	home := t.TempDir()
	t.Setenv("HOME", home)

	globalDir := filepath.Join(home, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	global := filepath.Join(globalDir, GlobalConfigFile)
	require.NoError(t, os.WriteFile(global, []byte("debug: false\n"), 0o644))

	assert.Equal(t, global, Find())
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ConfigFileName)

	require.NoError(t, WriteDefault(path, false))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestWriteDefaultRefusesOverwrite(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o644))

	err := WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	require.NoError(t, WriteDefault(path, true))
	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.Debug)
}
