package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	content := `always_prompt: true
preview: true
editor:
  command: code -r
  preview_args: ["--preview"]
watch:
  debounce: 2s
`
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.True(t, cfg.AlwaysPrompt)
	assert.True(t, cfg.Preview)
	assert.False(t, cfg.Accessible)
	assert.Equal(t, "code -r", cfg.Editor.Command)
	assert.Equal(t, []string{"--preview"}, cfg.Editor.PreviewArgs)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, Default().Exclude, cfg.Exclude)
}

func TestLoadInvalidYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("always_prompt: [oops"), 0o644))

	_, err := Load(root)
	assert.ErrorContains(t, err, "failed to parse yaml")
}

func TestWriteThenLoad(t *testing.T) {
	root := t.TempDir()
	cfg := Default()
	cfg.AlwaysPrompt = true
	cfg.Editor.Command = "vim"

	path, err := Write(root, cfg, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteRefusesToOverwrite(t *testing.T) {
	root := t.TempDir()
	_, err := Write(root, Default(), false)
	require.NoError(t, err)

	_, err = Write(root, Default(), false)
	assert.ErrorContains(t, err, "already exists")

	_, err = Write(root, Default(), true)
	assert.NoError(t, err)
}
