package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtesession/internal/config"
)

// run executes rootCmd with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfgFile = ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "rtesession", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.True(t, rootCmd.SilenceUsage)
	for _, name := range []string{"file", "presentation", "debug-label", "no-color"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3-test")
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "rtesession version 1.2.3-test\n", out)
}

func TestSourceCommand(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(p, []byte("# Title\nbody\n"), 0o644))

	out, err := run(t, "source", "--stats", p)
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "heading"`)
	assert.Contains(t, out, "blocks=2 words=2")
}

func TestSourceCommandMissingFile(t *testing.T) {
	_, err := run(t, "source", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg", "config.yaml")

	out, err := run(t, "config", "init", p)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+p)

	_, err = run(t, "config", "init", p)
	assert.Error(t, err, "refuses to overwrite without --force")

	out, err = run(t, "config", "show", "--config", p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "presentation=tabs"), out)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfgFile = ""
	t.Cleanup(func() {
		presentation, debugLabel = "", ""
		rootCmd.Flags().Lookup("presentation").Changed = false
		rootCmd.Flags().Lookup("debug-label").Changed = false
	})

	require.NoError(t, rootCmd.Flags().Set("presentation", "panel"))
	require.NoError(t, rootCmd.Flags().Set("debug-label", "Debug"))
	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, config.Panel, cfg.Presentation)
	assert.Equal(t, "Debug", cfg.DebugLabel)

	require.NoError(t, rootCmd.Flags().Set("presentation", "drawer"))
	_, err = loadConfig(rootCmd)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSetupLogging(t *testing.T) {
	p := filepath.Join(t.TempDir(), "session.log")
	closeLog, err := setupLogging("debug", p)
	require.NoError(t, err)
	closeLog()
	_, err = os.Stat(p)
	assert.NoError(t, err)

	_, err = setupLogging("loud", "")
	assert.Error(t, err)
}
