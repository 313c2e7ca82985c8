package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/driver"
	"monkey/internal/parser"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	flags := cmd.Flags()
	flags.String("config", "", "")
	flags.String("color", "auto", "")
	flags.Int("max-diagnostics", 0, "")
	flags.String("format", "pretty", "")
	flags.Bool("values", false, "")
	flags.Bool("crosscheck", false, "")
	flags.Int("jobs", 0, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monkey.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsFromConfig(t *testing.T) {
	path := writeConfig(t, "[parser]\nstatement_values = true\n[output]\nformat = \"json\"\ncolor = \"off\"\n[check]\njobs = 3\n")

	s, err := loadSettings(newTestCommand(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, path, s.configPath)
	assert.Equal(t, "json", s.cfg.Output.Format)
	assert.Equal(t, []parser.Mode{parser.StatementValues}, s.modes())
	assert.Equal(t, driver.Options{Modes: []parser.Mode{parser.StatementValues}, Jobs: 3}, s.driverOptions())
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "[parser]\nstatement_values = true\n[output]\nformat = \"json\"\n")

	s, err := loadSettings(newTestCommand(t,
		"--config", path, "--values=false", "--format", "yaml", "--max-diagnostics", "2", "--jobs", "1", "--crosscheck", "--color", "off"))
	require.NoError(t, err)
	assert.Nil(t, s.modes())
	assert.Equal(t, "yaml", s.cfg.Output.Format)
	assert.Equal(t, 2, s.cfg.Output.MaxDiagnostics)
	assert.Equal(t, driver.Options{Jobs: 1, CrossCheck: true}, s.driverOptions())
}

func TestLoadSettingsRejectsBadFlag(t *testing.T) {
	path := writeConfig(t, "")
	_, err := loadSettings(newTestCommand(t, "--config", path, "--format", "xml"))
	assert.ErrorContains(t, err, "[output].format")
}

func TestWriteTree(t *testing.T) {
	r := driver.ParseSource("main.mk", "-a * b", driver.Options{})

	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, "pretty", r, true))
	assert.Equal(t, "==> main.mk <==\n((-a) * b)\n", buf.String())

	buf.Reset()
	require.NoError(t, writeTree(&buf, "json", r, false))
	assert.Contains(t, buf.String(), `"file": "main.mk"`)

	assert.Error(t, writeTree(&buf, "xml", r, false))
}

func TestReportResult(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, reportResult(&buf, driver.ParseSource("a.mk", "1", driver.Options{}), 0))
	assert.Empty(t, buf.String())

	assert.True(t, reportResult(&buf, driver.ParseSource("a.mk", "@ @ @", driver.Options{}), 1))
	assert.Contains(t, buf.String(), "... and 2 more")

	buf.Reset()
	assert.True(t, reportResult(&buf, driver.ParseFile(filepath.Join(t.TempDir(), "missing.mk"), driver.Options{}), 0))
	assert.Contains(t, buf.String(), "failed to read file")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500*time.Nanosecond))
	assert.Equal(t, "1.5μs", formatDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.5ms", formatDuration(2500*time.Microsecond))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2.00min", formatDuration(2*time.Minute))
}
