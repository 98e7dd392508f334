package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points the XDG directories at a temp dir so Load never touches
// the real home directory, then loads from scratch.
func isolate(t *testing.T) (configHome, stateHome string) {
	t.Helper()
	tmp := t.TempDir()
	configHome = filepath.Join(tmp, "config")
	stateHome = filepath.Join(tmp, "state")
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	return configHome, stateHome
}

func TestDefaults(t *testing.T) {
	isolate(t)
	reset()
	Load()

	require.Equal(t, "true", Get("journal_enabled", ""))
	require.Equal(t, "30", Get("journal_keep_days", ""))
	require.Equal(t, "auto", Get("docs_style", ""))
	require.Equal(t, "true", Get("hooks_enabled", ""))
	require.Equal(t, "warn", Get("hooks_failure_mode", ""))
	require.Equal(t, "30s", Get("hooks_timeout", ""))
	require.Equal(t, "false", Get("logging_enabled", ""))
	require.Equal(t, "info", Get("logging_level", ""))
	require.Equal(t, "10", Get("logging_max_files", ""))
	require.Equal(t, "false", Get("debug", ""))
	require.Equal(t, "false", Get("quiet", ""))

	require.Equal(t, "default", Get("missing", "default"))
}

func TestDerivedPaths(t *testing.T) {
	configHome, stateHome := isolate(t)
	reset()
	Load()

	configDir := filepath.Join(configHome, "tui-relay")
	stateDir := filepath.Join(stateHome, "tui-relay")

	require.Equal(t, configDir, Get("config_dir", ""))
	require.Equal(t, stateDir, Get("state_dir", ""))
	require.Equal(t, filepath.Join(configDir, "hooks"), Get("hooks_dir", ""))
	require.Equal(t, filepath.Join(configDir, "bindings.toml"), Get("bindings_path", ""))
	require.Equal(t, filepath.Join(stateDir, "journal.db"), Get("journal_path", ""))
}

func TestDerivedPathsRespectOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TUI_RELAY_JOURNAL_PATH", "/var/lib/relay/journal.db")
	t.Setenv("TUI_RELAY_BINDINGS_PATH", "/etc/relay/bindings.toml")
	reset()
	Load()

	require.Equal(t, "/var/lib/relay/journal.db", Get("journal_path", ""))
	require.Equal(t, "/etc/relay/bindings.toml", Get("bindings_path", ""))
	// hooks_dir was not overridden and still derives from config_dir
	require.Equal(t, filepath.Join(Get("config_dir", ""), "hooks"), Get("hooks_dir", ""))
}

func TestXdgDefaultsFromHome(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	reset()
	Load()

	require.Equal(t, filepath.Join(tmpHome, ".config", "tui-relay"), Get("config_dir", ""))
	require.Equal(t, filepath.Join(tmpHome, ".local", "state", "tui-relay"), Get("state_dir", ""))
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()

	configFile := filepath.Join(tmp, "config.toml")
	content := `
journal_keep_days = 500
hooks_failure_mode = "abort"
logging_enabled = true
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	t.Setenv("TUI_RELAY_CONFIG_PATH", configFile)
	t.Setenv("TUI_RELAY_JOURNAL_KEEP_DAYS", "200")
	reset()
	Load()

	require.Equal(t, "200", Get("journal_keep_days", ""), "environment should override config file")
	require.Equal(t, "abort", Get("hooks_failure_mode", ""), "config file should be used when not overridden by env")
	require.Equal(t, "true", Get("logging_enabled", ""))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()

	configFile := filepath.Join(tmp, "config.toml")
	content := `
journal_keep_days = -5
docs_style = "sepia"
hooks_timeout = "fast"
journal_enabled = "maybe"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("TUI_RELAY_CONFIG_PATH", configFile)
	reset()

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	Load()

	require.NoError(t, w.Close())
	os.Stderr = oldStderr
	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	require.Equal(t, "30", Get("journal_keep_days", ""))
	require.Equal(t, "auto", Get("docs_style", ""))
	require.Equal(t, "30s", Get("hooks_timeout", ""))
	require.Equal(t, "true", Get("journal_enabled", ""))
	require.Contains(t, buf.String(), "Warning:")
}

func TestBooleanNormalization(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"1", "true"},
		{"true", "true"},
		{"yes", "true"},
		{"on", "true"},
		{"TRUE", "true"},
		{"0", "false"},
		{"no", "false"},
		{"off", "false"},
		{"FALSE", "false"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			isolate(t)
			t.Setenv("TUI_RELAY_HOOKS_ENABLED", tc.input)
			reset()
			Load()

			require.Equal(t, tc.expected, Get("hooks_enabled", ""))
		})
	}
}

func TestGetHelpers(t *testing.T) {
	isolate(t)
	t.Setenv("TUI_RELAY_JOURNAL_KEEP_DAYS", "45")
	t.Setenv("TUI_RELAY_HOOKS_TIMEOUT", "2m")
	reset()
	Load()

	require.Equal(t, 45, GetInt("journal_keep_days", 0))
	require.Equal(t, 999, GetInt("missing_key", 999))
	require.Equal(t, 0, GetInt("docs_style", 0), "non-numeric value should fall back to default")

	require.True(t, GetBool("journal_enabled", false))
	require.False(t, GetBool("logging_enabled", true))
	require.True(t, GetBool("missing_key", true))

	require.Equal(t, 2*time.Minute, GetDuration("hooks_timeout", 0))
	require.Equal(t, time.Second, GetDuration("missing_key", time.Second))
}

func TestSampleConfigCreated(t *testing.T) {
	configHome, _ := isolate(t)
	reset()
	Load()

	samplePath := filepath.Join(configHome, "tui-relay", "config.toml")
	require.FileExists(t, samplePath, "sample config should be created")

	content, err := os.ReadFile(samplePath)
	require.NoError(t, err)
	require.Contains(t, string(content), "journal_enabled")
	require.Contains(t, string(content), "bindings_path")
	require.Contains(t, string(content), "state_dir")
	require.Contains(t, string(content), "hooks_timeout")
}

func TestSampleConfigNotOverwritten(t *testing.T) {
	configHome, _ := isolate(t)
	configDir := filepath.Join(configHome, "tui-relay")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	existing := filepath.Join(configDir, "config.toml")
	require.NoError(t, os.WriteFile(existing, []byte("journal_keep_days = 7\n"), 0644))

	reset()
	Load()

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	require.Equal(t, "journal_keep_days = 7\n", string(content), "existing config must not be overwritten")
	require.Equal(t, "7", Get("journal_keep_days", ""))
}
