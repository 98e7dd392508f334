// Package hooks runs user-provided scripts at fixed points in the program
// lifecycle. Scripts live in per-point directories under the hooks dir and
// run in lexical order with invocation details passed through the
// environment.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/cristianoliveira/tui-relay/internal/colors"
	"github.com/cristianoliveira/tui-relay/internal/config"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

// Hook points.
const (
	// PointPostInvoke fires after every trigger invocation.
	PointPostInvoke = "post-invoke"
	// PointJournalPurge fires after journal entries are purged.
	PointJournalPurge = "journal-purge"
)

const defaultTimeout = 30 * time.Second

// Init ensures the hooks directory exists.
func Init() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("hooks: create directory %s: %w", dir, err)
	}
	return nil
}

// Dir returns the hooks directory path.
func Dir() string {
	if dir := config.Get("hooks_dir", ""); dir != "" {
		return dir
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tui-relay", "hooks")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tui-relay", "hooks")
}

// Enabled reports whether hooks run at all.
func Enabled() bool {
	return config.GetBool("hooks_enabled", true)
}

func failureMode() string {
	return config.Get("hooks_failure_mode", "warn")
}

func timeout() time.Duration {
	return config.GetDuration("hooks_timeout", defaultTimeout)
}

// InvocationEnv builds the environment passed to post-invoke hooks.
func InvocationEnv(firing triggers.Firing) map[string]string {
	env := map[string]string{
		"INVOCATION_TRIGGER":     firing.Trigger,
		"INVOCATION_COMMAND":     firing.Command,
		"INVOCATION_OUTCOME":     firing.Outcome.String(),
		"INVOCATION_FIRED_AT":    firing.At.UTC().Format(time.RFC3339),
		"INVOCATION_DURATION_US": strconv.FormatInt(firing.Duration.Microseconds(), 10),
	}
	if data, err := firing.Parameter.ToJSON(); err == nil {
		env["INVOCATION_PARAMETER"] = string(data)
	}
	if data, err := firing.Payload.ToJSON(); err == nil {
		env["INVOCATION_PAYLOAD"] = string(data)
	}
	if firing.Err != nil {
		env["INVOCATION_ERROR"] = firing.Err.Error()
	}
	return env
}

// RunInvocation runs the post-invoke hook point for one firing.
func RunInvocation(firing triggers.Firing) error {
	return Run(PointPostInvoke, InvocationEnv(firing))
}

// Run executes all hook scripts for a hook point. Scripts run synchronously
// in lexical order, each bounded by the configured timeout. The failure mode
// decides what a non-zero exit does: abort returns an error, warn prints a
// warning and continues, ignore continues silently.
func Run(point string, extra map[string]string) error {
	if !Enabled() {
		return nil
	}

	hookDir := filepath.Join(Dir(), point)
	files, err := os.ReadDir(hookDir)
	if err != nil {
		// Directory doesn't exist -> no hooks
		return nil
	}

	scripts := collectScripts(hookDir, files)
	if len(scripts) == 0 {
		return nil
	}

	env := os.Environ()
	env = append(env, "HOOK_POINT="+point)
	env = append(env, "HOOK_TIMESTAMP="+time.Now().UTC().Format(time.RFC3339))
	if exe, err := os.Executable(); err == nil {
		env = append(env, "RELAY_BINARY="+exe)
	}
	for k, v := range extra {
		env = append(env, k+"="+v)
	}

	mode := failureMode()
	colors.Debug(fmt.Sprintf("running %s hooks (%d script(s))", point, len(scripts)))

	for _, script := range scripts {
		if err := runScript(script, env); err != nil {
			switch mode {
			case "abort":
				return fmt.Errorf("hooks: %s: %w", filepath.Base(script), err)
			case "warn":
				colors.Warning(fmt.Sprintf("hook %s failed: %v", filepath.Base(script), err))
			}
			// ignore: continue
		}
	}
	return nil
}

// collectScripts returns the executable files in hookDir, sorted by name.
func collectScripts(hookDir string, files []os.DirEntry) []string {
	var scripts []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		path := filepath.Join(hookDir, f.Name())
		info, err := os.Stat(path)
		if err != nil || info.Mode()&0111 == 0 {
			continue
		}
		scripts = append(scripts, path)
	}
	sort.Strings(scripts)
	return scripts
}

// runScript executes one hook script with a timeout. Output goes to stderr
// so it never mixes with command results on stdout.
func runScript(path string, env []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout())
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, path)
	cmd.Env = env
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	elapsed := time.Since(start)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("timed out after %s", elapsed.Round(time.Millisecond))
	}
	if err != nil {
		return err
	}
	colors.Debug(fmt.Sprintf("hook %s completed in %s", filepath.Base(path), elapsed.Round(time.Millisecond)))
	return nil
}
