package colors

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// capture swaps *target (os.Stdout or os.Stderr) for a pipe while fn runs
// and returns everything written to it.
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	*target = w
	defer func() { *target = old }()

	fn()

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestError(t *testing.T) {
	output := capture(t, &os.Stderr, func() {
		Error("something went wrong")
	})
	if !strings.Contains(output, "Error:") {
		t.Errorf("Error output missing 'Error:' prefix: %q", output)
	}
	if !strings.Contains(output, "something went wrong") {
		t.Errorf("Error output missing message: %q", output)
	}
	if !strings.Contains(output, Red) {
		t.Errorf("Error output missing red color code: %q", output)
	}
}

func TestWarning(t *testing.T) {
	output := capture(t, &os.Stderr, func() {
		Warning("this is a warning")
	})
	if !strings.Contains(output, "Warning:") {
		t.Errorf("Warning output missing 'Warning:' prefix: %q", output)
	}
	if !strings.Contains(output, Yellow) {
		t.Errorf("Warning output missing yellow color code: %q", output)
	}
}

func TestSuccess(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		Success("operation completed")
	})
	if !strings.Contains(output, checkmark) {
		t.Errorf("Success output missing checkmark: %q", output)
	}
	if !strings.Contains(output, "operation completed") {
		t.Errorf("Success output missing message: %q", output)
	}
	if !strings.Contains(output, Green) {
		t.Errorf("Success output missing green color code: %q", output)
	}
}

func TestInfo(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		Info("informational message")
	})
	if !strings.Contains(output, "informational message") {
		t.Errorf("Info output missing message: %q", output)
	}
	if !strings.Contains(output, Blue) {
		t.Errorf("Info output missing blue color code: %q", output)
	}
}

func TestLogInfoWritesToStderr(t *testing.T) {
	stdout := capture(t, &os.Stdout, func() {
		stderr := capture(t, &os.Stderr, func() {
			LogInfo("notice for humans")
		})
		if !strings.Contains(stderr, "notice for humans") {
			t.Errorf("LogInfo output missing message: %q", stderr)
		}
	})
	if stdout != "" {
		t.Errorf("LogInfo should not write to stdout, got: %q", stdout)
	}
}

func TestDebugEnabled(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	output := capture(t, &os.Stderr, func() {
		Debug("debug message")
	})
	if !strings.Contains(output, "Debug:") {
		t.Errorf("Debug output missing 'Debug:' prefix: %q", output)
	}
	if !strings.Contains(output, Cyan) {
		t.Errorf("Debug output missing cyan color code: %q", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	SetDebug(false)

	output := capture(t, &os.Stderr, func() {
		Debug("debug message")
	})
	if output != "" {
		t.Errorf("Debug output should be empty when disabled, got: %q", output)
	}
}

func TestMultipleArguments(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		Info("multiple", "arguments", "joined")
	})
	if !strings.Contains(output, "multiple arguments joined") {
		t.Errorf("Info output missing joined arguments: %q", output)
	}
}

// recordingLogger captures mirrored messages for assertions.
type recordingLogger struct {
	level string
	msg   string
	args  []any
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.level, r.msg, r.args = "debug", msg, args }
func (r *recordingLogger) Info(msg string, args ...any)  { r.level, r.msg, r.args = "info", msg, args }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.level, r.msg, r.args = "warn", msg, args }
func (r *recordingLogger) Error(msg string, args ...any) { r.level, r.msg, r.args = "error", msg, args }

func TestLoggerMirror(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	capture(t, &os.Stderr, func() {
		Error("disk", "full")
	})
	if rec.level != "error" || rec.msg != "disk full" {
		t.Errorf("Error mirror = (%s, %q), want (error, %q)", rec.level, rec.msg, "disk full")
	}

	capture(t, &os.Stdout, func() {
		Success("saved")
	})
	if rec.level != "info" || rec.msg != "saved" {
		t.Errorf("Success mirror = (%s, %q), want (info, saved)", rec.level, rec.msg)
	}
	if len(rec.args) != 2 || rec.args[0] != "type" || rec.args[1] != "success" {
		t.Errorf("Success mirror args = %v, want [type success]", rec.args)
	}
}

func TestDebugMirrorsWhenConsoleDisabled(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)
	SetDebug(false)

	output := capture(t, &os.Stderr, func() {
		Debug("trace detail")
	})
	if output != "" {
		t.Errorf("console output should be empty when debug disabled, got: %q", output)
	}
	if rec.level != "debug" || rec.msg != "trace detail" {
		t.Errorf("mirror = (%s, %q), want (debug, trace detail)", rec.level, rec.msg)
	}
}

func TestColorConstants(t *testing.T) {
	if Red == "" || Green == "" || Yellow == "" || Blue == "" || Cyan == "" || Reset == "" {
		t.Error("Color constants should not be empty")
	}
}
