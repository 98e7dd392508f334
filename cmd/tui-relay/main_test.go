package main

import (
	"errors"
	"testing"
)

func TestRunReturnsZeroOnSuccess(t *testing.T) {
	isolateConfig(t)

	code := run([]string{"version"}, func() error { return nil })
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunReturnsOneOnFailure(t *testing.T) {
	isolateConfig(t)

	code := run([]string{"demo"}, func() error { return errors.New("boom") })
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
