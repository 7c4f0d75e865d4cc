package main

import "testing"

func TestRun_Version(t *testing.T) {
	if code := run([]string{"version"}); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestRun_PassthroughCompileFails(t *testing.T) {
	// A raw argument vector routes to compile; without a real compiler (or
	// with nonsense inputs) the run must fail with a nonzero code.
	if code := run([]string{"no-such-input.swift", "--definitely-not-a-swiftc-flag"}); code == 0 {
		t.Error("expected a nonzero exit code")
	}
}

func TestRun_RewriteMissingFile(t *testing.T) {
	if code := run([]string{"rewrite", "/definitely/not/here.json"}); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}
