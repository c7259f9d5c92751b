package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const swipeScript = `
steps:
  - {action: down, x: 0, y: 0, t: 0}
  - {action: move, x: 100, y: 0, t: 100}
  - {action: up, x: 100, y: 0, t: 100}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestRunPrintsEvents(t *testing.T) {
	script := writeFile(t, "swipe.yaml", swipeScript)
	out, err := run(t, "run", script, "--axis", "x")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected start, move, end, swipe lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "start") {
		t.Errorf("first line = %q, want start", lines[0])
	}
	if !strings.HasPrefix(lines[2], "end") {
		t.Errorf("third line = %q, want end", lines[2])
	}
	if !strings.HasPrefix(lines[3], "swipe right") {
		t.Errorf("fourth line = %q, want swipe right", lines[3])
	}
}

func TestRunThresholdOverride(t *testing.T) {
	script := writeFile(t, "swipe.yaml", swipeScript)
	out, err := run(t, "run", script, "--axis", "x", "--threshold", "5")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "swipe") {
		t.Errorf("threshold 5 should suppress the swipe:\n%s", out)
	}
}

func TestRunOptionsFile(t *testing.T) {
	script := writeFile(t, "swipe.yaml", swipeScript)
	opts := writeFile(t, "opts.yaml", "axis: y\n")
	out, err := run(t, "run", script, "--options", opts)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "swipe") {
		t.Errorf("horizontal movement on a y-axis pointer is not a swipe:\n%s", out)
	}
	if !strings.Contains(out, "axis=none") {
		t.Errorf("expected axis=none for y-axis pointer:\n%s", out)
	}
}

func TestRunCarousel(t *testing.T) {
	script := writeFile(t, "swipe.yaml", `
steps:
  - {action: down, x: 300, y: 0, t: 0}
  - {action: move, x: 200, y: 0, t: 100}
  - {action: up, x: 200, y: 0, t: 100}
`)
	out, err := run(t, "run", script, "--carousel", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "slide 0 -> 1") {
		t.Errorf("left swipe should advance the carousel:\n%s", out)
	}
}

func TestRunInvalidAxis(t *testing.T) {
	script := writeFile(t, "swipe.yaml", swipeScript)
	if _, err := run(t, "run", script, "--axis", "z"); err == nil {
		t.Fatal("expected error for unknown axis")
	}
}

func TestRunMissingScript(t *testing.T) {
	if _, err := run(t, "run", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing script")
	}
}
