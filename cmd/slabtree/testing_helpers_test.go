package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/slabtree/internal/outline"
	"github.com/joshuapare/slabtree/pkg/printer"
)

const scenarioOutline = `0
  1
    2
      3
      4
  5
    6
      7
    8
  9
`

const scenarioYAML = `value: "0"
children:
  - value: "1"
    children:
      - value: "2"
        children: ["3", "4"]
  - value: "5"
    children:
      - value: "6"
        children: ["7"]
      - "8"
  - "9"
`

// writeTestFile writes content to name inside a temporary directory and
// returns its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// resetFlags restores every flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	formatName = string(printer.FormatText)
	noColor = true
	logDir = ""
	encoding = string(outline.EncodingAuto)
	indentWidth = outline.DefaultIndentWidth

	renderDepth = 0
	renderASCII = false
	renderCompact = false

	traverseOrder = orderPre
	traverseFrom = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe
	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		defer close(done)
		buf.ReadFrom(r)
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
