package main

import (
	"testing"
)

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		format      string
		depth       int
		ascii       bool
		compact     bool
		wantErr     bool
		wantOutput  string
		wantContain []string
		wantJSON    bool
	}{
		{
			name:    "outline as text",
			file:    "scenario.txt",
			content: scenarioOutline,
			wantOutput: `0
├── 1
│   └── 2
│       ├── 3
│       └── 4
├── 5
│   ├── 6
│   │   └── 7
│   └── 8
└── 9
`,
		},
		{
			name:       "yaml as text with depth",
			file:       "scenario.yaml",
			content:    scenarioYAML,
			depth:      2,
			wantOutput: "0\n├── 1\n├── 5\n└── 9\n",
		},
		{
			name:       "ascii compact",
			file:       "small.txt",
			content:    "a\n  b\n    c\n  d\n",
			ascii:      true,
			compact:    true,
			wantOutput: "a\n|- b\n|  `- c\n`- d\n",
		},
		{
			name:        "json",
			file:        "scenario.txt",
			content:     scenarioOutline,
			format:      "json",
			wantJSON:    true,
			wantContain: []string{`"value": "0"`, `"children"`, `"value": "7"`},
		},
		{
			name:        "yaml",
			file:        "scenario.txt",
			content:     scenarioOutline,
			format:      "yaml",
			wantContain: []string{`value: "0"`, "children:"},
		},
		{
			name:    "unknown format",
			file:    "scenario.txt",
			content: scenarioOutline,
			format:  "reg",
			wantErr: true,
		},
		{
			name:    "bad indentation",
			file:    "bad.txt",
			content: "a\n       b\n",
			wantErr: true,
		},
		{
			name:    "two roots",
			file:    "bad.txt",
			content: "a\nb\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			if tt.format != "" {
				formatName = tt.format
			}
			renderDepth = tt.depth
			renderASCII = tt.ascii
			renderCompact = tt.compact

			path := writeTestFile(t, tt.file, tt.content)
			output, err := captureOutput(t, func() error {
				return runRender([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runRender() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if tt.wantOutput != "" && output != tt.wantOutput {
				t.Errorf("output mismatch\nGot:\n%s\nWant:\n%s", output, tt.wantOutput)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestRenderCommand_MissingFile(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runRender([]string{"does-not-exist.txt"})
	})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRenderCommand_Encoding(t *testing.T) {
	resetFlags()
	encoding = "windows-1252"

	// "caf\xe9" is "café" in Windows-1252.
	path := writeTestFile(t, "latin.txt", "caf\xe9\n  ni\xf1o\n")
	output, err := captureOutput(t, func() error {
		return runRender([]string{path})
	})
	if err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	if want := "café\n└── niño\n"; output != want {
		t.Errorf("output = %q, want %q", output, want)
	}

	encoding = "ebcdic"
	_, err = captureOutput(t, func() error {
		return runRender([]string{path})
	})
	if err == nil {
		t.Fatal("expected an error for an unknown encoding")
	}
}
