package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, runDemo)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(output, "0\n├── 1\n│   └── 2\n"), output)
	assertContains(t, output, []string{
		"└── 9\n",
		"pre-order:   0 1 2 3 4 5 6 7 8 9\n",
		"post-order:  3 4 2 1 7 6 8 5 9 0\n",
		"level-order: 0 1 5 9 2 6 8 3 4 7\n",
	})
	require.NotContains(t, output, "nodes=")
}

func TestDemoCommand_Verbose(t *testing.T) {
	resetFlags()
	verbose = true

	output, err := captureOutput(t, runDemo)
	require.NoError(t, err)
	require.Contains(t, output, "nodes=10 height=4 capacity=10")
}

func TestDemoCommand_Quiet(t *testing.T) {
	resetFlags()
	quiet = true

	output, err := captureOutput(t, runDemo)
	require.NoError(t, err)
	require.NotContains(t, output, "pre-order")
	require.Contains(t, output, "└── 9")
}

func TestDemoCommand_JSON(t *testing.T) {
	resetFlags()
	formatName = "json"

	output, err := captureOutput(t, runDemo)
	require.NoError(t, err)
	assertJSON(t, output)
	require.NotContains(t, output, "pre-order")
}

func TestDemoTree(t *testing.T) {
	tr := demoTree()
	require.NoError(t, tr.Validate())
	require.Equal(t, 10, tr.Len())
}
