package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExploreCommand_QuitsOnKey(t *testing.T) {
	resetFlags()
	path := writeTestFile(t, "scenario.txt", scenarioOutline)

	var out bytes.Buffer
	t.Cleanup(func() {
		exploreInput, exploreOutput, exploreAlt = os.Stdin, os.Stdout, true
	})
	exploreInput = strings.NewReader("q")
	exploreOutput = &out
	exploreAlt = false

	require.NoError(t, runExplore([]string{path}))
	require.Contains(t, out.String(), "scenario.txt")
}

func TestExploreCommand_MissingFile(t *testing.T) {
	resetFlags()
	require.Error(t, runExplore([]string{"does-not-exist.txt"}))
}
