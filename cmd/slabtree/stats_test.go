package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatsCommand_Text(t *testing.T) {
	resetFlags()
	path := writeTestFile(t, "scenario.txt", scenarioOutline)

	output, err := captureOutput(t, func() error {
		return runStats([]string{path})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"Nodes:      10\n",
		"Height:     4\n",
		"Structure:  ok\n",
	})
}

func TestStatsCommand_JSON(t *testing.T) {
	resetFlags()
	formatName = "json"
	path := writeTestFile(t, "scenario.yaml", scenarioYAML)

	output, err := captureOutput(t, func() error {
		return runStats([]string{path})
	})
	require.NoError(t, err)

	var report statsReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	require.Equal(t, 10, report.Nodes)
	require.Equal(t, 10, report.Reachable)
	require.Equal(t, 0, report.Detached)
	require.Equal(t, 4, report.Height)
	require.True(t, report.Valid)
	require.Empty(t, report.Problem)
}

func TestStatsCommand_YAML(t *testing.T) {
	resetFlags()
	formatName = "yaml"
	path := writeTestFile(t, "scenario.txt", scenarioOutline)

	output, err := captureOutput(t, func() error {
		return runStats([]string{path})
	})
	require.NoError(t, err)

	var report statsReport
	require.NoError(t, yaml.Unmarshal([]byte(output), &report))
	require.Equal(t, 10, report.Nodes)
	require.Equal(t, path, report.File)
}

func TestRootCommand_Version(t *testing.T) {
	resetFlags()
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	output, err := captureOutput(t, rootCmd.Execute)
	require.NoError(t, err)
	require.Contains(t, output, "slabtree dev")
}

func TestRootCommand_RenderViaArgs(t *testing.T) {
	resetFlags()
	path := writeTestFile(t, "small.txt", "a\n  b\n")
	rootCmd.SetArgs([]string{"render", path, "--no-color", "--ascii"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	output, err := captureOutput(t, rootCmd.Execute)
	require.NoError(t, err)
	require.Equal(t, "a\n`-- b\n", output)
}
