package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/joshuapare/slabtree/internal/explorer"
	"github.com/joshuapare/slabtree/internal/logger"
)

// exploreInput and exploreOutput are swapped out by tests.
var (
	exploreInput  io.Reader = os.Stdin
	exploreOutput io.Writer = os.Stdout
	exploreAlt              = true
)

func init() {
	rootCmd.AddCommand(newExploreCmd())
}

func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <file>",
		Short: "Browse a tree interactively",
		Long: `The explore command opens a tree in an interactive terminal browser.
Branches expand and collapse in place; press ? for the key reference.

Example:
  slabtree explore menu.txt
  slabtree explore menu.yaml --encoding utf16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(args)
		},
	}
}

func runExplore(args []string) error {
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}

	model := explorer.New(t, explorer.Options{Title: filepath.Base(args[0])})
	opts := []tea.ProgramOption{
		tea.WithInput(exploreInput),
		tea.WithOutput(exploreOutput),
	}
	if exploreAlt {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Debug("starting explorer", "file", args[0], "nodes", t.Len())
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("explorer failed: %w", err)
	}
	return nil
}
