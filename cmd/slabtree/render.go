package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabtree/internal/logger"
	"github.com/joshuapare/slabtree/pkg/printer"
	"github.com/joshuapare/slabtree/pkg/tree"
	"github.com/joshuapare/slabtree/pkg/treeio"
)

var (
	renderDepth   int
	renderASCII   bool
	renderCompact bool
)

func init() {
	cmd := newRenderCmd()
	cmd.Flags().IntVar(&renderDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&renderASCII, "ascii", false, "ASCII-only characters")
	cmd.Flags().BoolVar(&renderCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Display tree structure",
		Long: `The render command loads a tree and prints it.

Example:
  slabtree render menu.txt
  slabtree render menu.yaml --depth 2 --ascii
  slabtree render menu.txt --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args)
		},
	}
	return cmd
}

func runRender(args []string) error {
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}

	format, err := printer.ParseFormat(formatName)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Format = format
	opts.MaxDepth = renderDepth
	opts.ASCII = renderASCII
	opts.Color = format == printer.FormatText && colorEnabled()
	if renderCompact {
		opts.IndentSize = 1
	}

	logger.Debug("rendering", "file", args[0], "format", format, "depth", renderDepth)
	if err := printer.New(t, os.Stdout, opts).Print(); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	return nil
}

// loadTree reads path as YAML or outline according to its extension.
func loadTree(path string) (*tree.Tree[string], error) {
	printVerbose("Loading tree: %s\n", path)

	opts, err := outlineOptions()
	if err != nil {
		return nil, err
	}
	t, err := treeio.ReadFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree: %w", err)
	}

	printVerbose("Loaded %d nodes\n", t.Len())
	return t, nil
}
