package main

import (
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabtree/pkg/printer"
	"github.com/joshuapare/slabtree/pkg/tree"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build and print a sample tree",
	Long: `The demo command builds a ten-node sample tree, prints it and lists
its pre-order, post-order and level-order sequences.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoTree builds
//
//	0
//	├── 1
//	│   └── 2
//	│       ├── 3
//	│       └── 4
//	├── 5
//	│   ├── 6
//	│   │   └── 7
//	│   └── 8
//	└── 9
func demoTree() *tree.Tree[int] {
	t := tree.NewBuilder[int]().WithRoot(0).WithCapacity(10).Build()
	root, _ := t.RootMut()

	one := root.Append(1)
	two := one.Append(2)
	two.Append(3)
	two.Append(4)

	five := root.Append(5)
	five.Append(6).Append(7)
	five.Append(8)

	root.Append(9)
	return t
}

func runDemo() error {
	t := demoTree()

	format, err := printer.ParseFormat(formatName)
	if err != nil {
		return err
	}
	opts := printer.DefaultOptions()
	opts.Format = format
	opts.Color = format == printer.FormatText && colorEnabled()
	if err := printer.New(t, os.Stdout, opts).Print(); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	if format != printer.FormatText {
		return nil
	}

	root, _ := t.Root()
	printInfo("\n")
	printInfo("pre-order:   %s\n", join(root.PreOrder().All()))
	printInfo("post-order:  %s\n", join(root.PostOrder().All()))
	printInfo("level-order: %s\n", join(root.LevelOrder().All()))

	s := t.Stats()
	printVerbose("nodes=%d height=%d capacity=%d\n", s.Nodes, s.Height, s.Capacity)
	return nil
}

func join[T any](nodes iter.Seq[tree.NodeRef[T]]) string {
	var parts []string
	for v := range tree.Values(nodes) {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}
