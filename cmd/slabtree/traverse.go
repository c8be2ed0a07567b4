package main

import (
	"fmt"
	"iter"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabtree/pkg/tree"
)

// Traversal orders accepted by --order.
const (
	orderPre       = "pre"
	orderPost      = "post"
	orderLevel     = "level"
	orderAncestors = "ancestors"
)

var (
	traverseOrder string
	traverseFrom  string
)

func init() {
	cmd := newTraverseCmd()
	cmd.Flags().StringVar(&traverseOrder, "order", orderPre, "Traversal order: pre, post, level or ancestors")
	cmd.Flags().StringVar(&traverseFrom, "from", "", "Start at the first node (pre-order) with this payload")
	rootCmd.AddCommand(cmd)
}

func newTraverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traverse <file>",
		Short: "Print node payloads in traversal order",
		Long: `The traverse command loads a tree and prints one payload per line in the
chosen order.

Example:
  slabtree traverse menu.txt --order level
  slabtree traverse menu.txt --order post --from edit
  slabtree traverse menu.txt --order ancestors --from paste`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraverse(args)
		},
	}
	return cmd
}

func runTraverse(args []string) error {
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}

	start, err := startNode(t, traverseFrom)
	if err != nil {
		return err
	}

	nodes, err := walk(start, traverseOrder)
	if err != nil {
		return err
	}
	for v := range tree.Values(nodes) {
		fmt.Fprintln(os.Stdout, v)
	}
	return nil
}

// startNode returns the root, or the first node in pre-order whose payload
// equals from.
func startNode(t *tree.Tree[string], from string) (tree.NodeRef[string], error) {
	root, ok := t.Root()
	if !ok {
		return tree.NodeRef[string]{}, fmt.Errorf("tree is empty")
	}
	if from == "" {
		return root, nil
	}
	for n := range root.PreOrder().All() {
		if n.Data() == from {
			return n, nil
		}
	}
	return tree.NodeRef[string]{}, fmt.Errorf("no node %q", from)
}

func walk(n tree.NodeRef[string], order string) (iter.Seq[tree.NodeRef[string]], error) {
	switch order {
	case orderPre:
		return n.PreOrder().All(), nil
	case orderPost:
		return n.PostOrder().All(), nil
	case orderLevel:
		return n.LevelOrder().All(), nil
	case orderAncestors:
		return n.Ancestors().All(), nil
	default:
		return nil, fmt.Errorf("unknown order %q (want pre, post, level or ancestors)", order)
	}
}
