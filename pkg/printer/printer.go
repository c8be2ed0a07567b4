// Package printer renders trees as box-drawing text, JSON or YAML.
//
// The printer only uses the read-only view and traversal API of package
// tree, so it never changes the tree it prints. It walks with explicit
// stacks and handles trees of any depth.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/slabtree/pkg/tree"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a box-drawing outline, one node per line.
	FormatText Format = "text"

	// FormatJSON outputs nested {"value", "children"} objects.
	FormatJSON Format = "json"

	// FormatYAML outputs the same shape as FormatJSON in YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format.
	// Default: FormatText
	Format Format

	// IndentSize is the width of one nesting level. In text format it is
	// the length of the horizontal branch.
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels are printed, counting the starting
	// node as the first (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ASCII draws text branches with |, ` and - instead of box-drawing
	// characters.
	// Default: false
	ASCII bool

	// Color highlights branches and inner nodes in text format.
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		ASCII:      false,
		Color:      false,
	}
}

// Printer handles formatted output of one tree.
type Printer[T any] struct {
	opts   Options
	writer io.Writer
	tree   *tree.Tree[T]
}

// New creates a new Printer.
//
// Example:
//
//	t := tree.NewWithRoot("root")
//	p := printer.New(t, os.Stdout, printer.DefaultOptions())
//	p.Print()
func New[T any](t *tree.Tree[T], w io.Writer, opts Options) *Printer[T] {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer[T]{
		opts:   opts,
		writer: w,
		tree:   t,
	}
}

// Print prints the whole tree starting at its root. An empty tree prints
// nothing.
func (p *Printer[T]) Print() error {
	root, ok := p.tree.Root()
	if !ok {
		return nil
	}
	return p.print(root)
}

// PrintNode prints the subtree rooted at id.
func (p *Printer[T]) PrintNode(id tree.NodeID) error {
	n, err := p.tree.Get(id)
	if err != nil {
		return fmt.Errorf("print node %s: %w", id, err)
	}
	return p.print(n)
}

func (p *Printer[T]) print(n tree.NodeRef[T]) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(n)
	case FormatYAML:
		return p.printYAML(n)
	case FormatText:
		return p.printText(n)
	default:
		return p.printText(n)
	}
}

// Fprint writes t to w as box-drawing text with default options.
func Fprint[T any](w io.Writer, t *tree.Tree[T]) error {
	return New(t, w, DefaultOptions()).Print()
}

// label renders a payload for text output.
func label[T any](data T) string {
	return fmt.Sprint(data)
}

// within reports whether a node at depth (root = 0) is printed.
func (p *Printer[T]) within(depth int) bool {
	return p.opts.MaxDepth <= 0 || depth < p.opts.MaxDepth
}
