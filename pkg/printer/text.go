package printer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/joshuapare/slabtree/pkg/tree"
)

type glyphs struct {
	tee, corner, horizontal, vertical string
}

var (
	boxGlyphs   = glyphs{tee: "├", corner: "└", horizontal: "─", vertical: "│"}
	asciiGlyphs = glyphs{tee: "|", corner: "`", horizontal: "-", vertical: "|"}
)

// textStyle holds the branch strings and colorizers for one print call.
type textStyle struct {
	branch, lastBranch string
	indent, lastIndent string
	guide              func(a ...any) string
	inner              func(a ...any) string
}

func (p *Printer[T]) textStyle() textStyle {
	g := boxGlyphs
	if p.opts.ASCII {
		g = asciiGlyphs
	}
	run := strings.Repeat(g.horizontal, p.opts.IndentSize) + " "
	pad := strings.Repeat(" ", p.opts.IndentSize+1)

	s := textStyle{
		branch:     g.tee + run,
		lastBranch: g.corner + run,
		indent:     g.vertical + pad,
		lastIndent: " " + pad,
		guide:      fmt.Sprint,
		inner:      fmt.Sprint,
	}
	if p.opts.Color {
		guide := color.New(color.FgHiBlack)
		guide.EnableColor()
		inner := color.New(color.FgBlue, color.Bold)
		inner.EnableColor()
		s.guide = guide.SprintFunc()
		s.inner = inner.SprintFunc()
	}
	return s
}

// textFrame is one level of the walk: the children still to print, with
// one child of lookahead so the last one gets a corner.
type textFrame[T any] struct {
	children *tree.Children[T]
	next     tree.NodeRef[T]
	hasNext  bool
	prefix   string
	depth    int
}

// printText writes n and its descendants as a box-drawing outline:
//
//	0
//	├── 1
//	│   └── 2
//	└── 3
func (p *Printer[T]) printText(n tree.NodeRef[T]) error {
	style := p.textStyle()

	if err := p.textLine("", "", n, style); err != nil {
		return err
	}
	if !p.within(1) {
		return nil
	}

	var stack []textFrame[T]
	push := func(parent tree.NodeRef[T], prefix string, depth int) {
		it := parent.Children()
		next, ok := it.Next()
		if ok {
			stack = append(stack, textFrame[T]{children: it, next: next, hasNext: true, prefix: prefix, depth: depth})
		}
	}
	push(n, "", 1)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.hasNext {
			stack = stack[:len(stack)-1]
			continue
		}

		child := top.next
		top.next, top.hasNext = top.children.Next()
		last := !top.hasNext
		prefix, depth := top.prefix, top.depth

		branch, indent := style.branch, style.indent
		if last {
			branch, indent = style.lastBranch, style.lastIndent
		}
		if err := p.textLine(prefix, branch, child, style); err != nil {
			return err
		}
		if p.within(depth + 1) {
			push(child, prefix+indent, depth+1)
		}
	}
	return nil
}

func (p *Printer[T]) textLine(prefix, branch string, n tree.NodeRef[T], style textStyle) error {
	text := label(n.Data())
	if n.HasChildren() {
		text = style.inner(text)
	}
	var err error
	if prefix == "" && branch == "" {
		_, err = fmt.Fprintln(p.writer, text)
	} else {
		_, err = fmt.Fprintln(p.writer, style.guide(prefix+branch)+text)
	}
	return err
}
