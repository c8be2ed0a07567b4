// Package outline reads indented outline text, one node per line:
//
//	# comment
//	root
//	  child
//	    grandchild
//	  sibling
//
// Each level is indented by IndentWidth spaces or by one tab. Blank lines and
// lines starting with CommentPrefix are skipped. The scanner reports every
// node line with its depth and rejects indentation that skips a level.
package outline

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options controls scanning.
type Options struct {
	// IndentWidth is the number of spaces per level.
	// Default: 2
	IndentWidth int

	// Encoding selects how input bytes are decoded.
	// Default: EncodingAuto
	Encoding Encoding
}

// DefaultOptions returns sensible defaults for scanning.
func DefaultOptions() Options {
	return Options{
		IndentWidth: DefaultIndentWidth,
		Encoding:    EncodingAuto,
	}
}

// SyntaxError reports malformed indentation.
type SyntaxError struct {
	Line int // 1-based physical line number
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("outline: line %d: %s", e.Line, e.Msg)
}

// Line is one node line of an outline.
type Line struct {
	Number int    // 1-based physical line number
	Depth  int    // 0 for top-level lines
	Text   string // the line without indentation or trailing whitespace
}

// Scanner yields the node lines of an outline.
//
// Example:
//
//	s, err := outline.NewScanner(r, outline.DefaultOptions())
//	if err != nil { ... }
//	for s.Scan() {
//	    l := s.Line()
//	    fmt.Println(l.Depth, l.Text)
//	}
//	if err := s.Err(); err != nil { ... }
type Scanner struct {
	opts    Options
	scanner *bufio.Scanner
	number  int
	depth   int // depth of the previous node line, -1 before the first
	line    Line
	err     error
}

// NewScanner creates a Scanner reading r.
func NewScanner(r io.Reader, opts Options) (*Scanner, error) {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = DefaultIndentWidth
	}
	dr, err := decoder(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(dr)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	sc.Buffer(buf, ScannerMaxLineSize)

	return &Scanner{opts: opts, scanner: sc, depth: -1}, nil
}

// Scan advances to the next node line. It returns false at the end of input
// or on the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.scanner.Scan() {
		s.number++
		raw := strings.TrimRight(s.scanner.Text(), " \t\r")

		body := strings.TrimLeft(raw, " \t")
		if body == "" || strings.HasPrefix(body, CommentPrefix) {
			continue
		}

		depth, err := s.indentDepth(raw[:len(raw)-len(body)])
		if err != nil {
			s.err = err
			return false
		}
		if depth > s.depth+1 {
			s.err = &SyntaxError{
				Line: s.number,
				Msg:  fmt.Sprintf("indented %d levels below a line at depth %d", depth, s.depth),
			}
			return false
		}

		s.depth = depth
		s.line = Line{Number: s.number, Depth: depth, Text: body}
		return true
	}
	if err := s.scanner.Err(); err != nil {
		s.err = fmt.Errorf("outline: scanning: %w", err)
	}
	return false
}

// indentDepth converts leading whitespace to a level count. Tabs count one
// level each; spaces must come in whole multiples of IndentWidth.
func (s *Scanner) indentDepth(indent string) (int, error) {
	depth, spaces := 0, 0
	for _, r := range indent {
		switch r {
		case Tab:
			if spaces%s.opts.IndentWidth != 0 {
				return 0, &SyntaxError{Line: s.number, Msg: "tab after a partial space indent"}
			}
			depth++
		case Space:
			spaces++
		}
	}
	if spaces%s.opts.IndentWidth != 0 {
		return 0, &SyntaxError{
			Line: s.number,
			Msg:  fmt.Sprintf("indent of %d spaces is not a multiple of %d", spaces, s.opts.IndentWidth),
		}
	}
	return depth + spaces/s.opts.IndentWidth, nil
}

// Line returns the most recent node line.
func (s *Scanner) Line() Line { return s.line }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }
