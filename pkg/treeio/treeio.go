// Package treeio loads string trees from text documents.
//
// Two formats are understood:
//
//   - Outlines: one node per line, children indented below their parent
//     (see internal/outline).
//   - YAML: nested {value, children} mappings, the same shape the printer
//     package emits. A child may also be a bare scalar.
package treeio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/slabtree/internal/logger"
	"github.com/joshuapare/slabtree/internal/outline"
	"github.com/joshuapare/slabtree/pkg/tree"
)

var (
	// ErrEmpty is returned when a document holds no nodes.
	ErrEmpty = errors.New("treeio: document has no nodes")

	// ErrMultipleRoots is returned when an outline has more than one
	// top-level line.
	ErrMultipleRoots = errors.New("treeio: more than one root")

	// ErrInvalidDocument is returned when a YAML document does not have the
	// {value, children} shape.
	ErrInvalidDocument = errors.New("treeio: invalid document")
)

// ReadOutline builds a tree from an indented outline.
func ReadOutline(r io.Reader, opts outline.Options) (*tree.Tree[string], error) {
	s, err := outline.NewScanner(r, opts)
	if err != nil {
		return nil, err
	}

	var (
		t    *tree.Tree[string]
		path []tree.NodeMut[string] // path[d] is the latest node at depth d
	)
	for s.Scan() {
		l := s.Line()
		if l.Depth == 0 {
			if t != nil {
				return nil, fmt.Errorf("line %d: %w", l.Number, ErrMultipleRoots)
			}
			t = tree.NewWithRoot(l.Text)
			root, _ := t.RootMut()
			path = append(path[:0], root)
			continue
		}
		// The scanner guarantees 0 < Depth <= len(path).
		child := path[l.Depth-1].Append(l.Text)
		path = append(path[:l.Depth], child)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrEmpty
	}

	logger.L.Debug("outline loaded", "nodes", t.Len())
	return t, nil
}

// ReadFile loads path, choosing YAML for .yaml and .yml files and the
// outline format otherwise.
func ReadFile(path string, opts outline.Options) (*tree.Tree[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *tree.Tree[string]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		t, err = ReadYAML(f)
	default:
		t, err = ReadOutline(f, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}
