package printer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/slabtree/pkg/tree"
)

// printYAML writes the subtree rooted at n as a YAML document with the same
// shape as the JSON format.
func (p *Printer[T]) printYAML(n tree.NodeRef[T]) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.IndentSize)
	if err := enc.Encode(p.document(n)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
