// Package render turns built node trees into the final text artifact.
//
// The encoder is pinned to two-space indentation and builders never share
// nodes between trees, so no aliases appear in the output and repeated
// generation of an unchanged configuration is byte-identical.
package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal renders a document node to text.
func Marshal(doc *yaml.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode artifact: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("close encoder: %w", err)
	}
	return buf.String(), nil
}

// MustMarshal renders a document node to text. Builder-produced trees
// always encode; a failure here is a programming error, so it panics.
func MustMarshal(doc *yaml.Node) string {
	out, err := Marshal(doc)
	if err != nil {
		panic(err)
	}
	return out
}
