// Package build contains the shared recursive-construction logic behind the
// pipeline, template, and environment generators: identifier derivation,
// yaml.Node assembly with strict optional-field omission, failure-strategy
// recursion, and type-tagged template spec dispatch.
//
// Builders append keys in a fixed order and never emit null or empty
// placeholders, so generating the same configuration twice produces
// byte-identical output.
package build

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Mapping returns an empty mapping node.
func Mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// Sequence returns a sequence node over the given items.
func Sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

// Document wraps a single root key around a body node, forming the
// top-level object of a generated artifact.
func Document(rootKey string, body *yaml.Node) *yaml.Node {
	root := Mapping()
	Put(root, rootKey, body)
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
}

// Put appends a key/value pair to a mapping node. Nil values are dropped,
// never emitted as null.
func Put(m *yaml.Node, key string, value *yaml.Node) {
	if value == nil {
		return
	}
	m.Content = append(m.Content, strScalar(key), value)
}

// PutString appends a string entry, omitting the key when the value is empty.
func PutString(m *yaml.Node, key, value string) {
	if value == "" {
		return
	}
	Put(m, key, strScalar(value))
}

// PutBool appends a bool entry.
func PutBool(m *yaml.Node, key string, value bool) {
	Put(m, key, boolScalar(value))
}

// PutStringMap appends a string-to-string mapping in sorted key order,
// omitting the key when the map is empty.
func PutStringMap(m *yaml.Node, key string, values map[string]string) {
	if len(values) == 0 {
		return
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entry := Mapping()
	for _, k := range keys {
		Put(entry, k, strScalar(values[k]))
	}
	Put(m, key, entry)
}

// PutAny appends an arbitrary value (opaque spec payloads pass through
// here), omitting the key when the value is nil or an empty map.
func PutAny(m *yaml.Node, key string, value any) {
	if value == nil {
		return
	}
	if mv, ok := value.(map[string]any); ok && len(mv) == 0 {
		return
	}
	Put(m, key, ValueNode(value))
}

// ValueNode converts a plain Go value into a yaml.Node. Map keys are
// sorted so opaque payloads serialize deterministically.
func ValueNode(v any) *yaml.Node {
	switch val := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case string:
		return strScalar(val)
	case bool:
		return boolScalar(val)
	case int:
		return intScalar(int64(val))
	case int64:
		return intScalar(val)
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(val, 'g', -1, 64)}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		node := Mapping()
		for _, k := range keys {
			Put(node, k, ValueNode(val[k]))
		}
		return node
	case map[string]string:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		node := Mapping()
		for _, k := range keys {
			Put(node, k, strScalar(val[k]))
		}
		return node
	case []any:
		items := make([]*yaml.Node, 0, len(val))
		for _, item := range val {
			items = append(items, ValueNode(item))
		}
		return Sequence(items...)
	case []string:
		items := make([]*yaml.Node, 0, len(val))
		for _, item := range val {
			items = append(items, strScalar(item))
		}
		return Sequence(items...)
	default:
		return strScalar(fmt.Sprintf("%v", val))
	}
}

// StringSequence builds a sequence of string scalars, or nil when empty.
func StringSequence(values []string) *yaml.Node {
	if len(values) == 0 {
		return nil
	}
	items := make([]*yaml.Node, 0, len(values))
	for _, v := range values {
		items = append(items, strScalar(v))
	}
	return Sequence(items...)
}

func strScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func boolScalar(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func intScalar(i int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}
}
