package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	gyaml "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"

	"github.com/lifei6671/i18ntree"
)

// YAML reads documents with yaml.v3, whose node tree keeps mapping order,
// and writes them through goccy/go-yaml ordered map slices.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Extensions() []string { return []string{".yaml", ".yml"} }

// Decode parses a YAML document. Empty or comment-only input yields an empty
// object; a top level other than a mapping is an error.
func (YAML) Decode(data []byte) (*i18ntree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return i18ntree.NewObject(), nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document: failed to parse YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return i18ntree.NewObject(), nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return i18ntree.NewObject(), nil
	}
	if resolveAlias(root).Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document: top-level YAML is not a mapping")
	}
	return fromYAML(root)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func fromYAML(n *yaml.Node) (*i18ntree.Node, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		obj := i18ntree.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Tag == "!!merge" {
				if err := mergeInto(obj, v); err != nil {
					return nil, err
				}
				continue
			}
			child, err := fromYAML(v)
			if err != nil {
				return nil, err
			}
			obj.Set(k.Value, child)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := i18ntree.NewArray()
		for _, item := range n.Content {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int", "!!float", "!!bool", "!!null":
		default:
			// Strings, timestamps and custom tags stay verbatim text.
			return i18ntree.NewLeaf(n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("document: line %d: %w", n.Line, err)
		}
		return i18ntree.NewLeaf(v), nil
	}
	return nil, fmt.Errorf("document: line %d: unsupported YAML node kind %d", n.Line, n.Kind)
}

// mergeInto applies a "<<" merge key: keys already present win.
func mergeInto(obj *i18ntree.Node, v *yaml.Node) error {
	v = resolveAlias(v)
	sources := []*yaml.Node{v}
	if v.Kind == yaml.SequenceNode {
		sources = v.Content
	}
	for _, src := range sources {
		merged, err := fromYAML(src)
		if err != nil {
			return err
		}
		if !merged.IsObject() {
			return fmt.Errorf("document: line %d: merge value is not a mapping", src.Line)
		}
		for _, k := range merged.Keys() {
			if obj.Has(k) {
				continue
			}
			child, _ := merged.Get(k)
			obj.Set(k, child)
		}
	}
	return nil
}

// Encode writes n as block YAML with indented sequences, preceded by the
// comment annotation.
func (YAML) Encode(n *i18ntree.Node, opts EncodeOptions) ([]byte, error) {
	out, err := gyaml.MarshalWithOptions(
		toYAML(n), gyaml.Indent(opts.indent()), gyaml.IndentSequence(true),
	)
	if err != nil {
		return nil, fmt.Errorf("document: failed to encode YAML: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(commentLines(opts.Comment, "#"))
	buf.Write(out)
	return buf.Bytes(), nil
}

func toYAML(n *i18ntree.Node) any {
	switch {
	case n == nil:
		return nil
	case n.IsObject():
		ms := make(gyaml.MapSlice, 0, n.Len())
		for _, k := range n.Keys() {
			child, _ := n.Get(k)
			ms = append(ms, gyaml.MapItem{Key: k, Value: toYAML(child)})
		}
		return ms
	case n.IsArray():
		items := make([]any, n.Len())
		for i := range items {
			items[i] = toYAML(n.Index(i))
		}
		return items
	default:
		if s, ok := n.Value().(string); ok && !strings.Contains(s, "\n") && !plainSafe(s) {
			return quotedString(s)
		}
		return n.Value()
	}
}

// quotedString is always written double quoted.
type quotedString string

func (s quotedString) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}

// plainSafe reports whether s, written as a plain scalar, reads back as the
// same string. goccy leaves some numeric forms such as 1e3 unquoted.
func plainSafe(s string) bool {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil || len(doc.Content) != 1 {
		return false
	}
	n := doc.Content[0]
	return n.Kind == yaml.ScalarNode && n.Style == 0 && n.Tag == "!!str" && n.Value == s
}
