package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lifei6671/i18ntree"
)

// JSON reads and writes JSON documents keeping object key order. JSON has no
// comments, so EncodeOptions.Comment is ignored.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Extensions() []string { return []string{".json"} }

// Decode parses a JSON object. Empty input yields an empty object.
func (JSON) Decode(data []byte) (*i18ntree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return i18ntree.NewObject(), nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("document: failed to parse JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("document: trailing data after JSON value")
	}
	if root.IsLeaf() && root.Value() == nil {
		return i18ntree.NewObject(), nil
	}
	if !root.IsObject() {
		return nil, fmt.Errorf("document: top-level JSON is not an object")
	}
	return root, nil
}

func decodeJSON(dec *json.Decoder) (*i18ntree.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := i18ntree.NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", kt)
				}
				child, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, child)
			}
			_, err := dec.Token()
			return obj, err
		case '[':
			arr := i18ntree.NewArray()
			for dec.More() {
				child, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(child)
			}
			_, err := dec.Token()
			return arr, err
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i18ntree.NewLeaf(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return i18ntree.NewLeaf(f), nil
	default:
		return i18ntree.NewLeaf(t), nil
	}
}

// Encode writes n as indented JSON with a trailing newline.
func (JSON) Encode(n *i18ntree.Node, opts EncodeOptions) ([]byte, error) {
	raw, err := n.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("document: failed to encode JSON: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", strings.Repeat(" ", opts.indent())); err != nil {
		return nil, fmt.Errorf("document: failed to encode JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
