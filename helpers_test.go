package i18ntree

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

// decodeTestJSON reads one JSON value into a Node, keeping object key order.
// Integral numbers become int.
func decodeTestJSON(dec *json.Decoder) (*Node, error) {
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		if v == '{' {
			obj := NewObject()
			for dec.More() {
				k, err := dec.Token()
				if err != nil {
					return nil, err
				}
				child, err := decodeTestJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(k.(string), child)
			}
			_, err := dec.Token()
			return obj, err
		}
		if v == '[' {
			arr := NewArray()
			for dec.More() {
				child, err := decodeTestJSON(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(child)
			}
			_, err := dec.Token()
			return arr, err
		}
		return nil, fmt.Errorf("unexpected %v", v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return NewLeaf(int(i)), nil
		}
		f, err := v.Float64()
		return NewLeaf(f), err
	default:
		return NewLeaf(v), nil
	}
}
