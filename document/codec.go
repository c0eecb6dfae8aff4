// Package document reads and writes locale documents.
package document

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lifei6671/i18ntree"
)

// EncodeOptions controls serialization.
type EncodeOptions struct {
	// Comment is written as a leading comment where the format has one.
	// Multi-line comments produce one comment line each.
	Comment string
	// Indent is the number of spaces per level, 2 when zero.
	Indent int
}

func (o EncodeOptions) indent() int {
	if o.Indent <= 0 {
		return 2
	}
	return o.Indent
}

// Codec converts between persisted bytes and document trees.
type Codec interface {
	Name() string
	Extensions() []string
	Decode(data []byte) (*i18ntree.Node, error)
	Encode(n *i18ntree.Node, opts EncodeOptions) ([]byte, error)
}

var (
	regMu    sync.RWMutex
	registry = map[string]Codec{}
)

// RegisterCodec makes a codec available by name and by its extensions.
func RegisterCodec(c Codec) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[c.Name()] = c
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	regMu.RLock()
	c, ok := registry[strings.ToLower(name)]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown document format: %s", name)
	}
	return c, nil
}

// ForPath returns the codec reading the extension of path.
func ForPath(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	regMu.RLock()
	defer regMu.RUnlock()
	for _, c := range registry {
		for _, e := range c.Extensions() {
			if e == ext {
				return c, nil
			}
		}
	}
	return nil, fmt.Errorf("no document format for %q", path)
}

// Formats returns the registered codec names, sorted.
func Formats() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterCodec(YAML{})
	RegisterCodec(JSON{})
}

func commentLines(comment, marker string) string {
	if strings.TrimSpace(comment) == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(comment, "\n"), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			b.WriteString(marker + "\n")
			continue
		}
		b.WriteString(marker + " " + line + "\n")
	}
	return b.String()
}
