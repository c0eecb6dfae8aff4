package i18ntree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Decoder turns a persisted document into a tree.
type Decoder interface {
	// Extensions lists the file extensions the decoder reads, with the dot.
	Extensions() []string
	Decode(data []byte) (*Node, error)
}

// LoadDir registers every document under dir that dec can read, e.g.
// ./locales/en.yaml, ./locales/zh-CN.yaml. The locale code is the file
// name without its extension.
func (b *Bundle) LoadDir(dir string, dec Decoder) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(dec.Extensions(), ext) {
			return nil
		}
		if err := b.loadFile(path, dec); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		return nil
	})
}

func (b *Bundle) loadFile(path string, dec Decoder) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tree, err := dec.Decode(data)
	if err != nil {
		return err
	}
	lang := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	b.Register(lang, tree)
	return nil
}

// MustLoadDir is LoadDir that panics, for initialization code.
func (b *Bundle) MustLoadDir(dir string, dec Decoder) {
	if err := b.LoadDir(dir, dec); err != nil {
		panic(err)
	}
}
