package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lifei6671/i18ntree"
)

// ReadFile decodes the document at path with the codec of its extension. An
// absent file reads as an empty object.
func ReadFile(path string) (*i18ntree.Node, error) {
	c, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return i18ntree.NewObject(), nil
	}
	if err != nil {
		return nil, err
	}
	n, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// ReadReference decodes a reference document. Unlike ReadFile, a path that
// cannot be read fails with i18ntree.ErrMissingReferenceSource.
func ReadReference(path string) (*i18ntree.Node, error) {
	c, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", i18ntree.ErrMissingReferenceSource, err)
	}
	n, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("reference %s: %w", path, err)
	}
	return n, nil
}

// WriteFile encodes n with the codec of path's extension and writes it,
// creating parent directories. It returns the number of bytes written.
func WriteFile(path string, n *i18ntree.Node, opts EncodeOptions) (int, error) {
	c, err := ForPath(path)
	if err != nil {
		return 0, err
	}
	data, err := c.Encode(n, opts)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}
