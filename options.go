package i18ntree

import "fmt"

const (
	DefaultKeyColumn    = "key"
	DefaultLocalePrefix = "loc:"
)

// Options configures a conversion run. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// KeyColumn is the header of the column holding key paths.
	KeyColumn string
	// LocalePrefix selects locale columns by a case-insensitive header prefix.
	LocalePrefix string
	// Delimiters is the set of runes separating several keys in one key cell.
	Delimiters string
	// Missing decides what fills paths present only in the reference.
	Missing MissingPolicy
	// Strict turns silent container replacement into a row warning.
	Strict bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		KeyColumn:    DefaultKeyColumn,
		LocalePrefix: DefaultLocalePrefix,
		Delimiters:   DefaultDelimiters,
		Missing:      MissingBlank,
	}
}

// Validate reports unusable option values.
func (o Options) Validate() error {
	if o.KeyColumn == "" {
		return fmt.Errorf("key column must not be empty")
	}
	if o.LocalePrefix == "" {
		return fmt.Errorf("locale prefix must not be empty")
	}
	if o.Missing > MissingRef {
		return fmt.Errorf("invalid missing policy %d", o.Missing)
	}
	return nil
}

func (o Options) buildOptions() []BuildOption {
	if o.Strict {
		return []BuildOption{WithStrict()}
	}
	return nil
}
