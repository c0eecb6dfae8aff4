// Package config loads run settings from the environment.
//
// An optional .env file in the working directory is loaded first; variables
// already set in the process environment take precedence over it.
//
//	I18NTREE_KEY_COLUMN=key
//	I18NTREE_LOCALE_PREFIX=loc:
//	I18NTREE_MISSING=ref
//	I18NTREE_REFERENCE=locales/en.yaml
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lifei6671/i18ntree"
)

// Config holds every run setting. Command line flags override it.
type Config struct {
	KeyColumn    string `env:"I18NTREE_KEY_COLUMN" envDefault:"key"`
	LocalePrefix string `env:"I18NTREE_LOCALE_PREFIX" envDefault:"loc:"`
	// Delimiters is the multi-key separator set; empty means newline, pipe
	// and comma. The escapes \n and \t are understood.
	Delimiters string                 `env:"I18NTREE_DELIMITERS"`
	Missing    i18ntree.MissingPolicy `env:"I18NTREE_MISSING" envDefault:"blank"`
	Strict     bool                   `env:"I18NTREE_STRICT"`

	Reference string `env:"I18NTREE_REFERENCE"`
	Sheet     string `env:"I18NTREE_SHEET"`
	OutDir    string `env:"I18NTREE_OUT_DIR" envDefault:"."`
	Format    string `env:"I18NTREE_FORMAT" envDefault:"yaml"`
	Comment   string `env:"I18NTREE_COMMENT"`
	Indent    int    `env:"I18NTREE_INDENT" envDefault:"2"`
}

// Load reads .env files (missing ones are ignored) and parses the
// environment into a Config.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Options converts the settings used by a conversion run.
func (c Config) Options() (i18ntree.Options, error) {
	opts := i18ntree.DefaultOptions()
	if c.KeyColumn != "" {
		opts.KeyColumn = c.KeyColumn
	}
	if c.LocalePrefix != "" {
		opts.LocalePrefix = c.LocalePrefix
	}
	if c.Delimiters != "" {
		opts.Delimiters = UnescapeDelimiters(c.Delimiters)
	}
	opts.Missing = c.Missing
	opts.Strict = c.Strict
	return opts, opts.Validate()
}

// UnescapeDelimiters expands the \n and \t escapes of a delimiter set.
func UnescapeDelimiters(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}
