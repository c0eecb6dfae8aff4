package main

import (
	"github.com/spf13/pflag"

	"github.com/lifei6671/i18ntree/config"
)

// bindConversionFlags registers the flags shared by build and reorder. Their
// defaults come from the environment configuration.
func bindConversionFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.StringVarP(&cfg.Reference, "reference", "r", cfg.Reference, "Reference document defining key order and completeness")
	flags.VarP(&cfg.Missing, "missing", "m", "Value for keys missing from a locale: blank, null or ref")
	flags.StringVar(&cfg.Comment, "comment", cfg.Comment, "Leading comment written to each document")
	flags.IntVar(&cfg.Indent, "indent", cfg.Indent, "Spaces per indentation level")
}
