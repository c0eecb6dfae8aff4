package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lifei6671/i18ntree"
	"github.com/lifei6671/i18ntree/config"
	"github.com/lifei6671/i18ntree/document"
	"github.com/lifei6671/i18ntree/sheet"
)

var buildConfiguration struct {
	dryRun     bool
	listSheets bool
}

func newBuildCommand(cfg *config.Config) *cobra.Command {
	command := &cobra.Command{
		Use:   "build <table>",
		Short: "Build one document per locale column of a translation table",
		Args:  cobra.ExactArgs(1),
		Run:   mainify(func(_ *cobra.Command, arguments []string) error { return buildMain(cfg, arguments) }),
	}
	flags := command.Flags()
	flags.StringVarP(&cfg.KeyColumn, "key-column", "k", cfg.KeyColumn, "Header of the key column")
	flags.StringVarP(&cfg.LocalePrefix, "locale-prefix", "p", cfg.LocalePrefix, "Case-insensitive header prefix of locale columns")
	flags.StringVarP(&cfg.Delimiters, "delimiters", "d", cfg.Delimiters, `Characters separating several keys in one cell (default "\n|,")`)
	flags.StringVarP(&cfg.Sheet, "sheet", "s", cfg.Sheet, "Workbook sheet to read (default first sheet)")
	flags.StringVarP(&cfg.OutDir, "out", "o", cfg.OutDir, "Output directory")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format: yaml or json")
	flags.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Report keys that would replace a value of another shape instead of replacing it")
	flags.BoolVarP(&buildConfiguration.dryRun, "dry-run", "n", false, "Print what would be written without writing")
	flags.BoolVar(&buildConfiguration.listSheets, "list-sheets", false, "List the sheets of a workbook and exit")
	bindConversionFlags(flags, cfg)
	return command
}

func buildMain(cfg *config.Config, arguments []string) error {
	if buildConfiguration.listSheets {
		return listSheets(arguments[0], cfg.Sheet)
	}

	opts, err := cfg.Options()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	codec, err := document.Lookup(cfg.Format)
	if err != nil {
		return err
	}

	var reference *i18ntree.Node
	if cfg.Reference != "" {
		if reference, err = document.ReadReference(cfg.Reference); err != nil {
			return errors.Wrap(err, "unable to load reference")
		}
		slog.Debug("loaded reference", "path", cfg.Reference, "keys", len(reference.Flatten()))
	}

	source := arguments[0]
	table, err := sheet.Read(source, cfg.Sheet)
	if err != nil {
		return errors.Wrap(err, "unable to read table")
	}
	slog.Debug("read table", "path", source, "columns", len(table.Headers), "rows", len(table.Rows))

	result, err := i18ntree.Convert(table, reference, opts)
	if err != nil {
		return errors.Wrap(err, "unable to convert table")
	}
	for _, w := range result.Warnings {
		slog.Warn("key skipped", "row", w.Row, "column", w.Column, "key", w.Key, "error", w.Err)
	}

	encodeOpts := document.EncodeOptions{Comment: cfg.Comment, Indent: cfg.Indent}
	if encodeOpts.Comment == "" {
		encodeOpts.Comment = fmt.Sprintf("Generated by i18ntree from %s. Do not edit.", filepath.Base(source))
	}

	var total int
	for _, out := range result.Outputs {
		path := filepath.Join(cfg.OutDir, localeFileName(out.Locale)+codec.Extensions()[0])

		var size int
		if buildConfiguration.dryRun {
			data, err := codec.Encode(out.Tree, encodeOpts)
			if err != nil {
				return errors.Wrapf(err, "unable to encode %s", out.Locale)
			}
			size = len(data)
		} else if size, err = document.WriteFile(path, out.Tree, encodeOpts); err != nil {
			return errors.Wrapf(err, "unable to write %s", path)
		}
		total += size
		printOutput(out.Locale, path, size, out.Report, buildConfiguration.dryRun)
	}
	printSummary(len(result.Outputs), total, len(result.Warnings))
	return nil
}

// listSheets prints the sheet names of a workbook, marking the one build
// reads.
func listSheets(path, selected string) error {
	names, err := sheet.Sheets(path)
	if err != nil {
		return errors.Wrap(err, "unable to list sheets")
	}
	for i, name := range names {
		if name == selected || (selected == "" && i == 0) {
			fmt.Fprintf(color.Output, "%s %s\n", color.GreenString("*"), name)
			continue
		}
		fmt.Fprintf(color.Output, "  %s\n", name)
	}
	return nil
}
