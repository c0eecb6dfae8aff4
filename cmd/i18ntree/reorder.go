package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lifei6671/i18ntree"
	"github.com/lifei6671/i18ntree/config"
	"github.com/lifei6671/i18ntree/document"
)

var reorderConfiguration struct {
	check bool
}

func newReorderCommand(cfg *config.Config) *cobra.Command {
	command := &cobra.Command{
		Use:   "reorder <document>...",
		Short: "Align locale documents with the key order and keys of a reference",
		Args:  cobra.MinimumNArgs(1),
		Run: mainify(func(_ *cobra.Command, arguments []string) error {
			return reorderMain(cfg, arguments)
		}),
	}
	flags := command.Flags()
	flags.BoolVar(&reorderConfiguration.check, "check", false, "Only report; exit with an error if any document would change")
	bindConversionFlags(flags, cfg)
	return command
}

func reorderMain(cfg *config.Config, arguments []string) error {
	if cfg.Reference == "" {
		return errors.New("a reference document is required (--reference)")
	}
	reference, err := document.ReadReference(cfg.Reference)
	if err != nil {
		return errors.Wrap(err, "unable to load reference")
	}
	referencePath, _ := filepath.Abs(cfg.Reference)

	var stale int
	for _, path := range arguments {
		if abs, _ := filepath.Abs(path); abs == referencePath {
			slog.Debug("skipping reference document", "path", path)
			continue
		}
		target, err := document.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "unable to read %s", path)
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		merged, report := i18ntree.Reorder(reference, target, cfg.Missing)
		if merged.Equal(target) {
			printOutput(name, path, 0, report, true)
			continue
		}
		stale++

		size := 0
		if !reorderConfiguration.check {
			opts := document.EncodeOptions{Comment: cfg.Comment, Indent: cfg.Indent}
			if size, err = document.WriteFile(path, merged, opts); err != nil {
				return errors.Wrapf(err, "unable to write %s", path)
			}
		}
		printOutput(name, path, size, report, reorderConfiguration.check)
	}

	if reorderConfiguration.check && stale > 0 {
		return fmt.Errorf("%d document(s) out of shape with %s", stale, cfg.Reference)
	}
	return nil
}
