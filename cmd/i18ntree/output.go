package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/lifei6671/i18ntree"
)

// printOutput prints one line per document, followed by its merge report.
func printOutput(name, path string, size int, report *i18ntree.Report, dryRun bool) {
	switch {
	case size == 0 && dryRun:
		fmt.Fprintf(color.Output, "%s %s\n", color.GreenString("%-8s", name), path)
	case dryRun:
		fmt.Fprintf(color.Output, "%s %s (%s, not written)\n", color.GreenString("%-8s", name), path, humanize.Bytes(uint64(size)))
	default:
		fmt.Fprintf(color.Output, "%s %s (%s)\n", color.GreenString("%-8s", name), path, humanize.Bytes(uint64(size)))
	}
	printReport(report)
}

func printReport(report *i18ntree.Report) {
	if report.Empty() {
		return
	}
	for _, p := range report.Missing {
		fmt.Fprintf(color.Output, "  %s %s\n", color.YellowString("+ missing"), p)
	}
	for _, p := range report.Extra {
		fmt.Fprintf(color.Output, "  %s %s\n", color.CyanString("~ extra  "), p)
	}
}

func printSummary(documents, bytes, warnings int) {
	summary := fmt.Sprintf("%d document(s), %s", documents, humanize.Bytes(uint64(bytes)))
	if warnings > 0 {
		fmt.Fprintln(color.Output, summary+", "+color.RedString("%d warning(s)", warnings))
		warning(fmt.Sprintf("%d key(s) skipped, see log", warnings))
		return
	}
	fmt.Fprintln(color.Output, summary)
}
