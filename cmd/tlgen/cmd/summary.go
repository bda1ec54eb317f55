package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"tlgen/internal/errors"
	"tlgen/internal/pipeline"
)

// printSummary renders the number of files per category.
func printSummary(w io.Writer, out *pipeline.Output, outDir string, dryRun bool) error {
	counts := out.CategoryCounts()

	cats := make([]string, 0, len(counts))
	for cat := range counts {
		cats = append(cats, cat)
	}

	sort.Strings(cats)

	data := pterm.TableData{{"Category", "Files"}}
	for _, cat := range cats {
		data = append(data, []string{cat, strconv.Itoa(counts[cat])})
	}

	data = append(data, []string{"total", strconv.Itoa(len(out.Files))})

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering summary")
	}

	fmt.Fprintln(w, table)

	msg := fmt.Sprintf("Generated %d files (%d sealed, %d standalone) into %s",
		len(out.Files), out.Sealed, out.Standalone, outDir)
	if dryRun {
		msg = fmt.Sprintf("Dry run: %d files would be written to %s", len(out.Files), outDir)
	}

	fmt.Fprint(w, pterm.Success.Sprintln(msg))

	if n := len(out.Diagnostics.Warnings); n > 0 {
		fmt.Fprint(w, pterm.Warning.Sprintf("%d warnings, rerun with -v for details\n", n))
	}

	return nil
}

// categoryRows renders one table row per category.
func categoryRows(categories map[string][]string) pterm.TableData {
	names := make([]string, 0, len(categories))
	for cat := range categories {
		names = append(names, cat)
	}

	sort.Strings(names)

	data := pterm.TableData{{"Category", "Types", "Return types"}}
	for _, cat := range names {
		members := categories[cat]
		data = append(data, []string{cat, strconv.Itoa(len(members)), strings.Join(members, ", ")})
	}

	return data
}
