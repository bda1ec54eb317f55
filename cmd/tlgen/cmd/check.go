package cmd

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tlgen/internal/errors"
	"tlgen/internal/gen"
	"tlgen/internal/pipeline"
)

func newCheckCmd(opts *options) *cobra.Command {
	var withDiff bool

	cmd := &cobra.Command{
		Use:   "check <schema.tl> <output-dir>",
		Short: "Check that generated files are up to date",
		Long: `Generate in memory and compare the result with an existing output directory.
Nothing is written.

Exit codes:
  0 - files are up to date
  1 - files are out of date (changed, missing or stale files listed)
  2 - error during check`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0], args[1], withDiff)
		},
	}

	cmd.Flags().BoolVar(&withDiff, "diff", false, "Print a unified diff for each differing file")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *options, schemaPath, outDir string, withDiff bool) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := pipeline.GenerateFile(schemaPath, cfg)
	if err != nil {
		return err
	}

	logDiagnostics(out)

	res, err := gen.Check(out.Files, outDir, withDiff)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if res.UpToDate() {
		fmt.Fprint(w, pterm.Success.Sprintf("%s is up to date (%d files)\n", outDir, len(out.Files)))

		return nil
	}

	printPaths(w, "changed", res.Changed)
	printPaths(w, "missing", res.Missing)
	printPaths(w, "stale", res.Stale)

	if withDiff {
		for _, list := range [][]string{res.Changed, res.Missing} {
			for _, path := range list {
				fmt.Fprint(w, res.Diffs[path])
			}
		}
	}

	return errors.WithHintf(errOutOfDate, "run 'tlgen %s %s' to regenerate", schemaPath, outDir)
}

func printPaths(w io.Writer, label string, paths []string) {
	if len(paths) == 0 {
		return
	}

	fmt.Fprintf(w, "%s (%d):\n", label, len(paths))

	for _, p := range paths {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}
