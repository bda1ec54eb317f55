// Package cmd implements the tlgen command line.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tlgen/internal/config"
	"tlgen/internal/errors"
	"tlgen/internal/gen"
	"tlgen/internal/logger"
	"tlgen/internal/pipeline"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitOutOfDate = 1
	ExitFailure   = 2
)

// errOutOfDate is returned by check when the directory needs regenerating.
var errOutOfDate = errors.New("generated files are out of date")

// options are the flags shared by every command.
type options struct {
	configPath string
	pkg        string
	base       string
	layout     string
	wireClass  string
	minCluster int
	noMappers  bool
	verbose    int
	jsonLog    bool
}

// NewRootCmd builds the tlgen command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	var noClean, dryRun bool

	root := &cobra.Command{
		Use:   "tlgen <schema.tl> <output-dir>",
		Short: "Generate Kotlin models and TDLib adapters from a TL schema",
		Long: `Generate Kotlin domain models from a TL schema.

Every return type becomes a @Serializable data class, or a sealed interface
when several constructors share it. Adapters convert the TDLib wire classes
(TdApi.*) into the models with toModel() extension functions. Files are
grouped into packages by a word-frequency classifier over the type names.

Files carrying the generated header are removed from the output directory
before writing unless --no-clean is given. An output directory that contains
the working directory, the schema or the config file is refused.

Examples:
  tlgen td_api.tl build/generated
  tlgen td_api.tl out -p org.acme.telegram -b TelegramObject
  tlgen td_api.tl out --layout split --no-mappers
  tlgen check td_api.tl build/generated --diff
  tlgen categories td_api.tl --json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(opts.verbose, opts.jsonLog); err != nil {
				return errors.Wrap(err, "initializing logger")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args[0], args[1], noClean, dryRun)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML or JSON configuration file")
	flags.StringVarP(&opts.pkg, "package", "p", "", "Root Kotlin package (default com.example.tdlib)")
	flags.StringVarP(&opts.base, "base", "b", "", "Interface every model implements (default TdObject)")
	flags.StringVarP(&opts.layout, "layout", "l", "", "Output layout: categorized or split")
	flags.StringVar(&opts.wireClass, "wire-class", "", "Qualified class nesting the wire types")
	flags.IntVar(&opts.minCluster, "min-cluster", 0, "Smallest category the classifier may create")
	flags.BoolVar(&opts.noMappers, "no-mappers", false, "Skip the toModel() adapter files")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity (-v, -vv)")
	flags.BoolVar(&opts.jsonLog, "json-log", false, "Log as JSON")

	root.Flags().BoolVar(&noClean, "no-clean", false, "Keep existing files in the output directory")
	root.Flags().BoolVar(&dryRun, "dry-run", false, "Generate in memory and print the summary only")

	root.AddCommand(newCheckCmd(opts), newCategoriesCmd(opts))

	return root
}

// loadConfig starts from defaults, merges the config file and applies the
// flags that were set explicitly.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.New()

	if o.configPath != "" {
		if err := cfg.LoadFile(o.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()

	if flags.Changed("package") {
		cfg.Package = o.pkg
	}

	if flags.Changed("base") {
		cfg.BaseClass = o.base
	}

	if flags.Changed("layout") {
		cfg.Layout = config.Layout(o.layout)
	}

	if flags.Changed("wire-class") {
		cfg.WireClass = o.wireClass
	}

	if flags.Changed("min-cluster") {
		cfg.Classifier.MinClusterSize = o.minCluster
	}

	if o.noMappers {
		cfg.Mappers = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, opts *options, schemaPath, outDir string, noClean, dryRun bool) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := pipeline.GenerateFile(schemaPath, cfg)
	if err != nil {
		return err
	}

	logDiagnostics(out)

	if !dryRun {
		if !noClean {
			if err := gen.CleanOutputDir(outDir, schemaPath, opts.configPath); err != nil {
				return err
			}
		}

		if err := gen.WriteFiles(out.Files, outDir); err != nil {
			return err
		}

		logger.Logger.Infow("wrote files", "dir", outDir, "files", len(out.Files))
	}

	return printSummary(cmd.OutOrStdout(), out, outDir, dryRun)
}

func logDiagnostics(out *pipeline.Output) {
	for _, d := range out.Diagnostics.Warnings {
		logger.Logger.Warn(d.String())
	}

	for _, d := range out.Diagnostics.Infos {
		logger.Logger.Debug(d.String())
	}
}

// PrintError writes err and its hints.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "  hint: %s\n", hint)
	}
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errOutOfDate):
		return ExitOutOfDate
	default:
		return ExitFailure
	}
}
