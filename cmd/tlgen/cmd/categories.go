package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tlgen/internal/errors"
	"tlgen/internal/pipeline"
	"tlgen/internal/schema"
)

// categoryReport is the JSON form of the classifier output.
type categoryReport struct {
	MinClusterSize int                 `json:"minClusterSize"`
	Categories     map[string][]string `json:"categories"`
	Assignments    map[string]string   `json:"assignments"`
}

func newCategoriesCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories <schema.tl>",
		Short: "Show the category of every return type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd, opts, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the assignment as JSON")

	return cmd
}

func runCategories(cmd *cobra.Command, opts *options, schemaPath string, asJSON bool) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(schemaPath)
	if err != nil {
		return errors.Wrapf(err, "reading schema %s", schemaPath)
	}

	s, err := schema.Parse(string(text))
	if err != nil {
		return err
	}

	ix, err := pipeline.Classify(s, cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if asJSON {
		data, err := json.MarshalIndent(categoryReport{
			MinClusterSize: ix.MinClusterSize(),
			Categories:     ix.Categories(),
			Assignments:    ix.Assignments(),
		}, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding categories")
		}

		fmt.Fprintln(w, string(data))

		return nil
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(categoryRows(ix.Categories())).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering categories")
	}

	fmt.Fprintln(w, table)

	return nil
}
