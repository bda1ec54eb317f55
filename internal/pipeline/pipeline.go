package pipeline

import (
	"os"

	"tlgen/internal/category"
	"tlgen/internal/config"
	"tlgen/internal/diagnostic"
	"tlgen/internal/errors"
	"tlgen/internal/gen"
	"tlgen/internal/logger"
	"tlgen/internal/schema"
)

// Output is everything one run produced.
type Output struct {
	Schema *schema.Schema
	Index  *category.Index
	Files  []gen.GeneratedFile
	// Diagnostics merges the parser's and the generator's findings.
	Diagnostics diagnostic.Diagnostics
	Sealed      int
	Standalone  int
}

// CategoryCounts returns the number of generated files per category.
func (o *Output) CategoryCounts() map[string]int {
	res := gen.Result{Files: o.Files}

	return res.CategoryCounts()
}

// GenerateFile reads the schema at path and runs Generate on it.
func GenerateFile(path string, cfg *config.Config) (*Output, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading schema %s", path)
	}

	out, err := Generate(string(text), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "generating from %s", path)
	}

	return out, nil
}

// Generate parses schemaText and renders it with cfg. The configuration is
// validated first; any error aborts before files are produced.
func Generate(schemaText string, cfg *config.Config) (*Output, error) {
	if cfg == nil {
		cfg = config.New()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := schema.Parse(schemaText)
	if err != nil {
		return nil, err
	}

	logger.Logger.Debugw("parsed schema",
		"types", len(s.Types),
		"functions", len(s.Functions),
		"discarded", len(s.Diagnostics.Infos))

	out := &Output{Schema: s}
	out.Diagnostics.Merge(s.Diagnostics)

	out.Index, err = Classify(s, cfg)
	if err != nil {
		return nil, err
	}

	if out.Index.Len() == 0 {
		out.Diagnostics.AddWarning(diagnostic.CodeEmptyClassifierInput,
			"schema defines no types; nothing to generate", "", "")
	}

	res, err := gen.NewGenerator(gen.ConfigFrom(cfg), out.Index).Generate(s)
	if err != nil {
		return nil, err
	}

	out.Files = res.Files
	out.Sealed = res.Sealed
	out.Standalone = res.Standalone
	out.Diagnostics.Merge(res.Diagnostics)

	for _, d := range out.Diagnostics.Warnings {
		logger.Logger.Debugw("diagnostic", "severity", d.Severity.String(), "detail", d.String())
	}

	logger.Logger.Debugw("generated files",
		"files", len(out.Files),
		"sealed", out.Sealed,
		"standalone", out.Standalone)

	return out, nil
}

// Classify builds the category index over every return type of s.
func Classify(s *schema.Schema, cfg *config.Config) (*category.Index, error) {
	if s == nil {
		return nil, errors.AssertionFailedf("classify called without a schema")
	}

	if cfg == nil {
		cfg = config.New()
	}

	names := s.ReturnTypes()
	ix := category.BuildIndex(names, cfg.ClassifierOptions())

	logger.Logger.Debugw("classified return types",
		"names", len(names),
		"categories", len(ix.CategoryNames()),
		"min_cluster_size", ix.MinClusterSize())

	return ix, nil
}
