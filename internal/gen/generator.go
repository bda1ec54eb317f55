package gen

import (
	"sort"

	"tlgen/internal/category"
	"tlgen/internal/common"
	"tlgen/internal/config"
	"tlgen/internal/diagnostic"
	"tlgen/internal/errors"
	"tlgen/internal/resolve"
	"tlgen/internal/schema"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Package is the root Kotlin package.
	Package string
	// BaseClass is the interface every model implements.
	BaseClass string
	// WireClass nests the wire classes, e.g. "org.drinkless.tdlib.TdApi".
	WireClass string
	Layout    config.Layout
	// Mappers enables the toModel() adapter files.
	Mappers bool
	// EmitBase writes the BaseClass interface.
	EmitBase bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return ConfigFrom(config.New())
}

// ConfigFrom extracts the generator settings from a loaded configuration.
func ConfigFrom(c *config.Config) GeneratorConfig {
	return GeneratorConfig{
		Package:   c.Package,
		BaseClass: c.BaseClass,
		WireClass: c.WireClass,
		Layout:    c.Layout,
		Mappers:   c.Mappers,
		EmitBase:  c.EmitBase,
	}
}

// FileKind tells generated files apart.
type FileKind string

const (
	FileDomain FileKind = "domain"
	FileMapper FileKind = "mapper"
	FileBase   FileKind = "base"
)

// GeneratedFile represents a generated Kotlin source file.
type GeneratedFile struct {
	// Path is slash-separated and relative to the output directory,
	// e.g. "chat/ChatType.kt".
	Path    string
	Content []byte
	// Category is the classifier category, empty for the base interface.
	Category string
	Kind     FileKind
}

// Result is the output of one generation run.
type Result struct {
	// Files are sorted by path.
	Files       []GeneratedFile
	Diagnostics diagnostic.Diagnostics
	// Sealed and Standalone count the domain types by shape.
	Sealed     int
	Standalone int
}

// CategoryCounts returns the number of files per category.
func (r *Result) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, f := range r.Files {
		if f.Category != "" {
			counts[f.Category]++
		}
	}

	return counts
}

// Generator renders domain and mapper files. The category index is built
// by the caller from the complete set of return types.
type Generator struct {
	config   GeneratorConfig
	resolver *resolve.Resolver
	index    *category.Index

	symbols     *symbolTable
	diagnostics diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, index *category.Index) *Generator {
	return &Generator{
		config:   config,
		resolver: resolve.NewResolver(config.WireClass),
		index:    index,
	}
}

// Generate renders every type group of s. Function constructors are ignored.
// Nothing is returned unless every file renders.
func (g *Generator) Generate(s *schema.Schema) (*Result, error) {
	if g.index == nil {
		return nil, errors.AssertionFailedf("generator has no category index")
	}

	groups := s.Groups()

	symbols, err := buildSymbols(groups, g.index)
	if err != nil {
		return nil, err
	}

	g.symbols = symbols
	g.diagnostics = diagnostic.Diagnostics{}

	res := &Result{}

	for _, grp := range groups {
		cat := g.index.Get(grp.ReturnType)

		domain, err := g.domainFile(grp, cat, s.ClassDescriptions[grp.ReturnType])
		if err != nil {
			return nil, errors.Wrapf(err, "generating %s", grp.ReturnType)
		}

		res.Files = append(res.Files, domain)

		if grp.IsSealed() {
			res.Sealed++
		} else {
			res.Standalone++
		}

		if !g.config.Mappers {
			continue
		}

		mapper, err := g.mapperFile(grp, cat)
		if err != nil {
			return nil, errors.Wrapf(err, "generating mapper for %s", grp.ReturnType)
		}

		res.Files = append(res.Files, mapper)
	}

	if g.config.EmitBase {
		res.Files = append(res.Files, g.baseFile())
	}

	sort.Slice(res.Files, func(i, j int) bool {
		return res.Files[i].Path < res.Files[j].Path
	})

	res.Diagnostics = g.diagnostics

	return res, nil
}

// checkVariants asserts that every constructor of a group returns the
// group's type.
func checkVariants(grp schema.Group) error {
	if _, ok := common.First(grp.Constructors); !ok {
		return errors.Wrapf(errors.ErrUnknownWireVariant, "group %s has no constructors", grp.ReturnType)
	}

	for _, c := range grp.Constructors {
		if c.ReturnType != grp.ReturnType {
			return errors.Wrapf(errors.ErrUnknownWireVariant,
				"constructor %s returns %s, not %s", c.Name, c.ReturnType, grp.ReturnType)
		}
	}

	return nil
}
