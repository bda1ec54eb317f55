package gen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"tlgen/internal/common"
	"tlgen/internal/diagnostic"
	"tlgen/internal/errors"
	"tlgen/internal/resolve"
	"tlgen/internal/schema"
)

// fileBuilder collects the imports of one Kotlin file while its body is
// rendered.
type fileBuilder struct {
	g       *Generator
	pkg     string
	imports map[string]bool
	// shadowed are simple names declared inside the file's class body; a
	// top-level class with one of these names must be fully qualified.
	shadowed map[string]bool
}

func (g *Generator) newFile(pkg string) *fileBuilder {
	return &fileBuilder{
		g:        g,
		pkg:      pkg,
		imports:  make(map[string]bool),
		shadowed: make(map[string]bool),
	}
}

// addImport imports a qualified name unless it lives in the file's package.
func (f *fileBuilder) addImport(qualified string) {
	if q := common.Qualifier(qualified); q == "" || q == packageDecl(f.pkg) {
		return
	}

	f.imports[qualified] = true
}

// classRef returns how the file refers to a symbol's domain class, importing
// it when needed.
func (f *fileBuilder) classRef(s symbol) string {
	pkg := f.g.domainPackage(s.Category)

	if f.shadowed[s.Class] {
		return packageDecl(pkg) + "." + s.Ref()
	}

	f.addImport(common.JoinQualified(packageDecl(pkg), s.Class))

	return s.Ref()
}

// kotlinType renders t, resolving references through the symbol table.
// Unknown references are reported and kept as written.
func (f *fileBuilder) kotlinType(t *resolve.Type, nested bool, c *schema.Constructor, field string) string {
	switch t.Kind {
	case resolve.KindVector:
		return "List<" + f.kotlinType(t.Elem, true, c, field) + ">"
	case resolve.KindOpaque:
		if nested {
			return "@Contextual " + t.Name
		}

		return t.Name
	case resolve.KindReference:
		s, ok := f.g.symbols.lookup(t.Name)
		if !ok {
			f.g.unknownReference(t.Name, c, field)

			return t.Name
		}

		return f.classRef(s)
	default:
		return t.Name
	}
}

func (g *Generator) unknownReference(name string, c *schema.Constructor, field string) {
	g.diagnostics.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticWarning,
		Code:        diagnostic.CodeUnknownReference,
		Message:     fmt.Sprintf("type %s is not defined by the schema", name),
		Subject:     c.Name,
		Field:       field,
		Line:        c.Line,
		Suggestions: g.symbols.suggest(name),
	})
}

// render executes the file frame around body.
func (f *fileBuilder) render(body string) ([]byte, error) {
	imports := make([]string, 0, len(f.imports))
	for imp := range f.imports {
		imports = append(imports, imp)
	}

	sort.Strings(imports)

	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, fileData{
		Package: packageDecl(f.pkg),
		Imports: imports,
		Body:    strings.TrimRight(body, "\n"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	return buf.Bytes(), nil
}
