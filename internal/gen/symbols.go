package gen

import (
	"sort"

	"tlgen/internal/category"
	"tlgen/internal/common"
	"tlgen/internal/errors"
	"tlgen/internal/naming"
	"tlgen/internal/schema"
)

// symbol is an emitted Kotlin class.
type symbol struct {
	// Class is the top-level class: the sealed interface or the standalone
	// data class.
	Class string
	// Variant is the nested class inside Class, empty for top-level symbols.
	Variant  string
	Category string
}

// Ref is the name of the symbol relative to its package.
func (s symbol) Ref() string {
	if s.Variant != "" {
		return s.Class + "." + s.Variant
	}

	return s.Class
}

// symbolTable maps schema names to emitted classes for the whole schema.
type symbolTable struct {
	types   map[string]symbol // by return type
	ctors   map[string]symbol // by capitalized constructor name
	classes []string          // sorted top-level class names
}

func buildSymbols(groups []schema.Group, index *category.Index) (*symbolTable, error) {
	t := &symbolTable{
		types: make(map[string]symbol, len(groups)),
		ctors: make(map[string]symbol),
	}

	owner := make(map[string]string, len(groups))

	for _, grp := range groups {
		cat := index.Get(grp.ReturnType)

		class := grp.ReturnType
		if common.IsSingle(grp.Constructors) {
			class = naming.Cap(grp.Constructors[0].Name)
		}

		if prev, dup := owner[class]; dup {
			return nil, errors.Wrapf(errors.ErrMalformedSchema,
				"return types %s and %s both produce class %s", prev, grp.ReturnType, class)
		}

		owner[class] = grp.ReturnType
		t.classes = append(t.classes, class)

		top := symbol{Class: class, Category: cat}
		t.types[grp.ReturnType] = top

		for _, c := range grp.Constructors {
			name := naming.Cap(c.Name)
			if grp.IsSealed() {
				t.ctors[name] = symbol{Class: class, Variant: name, Category: cat}
			} else {
				t.ctors[name] = top
			}
		}
	}

	sort.Strings(t.classes)

	return t, nil
}

// lookup resolves a referenced type name, return types first.
func (t *symbolTable) lookup(name string) (symbol, bool) {
	if s, ok := t.types[name]; ok {
		return s, true
	}

	s, ok := t.ctors[name]

	return s, ok
}

func (t *symbolTable) suggest(name string) []string {
	return naming.Suggest(name, t.classes, 2, 3)
}
