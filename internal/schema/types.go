package schema

import (
	"sort"

	"tlgen/internal/common"
	"tlgen/internal/diagnostic"
)

// Field is one named, typed argument of a constructor.
type Field struct {
	WireName string // exact wire identifier, e.g. "user_id"
	WireType string // type as written in the schema, e.g. "vector<int53>"
}

// Constructor is one parsed definition. It is never mutated after parsing.
type Constructor struct {
	Name        string            // concrete variant name, e.g. "chatTypePrivate"
	ReturnType  string            // group it belongs to, e.g. "ChatType"
	Description string            // @description text
	FieldDocs   map[string]string // wire field name -> documentation
	Fields      []Field           // in source order, "flags" excluded
	IsFunction  bool              // defined in the functions section
	Line        int               // 1-based line where the definition starts
}

// FieldDoc returns the documentation of a field, or "" if it has none.
func (c *Constructor) FieldDoc(wireName string) string {
	return c.FieldDocs[wireName]
}

// Schema is the parsed form of one schema text.
type Schema struct {
	Types     []Constructor
	Functions []Constructor
	// ClassDescriptions maps a return type to its //@class description.
	ClassDescriptions map[string]string
	// Diagnostics records definitions the parser discarded on purpose.
	Diagnostics diagnostic.Diagnostics
}

// Group is the set of constructors sharing one return type.
type Group struct {
	ReturnType   string
	Constructors []Constructor // in source order
}

// IsSealed reports whether the group has more than one constructor and is
// therefore emitted as a closed polymorphic type.
func (g Group) IsSealed() bool {
	return common.IsMultiple(g.Constructors)
}

// Groups returns the type constructors grouped by return type, sorted by
// return type name.
func (s *Schema) Groups() []Group {
	index := make(map[string]int)

	var groups []Group
	for _, c := range s.Types {
		i, ok := index[c.ReturnType]
		if !ok {
			i = len(groups)
			index[c.ReturnType] = i
			groups = append(groups, Group{ReturnType: c.ReturnType})
		}

		groups[i].Constructors = append(groups[i].Constructors, c)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ReturnType < groups[j].ReturnType
	})

	return groups
}

// ReturnTypes returns the distinct return types of all type constructors,
// sorted.
func (s *Schema) ReturnTypes() []string {
	seen := make(map[string]bool)

	var names []string
	for _, c := range s.Types {
		if !seen[c.ReturnType] {
			seen[c.ReturnType] = true
			names = append(names, c.ReturnType)
		}
	}

	sort.Strings(names)

	return names
}

// Lookup finds a type or function constructor by name.
func (s *Schema) Lookup(name string) (*Constructor, bool) {
	for _, list := range [][]Constructor{s.Types, s.Functions} {
		for i := range list {
			if list[i].Name == name {
				return &list[i], true
			}
		}
	}

	return nil, false
}
