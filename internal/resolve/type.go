package resolve

import "strings"

// Type is a resolved wire type.
type Type struct {
	Kind Kind
	// Wire is the type as written in the schema, e.g. "int53" or "vector<file>".
	Wire string
	// Name is the Kotlin name for primitives, references and the opaque type.
	// Empty for vectors. Rendering, including references to generated
	// classes, is done by the emitter.
	Name string
	// Elem is the element type of a vector.
	Elem *Type
}

// IsLeaf reports whether the type needs no conversion at any nesting level.
func (t *Type) IsLeaf() bool {
	if t.Kind == KindVector {
		return t.Elem.IsLeaf()
	}

	return t.Kind.IsLeaf()
}

// Depth is the vector nesting depth: 0 for non-vectors.
func (t *Type) Depth() int {
	depth := 0
	for cur := t; cur.Kind == KindVector; cur = cur.Elem {
		depth++
	}

	return depth
}

// Innermost returns the non-vector type at the bottom of the nesting.
func (t *Type) Innermost() *Type {
	cur := t
	for cur.Kind == KindVector {
		cur = cur.Elem
	}

	return cur
}

// IsOpaque reports whether the type is the opaque error type, not wrapped in
// a vector.
func (t *Type) IsOpaque() bool {
	return t.Kind == KindOpaque
}

// String returns the type as written in the schema.
func (t *Type) String() string {
	return t.Wire
}

// IsNullable reports whether a field doc marks the field as optional.
func IsNullable(doc string) bool {
	lower := strings.ToLower(doc)

	return strings.Contains(lower, "may be null") || strings.Contains(lower, "; if not")
}
