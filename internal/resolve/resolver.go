package resolve

import (
	"regexp"
	"strings"

	"tlgen/internal/errors"
	"tlgen/internal/naming"
)

// DefaultWireClass holds the wire classes on the JVM side.
const DefaultWireClass = "org.drinkless.tdlib.TdApi"

const vectorKeyword = "vector"

// primitives maps lowercase wire primitives to Kotlin types.
var primitives = map[string]string{
	"int32":  "Int",
	"int53":  "Long",
	"int64":  "Long",
	"double": "Double",
	"string": "String",
	"bool":   "Boolean",
	"true":   "Boolean",
	"bytes":  "ByteArray",
}

const opaqueName = "error"

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Resolver resolves wire types. The zero value uses DefaultWireClass.
type Resolver struct {
	// WireClass is the qualified class that nests the wire classes.
	WireClass string
}

// NewResolver returns a Resolver for wireClass, or DefaultWireClass if empty.
func NewResolver(wireClass string) *Resolver {
	if wireClass == "" {
		wireClass = DefaultWireClass
	}

	return &Resolver{WireClass: wireClass}
}

func (r *Resolver) wireClass() string {
	if r == nil || r.WireClass == "" {
		return DefaultWireClass
	}

	return r.WireClass
}

// OpaqueType is the Kotlin name of the opaque error type.
func (r *Resolver) OpaqueType() string {
	return r.wireClass() + ".Error"
}

// Resolve resolves a wire type. Unparsable input wraps
// errors.ErrUnresolvedType.
func (r *Resolver) Resolve(wireType string) (*Type, error) {
	s := strings.TrimSpace(wireType)

	if inner, ok := vectorElem(s); ok {
		elem, err := r.Resolve(inner)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", wireType)
		}

		return &Type{Kind: KindVector, Wire: s, Elem: elem}, nil
	}

	if strings.EqualFold(s, vectorKeyword) {
		err := errors.Wrapf(errors.ErrUnresolvedType, "%q", wireType)

		return nil, errors.WithHint(err, "a vector needs an element type: vector<T>")
	}

	if kt, ok := lookupPrimitive(s); ok {
		return &Type{Kind: KindPrimitive, Wire: s, Name: kt}, nil
	}

	if isSpelling(s, opaqueName) {
		return &Type{Kind: KindOpaque, Wire: s, Name: r.OpaqueType()}, nil
	}

	if identPattern.MatchString(s) {
		return &Type{Kind: KindReference, Wire: s, Name: naming.Cap(s)}, nil
	}

	err := errors.Wrapf(errors.ErrUnresolvedType, "%q", wireType)

	if hints := naming.Suggest(s, primitiveNames(), 2, 1); len(hints) > 0 {
		err = errors.WithHintf(err, "did you mean %s?", hints[0])
	}

	return nil, err
}

// vectorElem returns X for "vector<X>", with the keyword in any letter case.
func vectorElem(s string) (string, bool) {
	open := len(vectorKeyword)
	if len(s) < open+2 || !strings.EqualFold(s[:open], vectorKeyword) {
		return "", false
	}

	if s[open] != '<' || s[len(s)-1] != '>' {
		return "", false
	}

	return s[open+1 : len(s)-1], true
}

// isSpelling accepts the lowercase and the capitalized spelling of a wire
// keyword.
func isSpelling(s, lower string) bool {
	return s == lower || s == naming.Cap(lower)
}

func lookupPrimitive(s string) (string, bool) {
	lower := strings.ToLower(s)

	kt, ok := primitives[lower]
	if !ok || !isSpelling(s, lower) {
		return "", false
	}

	return kt, true
}

func primitiveNames() []string {
	names := make([]string, 0, len(primitives)+1)
	for name := range primitives {
		names = append(names, name)
	}

	return append(names, opaqueName)
}
