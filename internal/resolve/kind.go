package resolve

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // zero value is an invalid Kind

	KindPrimitive
	KindOpaque    // passed through without conversion
	KindReference // another schema type, converted with toModel()
	KindVector
)

// IsLeaf reports whether values of this kind need no conversion.
func (k Kind) IsLeaf() bool {
	switch k {
	default:
		return false
	case KindPrimitive, KindOpaque:
		return true
	}
}
