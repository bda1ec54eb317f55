package gen

import (
	"fmt"
	"strings"

	"tlgen/internal/common"
	"tlgen/internal/errors"
	"tlgen/internal/naming"
	"tlgen/internal/resolve"
	"tlgen/internal/schema"
)

const toModel = "toModel"

func (g *Generator) mapperFile(grp schema.Group, cat string) (GeneratedFile, error) {
	f := g.newFile(g.mapperPackage(cat))
	f.addImport(g.resolver.WireClass)

	var (
		body  string
		class string
		err   error
	)

	if grp.IsSealed() {
		class = grp.ReturnType
		body, err = g.sealedMapper(f, grp)
	} else {
		c := grp.Constructors[0]
		class = naming.Cap(c.Name)
		body, err = g.standaloneMapper(f, grp.ReturnType, &c)
	}

	if err != nil {
		return GeneratedFile{}, err
	}

	content, err := f.render(body)
	if err != nil {
		return GeneratedFile{}, err
	}

	return GeneratedFile{
		Path:     g.mapperPath(cat, class),
		Content:  content,
		Category: cat,
		Kind:     FileMapper,
	}, nil
}

// standaloneMapper renders the adapter of a single-constructor group:
//
//	public fun TdApi.Chat.toModel(): Chat = Chat(
//	    id = id,
//	    photo = photo?.toModel()
//	)
func (g *Generator) standaloneMapper(f *fileBuilder, returnType string, c *schema.Constructor) (string, error) {
	ref := f.classRef(g.symbols.types[returnType])
	wire := g.wireName() + "." + naming.Cap(c.Name)

	ctor, err := g.construct(f, c, ref, "")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("public fun %s.%s(): %s = %s", wire, toModel, ref, ctor), nil
}

// sealedMapper dispatches over the variants of a group. An unknown variant
// is a runtime error:
//
//	public fun TdApi.ChatType.toModel(): ChatType = when (this) {
//	    is TdApi.ChatTypePrivate -> ChatType.ChatTypePrivate(
//	        userId = userId
//	    )
//	    else -> error("Unknown ChatType: $this")
//	}
func (g *Generator) sealedMapper(f *fileBuilder, grp schema.Group) (string, error) {
	if err := checkVariants(grp); err != nil {
		return "", err
	}

	ref := f.classRef(g.symbols.types[grp.ReturnType])
	wire := g.wireName()

	var b strings.Builder

	fmt.Fprintf(&b, "public fun %s.%s.%s(): %s = when (this) {\n", wire, grp.ReturnType, toModel, ref)

	for i := range grp.Constructors {
		c := &grp.Constructors[i]
		name := naming.Cap(c.Name)

		ctor, err := g.construct(f, c, ref+"."+name, indentUnit)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "%sis %s.%s -> %s\n", indentUnit, wire, name, ctor)
	}

	fmt.Fprintf(&b, "%selse -> error(\"Unknown %s: $this\")\n", indentUnit, grp.ReturnType)
	b.WriteString("}")

	return b.String(), nil
}

// construct renders the constructor call of a domain class from the fields
// of the receiver in scope. Objects are referenced by name.
func (g *Generator) construct(f *fileBuilder, c *schema.Constructor, class, indent string) (string, error) {
	if len(c.Fields) == 0 {
		return class, nil
	}

	var b strings.Builder

	b.WriteString(class + "(\n")

	for i, field := range c.Fields {
		t, err := g.resolver.Resolve(field.WireType)
		if err != nil {
			return "", errors.Wrapf(err, "constructor %s field %s", c.Name, field.WireName)
		}

		name := fieldName(field.WireName)
		nullable := resolve.IsNullable(c.FieldDoc(field.WireName))

		fmt.Fprintf(&b, "%s%s%s = %s", indent, indentUnit, name, f.convert(name, t, nullable, 1))

		if i < len(c.Fields)-1 {
			b.WriteString(",")
		}

		b.WriteString("\n")
	}

	b.WriteString(indent + ")")

	return b.String(), nil
}

// convert renders the expression turning a wire value into its domain value.
// Nested vectors name their lambda parameters by depth: v1, v2, ...
func (f *fileBuilder) convert(expr string, t *resolve.Type, nullable bool, depth int) string {
	dot := "."
	if nullable {
		dot = "?."
	}

	switch t.Kind {
	case resolve.KindVector:
		if t.Elem.Kind != resolve.KindVector && t.Elem.IsLeaf() {
			return expr + dot + "toList()"
		}

		param := fmt.Sprintf("v%d", depth)

		return fmt.Sprintf("%s%smap { %s -> %s }", expr, dot, param, f.convert(param, t.Elem, false, depth+1))
	case resolve.KindReference:
		return f.modelCall(expr, t, dot)
	default:
		return expr
	}
}

// modelCall calls toModel() on a referenced value, importing the extension
// from the package that declares it. A reference to a single variant is
// narrowed with a cast, since only the group has a toModel().
func (f *fileBuilder) modelCall(expr string, t *resolve.Type, dot string) string {
	call := expr + dot + toModel + "()"

	s, ok := f.g.symbols.lookup(t.Name)
	if !ok {
		return call
	}

	f.addImport(common.JoinQualified(packageDecl(f.g.mapperPackage(s.Category)), toModel))

	if s.Variant == "" {
		return call
	}

	target := f.classRef(s)
	if dot == "?." {
		target += "?"
	}

	return "(" + call + " as " + target + ")"
}
