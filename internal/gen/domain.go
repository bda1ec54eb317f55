package gen

import (
	"fmt"
	"strings"

	"tlgen/internal/diagnostic"
	"tlgen/internal/errors"
	"tlgen/internal/naming"
	"tlgen/internal/resolve"
	"tlgen/internal/schema"
)

const (
	importSerializable = "kotlinx.serialization.Serializable"
	importSerialName   = "kotlinx.serialization.SerialName"
	importContextual   = "kotlinx.serialization.Contextual"
)

const indentUnit = "    "

// property is one constructor field as a Kotlin property.
type property struct {
	WireName string
	Ident    string
	Type     string
	Nullable bool
	// Contextual marks a top-level opaque value, which has no serializer.
	Contextual bool
	Doc        string
}

func (g *Generator) domainFile(grp schema.Group, cat, classDoc string) (GeneratedFile, error) {
	f := g.newFile(g.domainPackage(cat))
	f.addImport(importSerializable)
	f.addImport(importSerialName)
	f.addImport(g.baseClassRef())

	var (
		body  string
		class string
		err   error
	)

	if grp.IsSealed() {
		class = grp.ReturnType
		body, err = g.sealedBody(f, grp, classDoc)
	} else {
		c := grp.Constructors[0]
		class = naming.Cap(c.Name)
		body, err = g.classBody(f, &c, "", g.config.BaseClass)
	}

	if err != nil {
		return GeneratedFile{}, err
	}

	content, err := f.render(body)
	if err != nil {
		return GeneratedFile{}, err
	}

	return GeneratedFile{
		Path:     g.domainPath(cat, class),
		Content:  content,
		Category: cat,
		Kind:     FileDomain,
	}, nil
}

func (g *Generator) sealedBody(f *fileBuilder, grp schema.Group, classDoc string) (string, error) {
	if err := checkVariants(grp); err != nil {
		return "", err
	}

	for _, c := range grp.Constructors {
		f.shadowed[naming.Cap(c.Name)] = true
	}

	var b strings.Builder

	b.WriteString(kdoc("", classDoc, nil))
	b.WriteString("@Serializable\n")
	fmt.Fprintf(&b, "@SerialName(value = %q)\n", grp.ReturnType)
	fmt.Fprintf(&b, "public sealed interface %s : %s {\n", grp.ReturnType, g.config.BaseClass)

	for i := range grp.Constructors {
		variant, err := g.classBody(f, &grp.Constructors[i], indentUnit, grp.ReturnType)
		if err != nil {
			return "", err
		}

		b.WriteString("\n" + variant + "\n")
	}

	b.WriteString("}")

	return b.String(), nil
}

// classBody renders one constructor as a data class, or a data object when
// it has no fields. The result has no trailing newline.
func (g *Generator) classBody(f *fileBuilder, c *schema.Constructor, indent, parent string) (string, error) {
	props, err := g.properties(f, c)
	if err != nil {
		return "", err
	}

	tags := make([]string, 0, len(props))
	for _, p := range props {
		// KDoc names the parameter without back-quotes
		if p.Doc != "" {
			tags = append(tags, "@property "+naming.SnakeToCamel(p.WireName)+" "+p.Doc)
		}
	}

	name := naming.Cap(c.Name)

	var b strings.Builder

	b.WriteString(kdoc(indent, c.Description, tags))
	b.WriteString(indent + "@Serializable\n")
	fmt.Fprintf(&b, "%s@SerialName(value = %q)\n", indent, c.Name)

	if len(props) == 0 {
		fmt.Fprintf(&b, "%spublic data object %s : %s", indent, name, parent)

		return b.String(), nil
	}

	fmt.Fprintf(&b, "%spublic data class %s(\n", indent, name)

	inner := indent + indentUnit
	for i, p := range props {
		fmt.Fprintf(&b, "%s@SerialName(value = %q)\n", inner, p.WireName)

		if p.Contextual {
			b.WriteString(inner + "@Contextual\n")
		}

		fmt.Fprintf(&b, "%spublic val %s: %s", inner, p.Ident, p.Type)

		if p.Nullable {
			b.WriteString(" = null")
		}

		if i < len(props)-1 {
			b.WriteString(",")
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s) : %s", indent, parent)

	return b.String(), nil
}

func (g *Generator) properties(f *fileBuilder, c *schema.Constructor) ([]property, error) {
	props := make([]property, 0, len(c.Fields))

	for _, field := range c.Fields {
		t, err := g.resolver.Resolve(field.WireType)
		if err != nil {
			return nil, errors.Wrapf(err, "constructor %s field %s", c.Name, field.WireName)
		}

		doc := c.FieldDoc(field.WireName)
		nullable := resolve.IsNullable(doc)

		typ := f.kotlinType(t, false, c, field.WireName)
		if nullable {
			typ += "?"
		}

		if t.Innermost().IsOpaque() {
			f.addImport(importContextual)
		}

		props = append(props, property{
			WireName:   field.WireName,
			Ident:      g.fieldIdent(c, field.WireName),
			Type:       typ,
			Nullable:   nullable,
			Contextual: t.IsOpaque(),
			Doc:        doc,
		})
	}

	return props, nil
}

// fieldIdent is the Kotlin identifier of a wire field. Keywords are
// back-quoted and reported.
func (g *Generator) fieldIdent(c *schema.Constructor, wireName string) string {
	ident := fieldName(wireName)
	if ident == naming.SnakeToCamel(wireName) {
		return ident
	}

	g.diagnostics.Add(diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticInfo,
		Code:     diagnostic.CodeEscapedIdentifier,
		Message:  fmt.Sprintf("field %s is a Kotlin keyword and is back-quoted", ident),
		Subject:  c.Name,
		Field:    wireName,
		Line:     c.Line,
	})

	return ident
}

func fieldName(wireName string) string {
	return naming.KotlinIdent(naming.SnakeToCamel(wireName))
}

func (g *Generator) baseFile() GeneratedFile {
	f := g.newFile(g.basePackage())
	body := kdoc("", "Supertype of every generated model.", nil) +
		"public interface " + g.config.BaseClass

	// the frame template cannot fail on static input
	content, _ := f.render(body)

	return GeneratedFile{
		Path:    g.basePath(),
		Content: content,
		Kind:    FileBase,
	}
}
