package gen

import (
	"strings"
	"text/template"
)

// Header marks every generated file.
const Header = "// Code generated by tlgen. DO NOT EDIT."

type fileData struct {
	Package string
	Imports []string
	Body    string
}

var fileTemplate = template.Must(template.New("file").Parse(Header + `

package {{.Package}}
{{if .Imports}}
{{range .Imports}}import {{.}}
{{end}}{{end}}
{{.Body}}
`))

// kdocWidth is the column KDoc text is wrapped at.
const kdocWidth = 100

// kdoc renders a KDoc block: the description wrapped at kdocWidth, then the
// tag lines. It returns "" when there is nothing to document.
func kdoc(indent, description string, tags []string) string {
	description = escapeDoc(strings.TrimSpace(description))
	if description == "" && len(tags) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(indent + "/**\n")

	if description != "" {
		for _, line := range wrap(indent+" *", description, kdocWidth) {
			b.WriteString(line + "\n")
		}

		if len(tags) > 0 {
			b.WriteString(indent + " *\n")
		}
	}

	for _, tag := range tags {
		b.WriteString(indent + " * " + escapeDoc(tag) + "\n")
	}

	b.WriteString(indent + " */\n")

	return b.String()
}

// wrap fills words into lines that start with prefix and stay within width
// columns. A single word longer than the width gets a line of its own.
func wrap(prefix, text string, width int) []string {
	var lines []string

	line := prefix
	for _, word := range strings.Fields(text) {
		if line != prefix && len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = prefix
		}

		line += " " + word
	}

	return append(lines, line)
}

// escapeDoc keeps documentation text from closing the comment early.
func escapeDoc(s string) string {
	return strings.ReplaceAll(s, "*/", "*&#47;")
}
