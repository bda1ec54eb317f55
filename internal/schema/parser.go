package schema

import (
	"fmt"
	"regexp"
	"strings"

	"tlgen/internal/diagnostic"
	"tlgen/internal/errors"
	"tlgen/internal/naming"
)

// Section markers.
const (
	TypesMarker     = "---types---"
	FunctionsMarker = "---functions---"
)

// builtinTypes are wire primitives and protocol markers, never domain types.
// Compared case-insensitively.
var builtinTypes = map[string]bool{
	"vector": true,
	"int32":  true,
	"int53":  true,
	"int64":  true,
	"double": true,
	"string": true,
	"bool":   true,
	"bytes":  true,
	"true":   true,
	"error":  true,
	"ok":     true,
}

// IsBuiltin reports whether name is a builtin wire type, in any letter case.
func IsBuiltin(name string) bool {
	return builtinTypes[strings.ToLower(name)]
}

var (
	classPattern  = regexp.MustCompile(`//@class\s+(\w+)\s+@description\s+(.+)`)
	markerPattern = regexp.MustCompile(`^---\w+---$`)
	namePattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*`)
	fieldPattern  = regexp.MustCompile(`(\w+):([\w.<>]+)`)
)

// flagsField is the bitmask field of the wire format; it is never part of a
// domain model.
const flagsField = "flags"

type parser struct {
	lines       []string
	pos         int
	isFunction  bool
	comments    []string
	schema      *Schema
	definedAt   map[string]int
	diagnostics diagnostic.Diagnostics
}

// Parse parses schema text. Errors wrap errors.ErrMalformedSchema; definitions
// that are filtered on purpose (builtins, unparsable stray lines, bare
// re-declarations) are recorded in Schema.Diagnostics instead.
func Parse(text string) (*Schema, error) {
	p := &parser{
		lines: strings.Split(text, "\n"),
		schema: &Schema{
			ClassDescriptions: make(map[string]string),
		},
		definedAt: make(map[string]int),
	}

	p.collectClassDescriptions()

	if err := p.run(); err != nil {
		return nil, err
	}

	p.schema.Diagnostics = p.diagnostics

	return p.schema, nil
}

// collectClassDescriptions scans every line for //@class markers without
// touching the main pass state.
func (p *parser) collectClassDescriptions() {
	for _, line := range p.lines {
		if m := classPattern.FindStringSubmatch(line); m != nil {
			p.schema.ClassDescriptions[m[1]] = strings.TrimSpace(m[2])
		}
	}
}

func (p *parser) run() error {
	for p.pos < len(p.lines) {
		trimmed := strings.TrimSpace(p.lines[p.pos])

		switch {
		case trimmed == FunctionsMarker:
			p.isFunction = true
			p.comments = nil
			p.pos++

			continue
		case trimmed == TypesMarker:
			p.isFunction = false
			p.comments = nil
			p.pos++

			continue
		case markerPattern.MatchString(trimmed):
			err := errors.Wrapf(errors.ErrMalformedSchema,
				"line %d: unknown section marker %q", p.pos+1, trimmed)

			return errors.WithHintf(err, "only %s and %s are recognized", TypesMarker, FunctionsMarker)
		case trimmed == "":
			p.pos++

			continue
		case strings.HasPrefix(trimmed, "//"):
			p.comments = append(p.comments, trimmed)
			p.pos++

			continue
		}

		line := p.pos + 1

		defn, err := p.readDefinition()
		if err != nil {
			return err
		}

		if err := p.addDefinition(defn, line); err != nil {
			return err
		}

		p.comments = nil
	}

	return nil
}

// readDefinition joins lines from the cursor up to and including the first
// line ending with ';'.
func (p *parser) readDefinition() (string, error) {
	start := p.pos + 1

	var parts []string
	for p.pos < len(p.lines) {
		l := strings.TrimSpace(p.lines[p.pos])
		parts = append(parts, l)
		p.pos++

		if strings.HasSuffix(l, ";") {
			return strings.Join(parts, " "), nil
		}
	}

	err := errors.Wrapf(errors.ErrMalformedSchema,
		"line %d: definition %q is not terminated before end of input", start, parts[0])

	return "", errors.WithHint(err, "terminate every definition with ';'")
}

func (p *parser) addDefinition(defn string, line int) error {
	c, err := p.parseConstructor(defn, line)
	if err != nil || c == nil {
		return err
	}

	if prev, dup := p.definedAt[c.Name]; dup {
		return errors.Wrapf(errors.ErrMalformedSchema,
			"line %d: constructor %q already defined at line %d", line, c.Name, prev)
	}

	p.definedAt[c.Name] = line

	if c.IsFunction {
		p.schema.Functions = append(p.schema.Functions, *c)
	} else {
		p.schema.Types = append(p.schema.Types, *c)
	}

	return nil
}

// parseConstructor parses "<lhs> = <ReturnType>;". A nil constructor with a
// nil error means the definition was discarded on purpose.
func (p *parser) parseConstructor(defn string, line int) (*Constructor, error) {
	eq := strings.LastIndexByte(defn, '=')
	if eq < 0 {
		err := errors.Wrapf(errors.ErrMalformedSchema, "line %d: definition %q has no '='", line, defn)

		return nil, errors.WithHint(err, "definitions have the shape: name field:Type = ReturnType;")
	}

	returnType := strings.TrimSpace(defn[eq+1:])
	returnType = strings.TrimSpace(strings.TrimRight(returnType, ";"))
	returnType = naming.Cap(returnType)

	if returnType == "" {
		return nil, errors.Wrapf(errors.ErrMalformedSchema, "line %d: definition %q has no return type", line, defn)
	}

	if IsBuiltin(returnType) {
		p.discard(diagnostic.CodeDiscardedBuiltin, line, returnType,
			fmt.Sprintf("return type %s is a builtin wire type", returnType))

		return nil, nil
	}

	lhs := strings.TrimSpace(defn[:eq])

	name := namePattern.FindString(lhs)
	if name == "" {
		p.discard(diagnostic.CodeDiscardedUnparsable, line, "",
			fmt.Sprintf("no constructor name in %q", defn))

		return nil, nil
	}

	if IsBuiltin(name) {
		p.discard(diagnostic.CodeDiscardedBuiltin, line, name,
			fmt.Sprintf("constructor %s re-declares a builtin", name))

		return nil, nil
	}

	fieldsText := strings.TrimSpace(lhs[len(name):])
	description, fieldDocs := ParseComments(p.comments)

	if fieldsText == "" && description == "" && len(p.comments) == 0 {
		p.discard(diagnostic.CodeDiscardedBare, line, name,
			fmt.Sprintf("constructor %s has no fields and no documentation", name))

		return nil, nil
	}

	return &Constructor{
		Name:        name,
		ReturnType:  returnType,
		Description: description,
		FieldDocs:   fieldDocs,
		Fields:      parseFields(fieldsText),
		IsFunction:  p.isFunction,
		Line:        line,
	}, nil
}

func (p *parser) discard(code string, line int, subject, message string) {
	p.diagnostics.Add(diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticInfo,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Line:     line,
	})
}

// parseFields extracts name:type pairs left to right, dropping "flags".
func parseFields(text string) []Field {
	var fields []Field

	for _, m := range fieldPattern.FindAllStringSubmatch(text, -1) {
		if m[1] == flagsField {
			continue
		}

		fields = append(fields, Field{WireName: m[1], WireType: m[2]})
	}

	return fields
}
