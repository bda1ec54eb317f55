package gen

import (
	"strings"

	"tlgen/internal/common"
	"tlgen/internal/config"
	"tlgen/internal/naming"
)

// Directories of the split layout.
const (
	domainDir  = "domain"
	mappingDir = "mapping"
)

const (
	sourceExt    = ".kt"
	mapperSuffix = "Mapper"
)

func (g *Generator) split() bool {
	return g.config.Layout == config.LayoutSplit
}

// domainPackage is the Kotlin package of domain classes in cat.
func (g *Generator) domainPackage(cat string) string {
	if g.split() {
		return common.JoinQualified(g.config.Package, domainDir)
	}

	return common.JoinQualified(g.config.Package, cat)
}

// mapperPackage is the Kotlin package of the toModel() functions for cat.
func (g *Generator) mapperPackage(cat string) string {
	if g.split() {
		return common.JoinQualified(g.config.Package, mappingDir)
	}

	return common.JoinQualified(g.config.Package, cat)
}

func (g *Generator) basePackage() string {
	if g.split() {
		return common.JoinQualified(g.config.Package, domainDir)
	}

	return g.config.Package
}

func (g *Generator) domainPath(cat, class string) string {
	if g.split() {
		return domainDir + "/" + class + sourceExt
	}

	return cat + "/" + class + sourceExt
}

func (g *Generator) mapperPath(cat, class string) string {
	if g.split() {
		return mappingDir + "/" + class + mapperSuffix + sourceExt
	}

	return cat + "/" + class + mapperSuffix + sourceExt
}

func (g *Generator) basePath() string {
	if g.split() {
		return domainDir + "/" + g.config.BaseClass + sourceExt
	}

	return g.config.BaseClass + sourceExt
}

// baseClassRef is the qualified name of the base interface.
func (g *Generator) baseClassRef() string {
	return common.JoinQualified(packageDecl(g.basePackage()), g.config.BaseClass)
}

// wireName is how generated code refers to the wire holder class: its simple
// name, imported once per file.
func (g *Generator) wireName() string {
	return naming.LastSegment(g.resolver.WireClass)
}

// packageDecl back-quotes the segments of a package name that are Kotlin
// keywords.
func packageDecl(pkg string) string {
	parts := strings.Split(pkg, ".")
	for i, p := range parts {
		parts[i] = naming.KotlinIdent(p)
	}

	return strings.Join(parts, ".")
}
