// Package config holds the generator settings and loads them from YAML or
// JSON files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"tlgen/internal/category"
	"tlgen/internal/errors"
	"tlgen/internal/resolve"
)

// Layout selects the output directory structure.
type Layout string

const (
	// LayoutCategorized writes <category>/<Class>.kt next to
	// <category>/<Class>Mapper.kt.
	LayoutCategorized Layout = "categorized"
	// LayoutSplit writes domain/<Class>.kt and mapping/<Class>Mapper.kt.
	LayoutSplit Layout = "split"
)

// Config is the complete generator configuration.
type Config struct {
	// Package is the root Kotlin package, e.g. "com.example.tdlib".
	Package string `yaml:"package" json:"package" validate:"required,kotlinpkg"`

	// BaseClass is the interface every generated model implements.
	BaseClass string `yaml:"baseClass" json:"baseClass" validate:"required,kotlinident"`

	// WireClass nests the wire classes the adapters convert from.
	WireClass string `yaml:"wireClass" json:"wireClass" validate:"required,kotlinpkg"`

	Layout Layout `yaml:"layout" json:"layout" validate:"oneof=categorized split"`

	// Mappers enables the toModel() adapter files.
	Mappers bool `yaml:"mappers" json:"mappers"`

	// EmitBase writes the BaseClass interface itself.
	EmitBase bool `yaml:"emitBase" json:"emitBase"`

	Classifier ClassifierConfig `yaml:"classifier" json:"classifier"`
}

// ClassifierConfig tunes the category classifier.
type ClassifierConfig struct {
	MinClusterSize int               `yaml:"minClusterSize" json:"minClusterSize" validate:"gte=1"`
	Anchors        map[string]string `yaml:"anchors" json:"anchors"`
	StopWords      []string          `yaml:"stopWords" json:"stopWords"`
	// ReplaceAnchors drops the built-in anchors instead of extending them.
	ReplaceAnchors bool `yaml:"replaceAnchors" json:"replaceAnchors"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Package:   "com.example.tdlib",
		BaseClass: "TdObject",
		WireClass: resolve.DefaultWireClass,
		Layout:    LayoutCategorized,
		Mappers:   true,
		EmitBase:  true,
		Classifier: ClassifierConfig{
			MinClusterSize: category.DefaultMinClusterSize,
		},
	}
}

// fileConfig mirrors Config with optional fields, so a file only overrides
// what it sets.
type fileConfig struct {
	Package    *string        `yaml:"package" json:"package"`
	BaseClass  *string        `yaml:"baseClass" json:"baseClass"`
	WireClass  *string        `yaml:"wireClass" json:"wireClass"`
	Layout     *Layout        `yaml:"layout" json:"layout"`
	Mappers    *bool          `yaml:"mappers" json:"mappers"`
	EmitBase   *bool          `yaml:"emitBase" json:"emitBase"`
	Classifier fileClassifier `yaml:"classifier" json:"classifier"`
}

type fileClassifier struct {
	MinClusterSize *int              `yaml:"minClusterSize" json:"minClusterSize"`
	Anchors        map[string]string `yaml:"anchors" json:"anchors"`
	StopWords      []string          `yaml:"stopWords" json:"stopWords"`
	ReplaceAnchors *bool             `yaml:"replaceAnchors" json:"replaceAnchors"`
}

// LoadFile reads a configuration file (YAML or JSON by extension) and merges
// it over c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config file %s", path)
	}

	var loaded fileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return errors.Wrapf(err, "parsing JSON config %s", path)
		}
	default:
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return errors.Wrapf(err, "parsing YAML config %s", path)
		}
	}

	c.merge(&loaded)

	return nil
}

// Parse merges YAML data over c.
func (c *Config) Parse(data []byte) error {
	var loaded fileConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return errors.Wrap(err, "parsing YAML config")
	}

	c.merge(&loaded)

	return nil
}

func (c *Config) merge(loaded *fileConfig) {
	setIf(&c.Package, loaded.Package)
	setIf(&c.BaseClass, loaded.BaseClass)
	setIf(&c.WireClass, loaded.WireClass)
	setIf(&c.Layout, loaded.Layout)
	setIf(&c.Mappers, loaded.Mappers)
	setIf(&c.EmitBase, loaded.EmitBase)
	setIf(&c.Classifier.MinClusterSize, loaded.Classifier.MinClusterSize)
	setIf(&c.Classifier.ReplaceAnchors, loaded.Classifier.ReplaceAnchors)

	if len(loaded.Classifier.Anchors) > 0 {
		if c.Classifier.Anchors == nil {
			c.Classifier.Anchors = make(map[string]string, len(loaded.Classifier.Anchors))
		}

		for word, cat := range loaded.Classifier.Anchors {
			c.Classifier.Anchors[word] = cat
		}
	}

	c.Classifier.StopWords = append(c.Classifier.StopWords, loaded.Classifier.StopWords...)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ClassifierOptions builds the classifier options: the defaults extended (or
// replaced) by the configured anchors, plus the configured stop words.
func (c *Config) ClassifierOptions() category.Options {
	opts := category.DefaultOptions()
	opts.MinClusterSize = c.Classifier.MinClusterSize

	if c.Classifier.ReplaceAnchors {
		opts.Anchors = make(map[string]string, len(c.Classifier.Anchors))
	}

	for word, cat := range c.Classifier.Anchors {
		opts.Anchors[word] = cat
	}

	opts.StopWords = append(opts.StopWords, c.Classifier.StopWords...)

	return opts
}
