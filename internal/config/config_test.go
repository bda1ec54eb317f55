package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlgen/internal/category"
	"tlgen/internal/errors"
	"tlgen/internal/resolve"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestNew_Defaults(t *testing.T) {
	c := New()

	assert.Equal(t, "com.example.tdlib", c.Package)
	assert.Equal(t, "TdObject", c.BaseClass)
	assert.Equal(t, resolve.DefaultWireClass, c.WireClass)
	assert.Equal(t, LayoutCategorized, c.Layout)
	assert.True(t, c.Mappers)
	assert.True(t, c.EmitBase)
	assert.Equal(t, category.DefaultMinClusterSize, c.Classifier.MinClusterSize)
	assert.NoError(t, c.Validate())
}

func TestLoadFile_YAMLMergesOverDefaults(t *testing.T) {
	path := writeFile(t, "tlgen.yaml", `
package: org.acme.telegram
layout: split
mappers: false
classifier:
  minClusterSize: 3
  anchors:
    Reaction: message
  stopWords: [Extended]
`)

	c := New()
	require.NoError(t, c.LoadFile(path))

	assert.Equal(t, "org.acme.telegram", c.Package)
	assert.Equal(t, "TdObject", c.BaseClass, "unset keys keep their defaults")
	assert.Equal(t, LayoutSplit, c.Layout)
	assert.False(t, c.Mappers)
	assert.True(t, c.EmitBase)
	assert.Equal(t, 3, c.Classifier.MinClusterSize)
	assert.Equal(t, map[string]string{"Reaction": "message"}, c.Classifier.Anchors)
	assert.Equal(t, []string{"Extended"}, c.Classifier.StopWords)
	assert.NoError(t, c.Validate())
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeFile(t, "tlgen.json", `{"baseClass": "TelegramObject", "emitBase": false}`)

	c := New()
	require.NoError(t, c.LoadFile(path))

	assert.Equal(t, "TelegramObject", c.BaseClass)
	assert.False(t, c.EmitBase)
	assert.Equal(t, "com.example.tdlib", c.Package)
}

func TestLoadFile_Errors(t *testing.T) {
	c := New()

	err := c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")

	err = c.LoadFile(writeFile(t, "bad.yaml", "package: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML config")

	err = c.LoadFile(writeFile(t, "bad.json", "{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON config")
}

func TestParse(t *testing.T) {
	c := New()
	require.NoError(t, c.Parse([]byte("wireClass: com.example.Wire\n")))

	assert.Equal(t, "com.example.Wire", c.WireClass)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{
			name:    "empty package",
			mutate:  func(c *Config) { c.Package = "" },
			wantMsg: "Config.Package: is required",
		},
		{
			name:    "package with dash",
			mutate:  func(c *Config) { c.Package = "com.my-app.model" },
			wantMsg: `"com.my-app.model" is not a dotted Kotlin name`,
		},
		{
			name:    "package with keyword segment",
			mutate:  func(c *Config) { c.Package = "com.object.model" },
			wantMsg: "Config.Package",
		},
		{
			name:    "package with empty segment",
			mutate:  func(c *Config) { c.Package = "com..model" },
			wantMsg: "Config.Package",
		},
		{
			name:    "dotted base class",
			mutate:  func(c *Config) { c.BaseClass = "a.Base" },
			wantMsg: `"a.Base" is not a Kotlin identifier`,
		},
		{
			name:    "unknown layout",
			mutate:  func(c *Config) { c.Layout = "flat" },
			wantMsg: `must be one of [categorized split], got "flat"`,
		},
		{
			name:    "min cluster size",
			mutate:  func(c *Config) { c.Classifier.MinClusterSize = 0 },
			wantMsg: "Config.Classifier.MinClusterSize: must be at least 1, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	c := New()
	c.Package = ""
	c.Layout = "flat"

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Package")
	assert.Contains(t, err.Error(), "Config.Layout")
}

func TestClassifierOptions(t *testing.T) {
	c := New()
	c.Classifier.MinClusterSize = 7
	c.Classifier.Anchors = map[string]string{"Reaction": "message", "Chat": "conversation"}
	c.Classifier.StopWords = []string{"Extended"}

	opts := c.ClassifierOptions()

	assert.Equal(t, 7, opts.MinClusterSize)
	assert.Equal(t, "message", opts.Anchors["Reaction"])
	assert.Equal(t, "conversation", opts.Anchors["Chat"], "configured anchors override defaults")
	assert.Equal(t, "user", opts.Anchors["User"], "defaults are kept")
	assert.Contains(t, opts.StopWords, "Extended")
	assert.Contains(t, opts.StopWords, "Type")

	c.Classifier.ReplaceAnchors = true
	opts = c.ClassifierOptions()

	assert.Equal(t, c.Classifier.Anchors, opts.Anchors)
}
