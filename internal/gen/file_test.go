package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlgen/internal/category"
	"tlgen/internal/diagnostic"
	"tlgen/internal/schema"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()

	s, err := schema.Parse(chatSchema)
	require.NoError(t, err)

	ix := category.BuildIndex(s.ReturnTypes(), testIndexOptions())

	g := NewGenerator(DefaultGeneratorConfig(), ix)
	g.symbols, err = buildSymbols(s.Groups(), ix)
	require.NoError(t, err)

	return g
}

func TestFileBuilder_KotlinType(t *testing.T) {
	tests := []struct {
		wire     string
		want     string
		imported string
	}{
		{wire: "int32", want: "Int"},
		{wire: "int64", want: "Long"},
		{wire: "Bool", want: "Boolean"},
		{wire: "vector<vector<int53>>", want: "List<List<Long>>"},
		{wire: "error", want: "org.drinkless.tdlib.TdApi.Error"},
		{wire: "vector<error>", want: "List<@Contextual org.drinkless.tdlib.TdApi.Error>"},
		{wire: "file", want: "File", imported: "com.example.tdlib.file.File"},
		{wire: "vector<vector<file>>", want: "List<List<File>>", imported: "com.example.tdlib.file.File"},
		{wire: "ChatType", want: "ChatType", imported: "com.example.tdlib.chat.ChatType"},
		{wire: "chatTypePrivate", want: "ChatType.ChatTypePrivate", imported: "com.example.tdlib.chat.ChatType"},
	}

	holder := &schema.Constructor{Name: "holder"}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			g := newTestGenerator(t)
			f := g.newFile(g.domainPackage("misc"))

			typ, err := g.resolver.Resolve(tt.wire)
			require.NoError(t, err)

			assert.Equal(t, tt.want, f.kotlinType(typ, false, holder, "value"))
			assert.Empty(t, g.diagnostics.Warnings)

			if tt.imported == "" {
				assert.Empty(t, f.imports)
			} else {
				assert.Equal(t, map[string]bool{tt.imported: true}, f.imports)
			}
		})
	}
}

func TestFileBuilder_KotlinTypeSamePackage(t *testing.T) {
	g := newTestGenerator(t)
	f := g.newFile(g.domainPackage("chat"))

	typ, err := g.resolver.Resolve("vector<chatPhotoInfo>")
	require.NoError(t, err)

	assert.Equal(t, "List<ChatPhotoInfo>", f.kotlinType(typ, false, &schema.Constructor{Name: "holder"}, "photos"))
	assert.Empty(t, f.imports)
}

func TestFileBuilder_KotlinTypeUnknownReference(t *testing.T) {
	g := newTestGenerator(t)
	f := g.newFile(g.domainPackage("misc"))

	typ, err := g.resolver.Resolve("chatTyp")
	require.NoError(t, err)

	assert.Equal(t, "ChatTyp", f.kotlinType(typ, false, &schema.Constructor{Name: "holder"}, "kind"))
	require.Equal(t, 1, g.diagnostics.Count(diagnostic.CodeUnknownReference))

	warning := g.diagnostics.Warnings[0]
	assert.Equal(t, "holder", warning.Subject)
	assert.Equal(t, "kind", warning.Field)
	assert.Contains(t, warning.Suggestions, "ChatType")
}
