package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tlgen/internal/category"
	"tlgen/internal/config"
	"tlgen/internal/schema"
)

const chatSchema = `
//@description A file
//@id Unique file identifier
//@size File size; 0 if unknown
file id:int32 size:int53 = File;

//@class ChatType @description Describes the type of a chat

//@description An ordinary chat with a user @user_id User identifier
chatTypePrivate user_id:int53 = ChatType;

//@description A secret chat
chatTypeSecret = ChatType;

//@description Describes a chat photo
//@small A small chat photo variant
//@big A big chat photo variant; may be null
chatPhotoInfo small:file big:file = ChatPhotoInfo;

//@description A chat
//@id Chat identifier
//@type Type of the chat
//@photo Chat photo; may be null
//@member_ids Identifiers of members
//@matrix Nested numbers
//@photos Photo variants
//@error Last error; may be null
//@errors All errors
//@in Keyword-named field
//@last_private The private type of the chat
chat id:int53 type:ChatType photo:chatPhotoInfo member_ids:vector<int53> matrix:vector<vector<int32>>
  photos:vector<vector<file>> error:error errors:vector<error> in:Bool last_private:chatTypePrivate = Chat;

---functions---

//@description Returns a chat @chat_id Chat identifier
getChat chat_id:int53 = Chat;
`

func testIndexOptions() category.Options {
	return category.Options{
		MinClusterSize: 1,
		Anchors:        map[string]string{"Chat": "chat", "File": "file"},
	}
}

func generate(t *testing.T, text string, mutate func(c *GeneratorConfig)) *Result {
	t.Helper()

	s, err := schema.Parse(text)
	require.NoError(t, err)

	cfg := DefaultGeneratorConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	ix := category.BuildIndex(s.ReturnTypes(), testIndexOptions())

	res, err := NewGenerator(cfg, ix).Generate(s)
	require.NoError(t, err)

	return res
}

func fileContent(t *testing.T, res *Result, path string) string {
	t.Helper()

	for _, f := range res.Files {
		if f.Path == path {
			return string(f.Content)
		}
	}

	paths := make([]string, 0, len(res.Files))
	for _, f := range res.Files {
		paths = append(paths, f.Path)
	}

	require.Failf(t, "file not generated", "%s not in %v", path, paths)

	return ""
}

func splitLayout(c *GeneratorConfig) {
	c.Layout = config.LayoutSplit
}
