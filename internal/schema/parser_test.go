package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlgen/internal/diagnostic"
	"tlgen/internal/errors"
)

const sampleSchema = `double ? = Double;
string ? = String;

int32 = Int32;
int53 = Int53;
int64 = Int64;
bytes = Bytes;

boolFalse = Bool;
boolTrue = Bool;

vector {t:Type} # [ t ] = Vector t;

//@description An object of this type can be returned on every function call, in case of an error
//@code Error code @message Error message
error code:int32 message:string = Error;

//@description An object of this type is returned on a successful function call for certain functions
ok = Ok;

//@class ChatType @description Describes the type of chat

//@description An ordinary chat with a user @user_id User identifier
chatTypePrivate user_id:int53 = ChatType;

//@description A basic group @basic_group_id Basic group identifier
chatTypeBasicGroup basic_group_id:int53 = ChatType;

//@description Describes a photo of a chat
//@small A small (160x160) chat photo variant in JPEG format
//@big A big (640x640) chat photo variant in JPEG format; may be null
chatPhotoInfo flags:# small:file big:file = ChatPhotoInfo;

//@description A chat
//@id Chat unique identifier
//@type Type of the chat
//@title Chat title
//@photo Chat photo; may be null
chat id:int53 type:ChatType
  title:string
  photo:chatPhotoInfo = Chat;

---functions---

//@description Returns information about a chat by its identifier @chat_id Chat identifier
getChat chat_id:int53 = Chat;
`

func TestParse_Sample(t *testing.T) {
	s, err := Parse(sampleSchema)
	require.NoError(t, err)

	names := make([]string, 0, len(s.Types))
	for _, c := range s.Types {
		names = append(names, c.Name)
	}

	// builtins, "vector", "error" and "ok" are filtered out
	assert.Equal(t, []string{"chatTypePrivate", "chatTypeBasicGroup", "chatPhotoInfo", "chat"}, names)

	require.Len(t, s.Functions, 1)
	fn := s.Functions[0]
	assert.Equal(t, "getChat", fn.Name)
	assert.Equal(t, "Chat", fn.ReturnType)
	assert.True(t, fn.IsFunction)
	assert.Equal(t, "Returns information about a chat by its identifier", fn.Description)
	assert.Equal(t, "Chat identifier", fn.FieldDoc("chat_id"))

	assert.Equal(t, "Describes the type of chat", s.ClassDescriptions["ChatType"])
}

func TestParse_ConstructorDetails(t *testing.T) {
	s, err := Parse(sampleSchema)
	require.NoError(t, err)

	chat, ok := s.Lookup("chat")
	require.True(t, ok)

	assert.Equal(t, "Chat", chat.ReturnType)
	assert.Equal(t, "A chat", chat.Description)
	assert.False(t, chat.IsFunction)
	assert.Equal(t, []Field{
		{WireName: "id", WireType: "int53"},
		{WireName: "type", WireType: "ChatType"},
		{WireName: "title", WireType: "string"},
		{WireName: "photo", WireType: "chatPhotoInfo"},
	}, chat.Fields, "wrapped definition keeps source field order")
	assert.Equal(t, "Chat photo; may be null", chat.FieldDoc("photo"))
	assert.Equal(t, "", chat.FieldDoc("missing"))

	private, ok := s.Lookup("chatTypePrivate")
	require.True(t, ok)
	assert.Equal(t, "An ordinary chat with a user", private.Description,
		"a later @description overrides the @class line still in the buffer")
	assert.Equal(t, "User identifier", private.FieldDoc("user_id"))
}

func TestParse_FlagsFieldDropped(t *testing.T) {
	s, err := Parse(sampleSchema)
	require.NoError(t, err)

	photo, ok := s.Lookup("chatPhotoInfo")
	require.True(t, ok)

	assert.Equal(t, []Field{
		{WireName: "small", WireType: "file"},
		{WireName: "big", WireType: "file"},
	}, photo.Fields)
}

func TestParse_DiscardDiagnostics(t *testing.T) {
	s, err := Parse(sampleSchema)
	require.NoError(t, err)

	// Double, String, Int32, Int53, Int64, Bytes, Bool x2, vector, Error, Ok
	assert.Equal(t, 11, s.Diagnostics.Count(diagnostic.CodeDiscardedBuiltin))
	assert.True(t, s.Diagnostics.IsValid())
	assert.Empty(t, s.Diagnostics.Warnings)
}

func TestParse_Sections(t *testing.T) {
	text := `
---functions---
//@description Orphaned comment
---types---
plain id:int32 = Plain;
---functions---
getPlain id:int32 = Plain;
---types---
//@description Another
other id:int32 = Other;
`
	s, err := Parse(text)
	require.NoError(t, err)

	require.Len(t, s.Types, 2)
	require.Len(t, s.Functions, 1)
	assert.Equal(t, "", s.Types[0].Description, "section marker clears pending comments")
	assert.Equal(t, "getPlain", s.Functions[0].Name)
	assert.Equal(t, "Another", s.Types[1].Description)
}

func TestParse_CommentsSurviveBlankLines(t *testing.T) {
	text := `//@description Spaced out

//@value The value


spaced value:int32 = Spaced;
`
	s, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, s.Types, 1)

	assert.Equal(t, "Spaced out", s.Types[0].Description)
	assert.Equal(t, "The value", s.Types[0].FieldDoc("value"))
}

func TestParse_CommentsClearedAfterDefinition(t *testing.T) {
	text := `//@description First
first a:int32 = First;
second b:int32 = Second;
`
	s, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, s.Types, 2)

	assert.Equal(t, "First", s.Types[0].Description)
	assert.Equal(t, "", s.Types[1].Description)
	assert.Empty(t, s.Types[1].FieldDocs)
}

func TestParse_EmptyFieldBoundary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKept bool
	}{
		{
			name:     "no fields and no comments is discarded",
			text:     "emptyThing = EmptyThing;\n",
			wantKept: false,
		},
		{
			name:     "no fields with description is kept",
			text:     "//@description A unit value\nemptyThing = EmptyThing;\n",
			wantKept: true,
		},
		{
			name:     "no fields with tagless comment is kept",
			text:     "// just a note\nemptyThing = EmptyThing;\n",
			wantKept: true,
		},
		{
			name:     "fields without comments are kept",
			text:     "thing id:int32 = Thing;\n",
			wantKept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text)
			require.NoError(t, err)

			if tt.wantKept {
				require.Len(t, s.Types, 1)
				assert.Equal(t, 0, s.Diagnostics.Count(diagnostic.CodeDiscardedBare))

				return
			}

			assert.Empty(t, s.Types)
			assert.Equal(t, 1, s.Diagnostics.Count(diagnostic.CodeDiscardedBare))
		})
	}
}

func TestParse_ZeroFieldConstructor(t *testing.T) {
	s, err := Parse("//@description The chat is archived\nchatListArchive = ChatList;\n")
	require.NoError(t, err)
	require.Len(t, s.Types, 1)

	assert.Empty(t, s.Types[0].Fields)
	assert.Equal(t, "ChatList", s.Types[0].ReturnType)
}

func TestParse_LastEqualsWins(t *testing.T) {
	s, err := Parse("//@description x\nweird label:string = y = Target;\n")
	require.NoError(t, err)
	require.Len(t, s.Types, 1)

	assert.Equal(t, "Target", s.Types[0].ReturnType)
	assert.Equal(t, []Field{{WireName: "label", WireType: "string"}}, s.Types[0].Fields)
}

func TestParse_ReturnTypeCapitalized(t *testing.T) {
	s, err := Parse("//@description x\nthing id:int32 = thing ;;\n")
	require.NoError(t, err)
	require.Len(t, s.Types, 1)

	assert.Equal(t, "Thing", s.Types[0].ReturnType)
}

func TestParse_UnparsableNameIsTolerated(t *testing.T) {
	s, err := Parse("//@description x\n123abc id:int32 = Thing;\nthing id:int32 = Thing;\n")
	require.NoError(t, err)

	require.Len(t, s.Types, 1)
	assert.Equal(t, "thing", s.Types[0].Name)
	assert.Equal(t, 1, s.Diagnostics.Count(diagnostic.CodeDiscardedUnparsable))
}

func TestParse_VectorTypes(t *testing.T) {
	s, err := Parse("//@description x\nmatrix rows:vector<vector<int32>> names:Vector<string> = Matrix;\n")
	require.NoError(t, err)
	require.Len(t, s.Types, 1)

	assert.Equal(t, []Field{
		{WireName: "rows", WireType: "vector<vector<int32>>"},
		{WireName: "names", WireType: "Vector<string>"},
	}, s.Types[0].Fields)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMsg string
	}{
		{
			name:    "unterminated definition",
			text:    "chat id:int53 = Chat;\nuser id:int53\n  name:string = User\n",
			wantMsg: "line 2",
		},
		{
			name:    "missing equals",
			text:    "chat id:int53 Chat;\n",
			wantMsg: "has no '='",
		},
		{
			name:    "missing return type",
			text:    "chat id:int53 = ;\n",
			wantMsg: "no return type",
		},
		{
			name:    "unknown section marker",
			text:    "---methods---\n",
			wantMsg: "unknown section marker",
		},
		{
			name:    "duplicate constructor",
			text:    "chat id:int53 = Chat;\n---functions---\nchat id:int53 = Chat;\n",
			wantMsg: "already defined at line 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text)

			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, errors.ErrMalformedSchema))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_UnterminatedHasHint(t *testing.T) {
	_, err := Parse("chat id:int53 = Chat\n")
	require.Error(t, err)

	assert.Contains(t, errors.GetAllHints(err), "terminate every definition with ';'")
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse("")
	require.NoError(t, err)

	assert.Empty(t, s.Types)
	assert.Empty(t, s.Functions)
	assert.NotNil(t, s.ClassDescriptions)
}

func TestSchema_GroupsAndReturnTypes(t *testing.T) {
	s, err := Parse(sampleSchema)
	require.NoError(t, err)

	groups := s.Groups()
	require.Len(t, groups, 3)

	assert.Equal(t, "Chat", groups[0].ReturnType)
	assert.False(t, groups[0].IsSealed())
	assert.Equal(t, "ChatPhotoInfo", groups[1].ReturnType)
	assert.Equal(t, "ChatType", groups[2].ReturnType)
	assert.True(t, groups[2].IsSealed())
	assert.Equal(t, "chatTypePrivate", groups[2].Constructors[0].Name, "source order inside a group")

	assert.Equal(t, []string{"Chat", "ChatPhotoInfo", "ChatType"}, s.ReturnTypes())
}

func TestIsBuiltin(t *testing.T) {
	for _, name := range []string{"vector", "Vector", "INT32", "int53", "Int64", "double", "String", "Bool", "bytes", "True", "Error", "ok"} {
		assert.True(t, IsBuiltin(name), name)
	}

	for _, name := range []string{"Chat", "file", "vectors", ""} {
		assert.False(t, IsBuiltin(name), name)
	}
}
