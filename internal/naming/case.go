package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cap upper-cases the first letter of s and leaves the rest untouched.
//
//	"chatTypePrivate" -> "ChatTypePrivate"
func Cap(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// SnakeToCamel converts a snake_case wire name to camelCase. The first part is
// kept verbatim and every following part is capitalized:
//
//	"user_id" -> "userId"
//	"is_outgoing" -> "isOutgoing"
//	"id" -> "id"
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(parts[0])

	for _, p := range parts[1:] {
		b.WriteString(Cap(p))
	}

	return b.String()
}

// kotlinHardKeywords cannot be used as identifiers without back-quotes.
var kotlinHardKeywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true,
	"else": true, "false": true, "for": true, "fun": true, "if": true,
	"in": true, "interface": true, "is": true, "null": true, "object": true,
	"package": true, "return": true, "super": true, "this": true, "throw": true,
	"true": true, "try": true, "typealias": true, "typeof": true, "val": true,
	"var": true, "when": true, "while": true,
}

// IsKotlinKeyword reports whether s is a Kotlin hard keyword.
func IsKotlinKeyword(s string) bool {
	return kotlinHardKeywords[s]
}

// KotlinIdent returns s, back-quoted when it is a Kotlin hard keyword.
func KotlinIdent(s string) string {
	if kotlinHardKeywords[s] {
		return "`" + s + "`"
	}

	return s
}

// LastSegment returns the text after the last dot of a qualified name.
//
//	"org.drinkless.tdlib.TdApi" -> "TdApi"
func LastSegment(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}

	return qualified
}
