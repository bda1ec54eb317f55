package naming

import (
	"regexp"
	"strings"
)

// capitalizedWord is one uppercase letter followed by lowercase letters or digits.
var capitalizedWord = regexp.MustCompile(`[A-Z][a-z0-9]*`)

// CapitalizedWords splits a type name into its capitalized words.
// Anything not covered by a word (a lowercase prefix, underscores) is dropped,
// and every letter of an acronym becomes its own word.
//
//	"ChatTypeBasicGroup" -> ["Chat", "Type", "Basic", "Group"]
//	"Int64Value" -> ["Int64", "Value"]
//	"HTTPUrl" -> ["H", "T", "T", "P", "Url"]
func CapitalizedWords(s string) []string {
	return capitalizedWord.FindAllString(s, -1)
}

// Singularize applies a light English singularization to a lowercase word:
// "...ies" becomes "...y", and a trailing "s" is dropped unless the word ends in
// "ss", "us" or "is", or is four characters or shorter.
func Singularize(w string) string {
	if len(w) > 3 && strings.HasSuffix(w, "ies") {
		return w[:len(w)-3] + "y"
	}

	if len(w) <= 4 || !strings.HasSuffix(w, "s") {
		return w
	}

	for _, keep := range []string{"ss", "us", "is"} {
		if strings.HasSuffix(w, keep) {
			return w
		}
	}

	return w[:len(w)-1]
}
