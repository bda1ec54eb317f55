package schema

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`@(\w+)`)

// ParseComments splits buffered documentation lines into the constructor
// description and per-field docs.
//
// The lines are joined with single spaces and cut at every @tag. Text before
// the first tag is ignored. @description sets the description (the last one
// wins), @class is skipped, and any other tag names a field whose doc is the
// text up to the next tag.
func ParseComments(lines []string) (string, map[string]string) {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = strings.TrimSpace(strings.TrimLeft(l, "/"))
	}

	joined := strings.Join(parts, " ")

	description := ""
	fieldDocs := make(map[string]string)

	locs := tagPattern.FindAllStringSubmatchIndex(joined, -1)
	for i, loc := range locs {
		tag := joined[loc[2]:loc[3]]

		end := len(joined)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		value := strings.TrimSpace(joined[loc[1]:end])

		switch tag {
		case "description":
			description = value
		case "class":
		default:
			fieldDocs[tag] = value
		}
	}

	return description, fieldDocs
}
