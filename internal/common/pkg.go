package common

import "strings"

// JoinQualified joins the non-empty segments of a dotted name.
//
//	JoinQualified("com.example", "", "chat") -> "com.example.chat"
func JoinQualified(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ".")
}

// Qualifier returns the part of a dotted name before its last segment, or ""
// for a simple name.
func Qualifier(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}

	return ""
}
