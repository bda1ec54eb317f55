package category

// Misc collects names no category claims.
const Misc = "misc"

// DefaultMinClusterSize is the smallest category that gets its own folder.
const DefaultMinClusterSize = 5

// Options configure BuildIndex.
type Options struct {
	// MinClusterSize is the minimum number of members of any category other
	// than Misc. Values below 1 are treated as 1.
	MinClusterSize int
	// Anchors pin a word (as tokenized, e.g. "Chat") to a category name.
	Anchors map[string]string
	// StopWords are ignored when tokenizing, compared case-insensitively.
	StopWords []string
}

// DefaultOptions returns the options tuned for the TDLib schema.
func DefaultOptions() Options {
	return Options{
		MinClusterSize: DefaultMinClusterSize,
		Anchors:        DefaultAnchors(),
		StopWords:      DefaultStopWords(),
	}
}

// DefaultAnchors returns a fresh copy of the built-in anchors.
func DefaultAnchors() map[string]string {
	return map[string]string{
		"Auth":          "auth",
		"Authorization": "auth",
		"Background":    "background",
		"Bot":           "bot",
		"Business":      "business",
		"Call":          "call",
		"Chat":          "chat",
		"Supergroup":    "chat",
		"File":          "file",
		"Game":          "game",
		"Gift":          "gift",
		"Input":         "input",
		"Message":       "message",
		"Notification":  "notification",
		"Passport":      "passport",
		"Payment":       "payment",
		"Invoice":       "payment",
		"Premium":       "premium",
		"Proxy":         "network",
		"Network":       "network",
		"Sticker":       "sticker",
		"Emoji":         "sticker",
		"Story":         "story",
		"User":          "user",
	}
}

// DefaultStopWords returns the words that carry structure rather than
// meaning in type names.
func DefaultStopWords() []string {
	return []string{
		"Type", "Info", "Infos", "Result", "Results", "State", "Status",
		"Settings", "Option", "Options", "Content", "Data", "Item",
		"List", "Full", "Of", "And", "For", "By", "To", "With", "In",
	}
}
