package category

import (
	"sort"
	"strings"

	"tlgen/internal/naming"
)

// Index is the read-only result of BuildIndex.
type Index struct {
	minClusterSize int
	anchors        map[string]string
	stopWords      map[string]bool

	freq        map[string]int
	assignments map[string]string
	allowed     map[string]bool
	majority    map[string]string
}

// Tokenize splits a name into its capitalized words, in order.
//
//	"ChatTypeBasicGroup" -> [Chat Type Basic Group]
func Tokenize(name string) []string {
	return naming.CapitalizedWords(name)
}

// BuildIndex classifies every name. Duplicates are ignored and the input
// order does not matter.
func BuildIndex(names []string, opts Options) *Index {
	ix := newIndex(opts)

	unique := dedupe(names)

	tokens := make(map[string][]string, len(unique))
	for _, name := range unique {
		toks := ix.tokens(name)
		tokens[name] = toks

		for _, tok := range toks {
			ix.freq[tok]++
		}
	}

	provisional := make(map[string]string, len(unique))
	sizes := make(map[string]int)

	for _, name := range unique {
		cat := ix.provisional(tokens[name])
		provisional[name] = cat
		sizes[cat]++
	}

	for cat, n := range sizes {
		if cat != Misc && n >= ix.minClusterSize {
			ix.allowed[cat] = true
		}
	}

	ix.buildMajority(unique, tokens, provisional)

	for _, name := range unique {
		cat := provisional[name]
		if !ix.allowed[cat] {
			cat = ix.lookup(tokens[name])
		}

		ix.assignments[name] = cat
	}

	return ix
}

func newIndex(opts Options) *Index {
	minSize := opts.MinClusterSize
	if minSize < 1 {
		minSize = 1
	}

	anchors := make(map[string]string, len(opts.Anchors))
	for word, cat := range opts.Anchors {
		anchors[word] = cat
	}

	stop := make(map[string]bool, len(opts.StopWords))
	for _, w := range opts.StopWords {
		stop[strings.ToLower(w)] = true
	}

	return &Index{
		minClusterSize: minSize,
		anchors:        anchors,
		stopWords:      stop,
		freq:           make(map[string]int),
		assignments:    make(map[string]string),
		allowed:        make(map[string]bool),
		majority:       make(map[string]string),
	}
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))

	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	sort.Strings(out)

	return out
}

func (ix *Index) tokens(name string) []string {
	var out []string
	for _, tok := range Tokenize(name) {
		if !ix.stopWords[strings.ToLower(tok)] {
			out = append(out, tok)
		}
	}

	return out
}

// byFrequency returns the tokens stably sorted by ascending global frequency.
func (ix *Index) byFrequency(tokens []string) []string {
	sorted := append([]string(nil), tokens...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ix.freq[sorted[i]] < ix.freq[sorted[j]]
	})

	return sorted
}

func (ix *Index) provisional(tokens []string) string {
	if len(tokens) == 0 {
		return Misc
	}

	sorted := ix.byFrequency(tokens)

	for _, tok := range sorted {
		if cat, ok := ix.anchors[tok]; ok {
			return cat
		}
	}

	for _, tok := range sorted {
		if ix.freq[tok] >= ix.minClusterSize {
			return wordCategory(tok)
		}
	}

	// no word is common enough: keep the name next to its dominant word
	return wordCategory(sorted[len(sorted)-1])
}

func wordCategory(tok string) string {
	return naming.Singularize(strings.ToLower(tok))
}

// buildMajority maps every word seen in an allowed category to the allowed
// category it occurs in most. Ties go to the smallest category name.
func (ix *Index) buildMajority(names []string, tokens map[string][]string, provisional map[string]string) {
	votes := make(map[string]map[string]int)

	for _, name := range names {
		cat := provisional[name]
		if !ix.allowed[cat] {
			continue
		}

		for _, tok := range tokens[name] {
			if votes[tok] == nil {
				votes[tok] = make(map[string]int)
			}

			votes[tok][cat]++
		}
	}

	for word, perCat := range votes {
		best, bestN := "", 0
		for cat, n := range perCat {
			if n > bestN || (n == bestN && cat < best) {
				best, bestN = cat, n
			}
		}

		ix.majority[word] = best
	}
}

// lookup is the pass 2 rule: the first word, rarest first, that is anchored
// to an allowed category or has a majority entry.
func (ix *Index) lookup(tokens []string) string {
	for _, tok := range ix.byFrequency(tokens) {
		if cat, ok := ix.anchors[tok]; ok && ix.allowed[cat] {
			return cat
		}

		if cat, ok := ix.majority[tok]; ok {
			return cat
		}
	}

	return Misc
}

// Get returns the category of name. Names outside the build set are
// classified against the existing categories only and never create one.
func (ix *Index) Get(name string) string {
	if cat, ok := ix.assignments[name]; ok {
		return cat
	}

	return ix.lookup(ix.tokens(name))
}

// Contains reports whether name was part of the build set.
func (ix *Index) Contains(name string) bool {
	_, ok := ix.assignments[name]

	return ok
}

// Len is the number of distinct names in the build set.
func (ix *Index) Len() int {
	return len(ix.assignments)
}

// Frequency is the global count of word over the build set.
func (ix *Index) Frequency(word string) int {
	return ix.freq[word]
}

// MinClusterSize is the effective threshold the index was built with.
func (ix *Index) MinClusterSize() int {
	return ix.minClusterSize
}

// Assignments returns a copy of the name -> category map.
func (ix *Index) Assignments() map[string]string {
	out := make(map[string]string, len(ix.assignments))
	for name, cat := range ix.assignments {
		out[name] = cat
	}

	return out
}

// Categories returns category -> sorted member names.
func (ix *Index) Categories() map[string][]string {
	out := make(map[string][]string)
	for name, cat := range ix.assignments {
		out[cat] = append(out[cat], name)
	}

	for _, members := range out {
		sort.Strings(members)
	}

	return out
}

// CategoryNames returns the categories in use, sorted.
func (ix *Index) CategoryNames() []string {
	cats := ix.Categories()

	names := make([]string, 0, len(cats))
	for cat := range cats {
		names = append(names, cat)
	}

	sort.Strings(names)

	return names
}
