// Package naming provides identifier transforms shared by the parser, the
// classifier and the emitters.
//
// Key functions:
//   - Cap / SnakeToCamel: wire names to Kotlin class and property names
//   - KotlinIdent: escapes Kotlin hard keywords
//   - CapitalizedWords / Singularize: word extraction for category clustering
//   - Levenshtein / Suggest: "did you mean" hints for misspelled type names
package naming
