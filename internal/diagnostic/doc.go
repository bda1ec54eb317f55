// Package diagnostic provides structured findings collected while parsing a
// schema and generating code from it.
//
// Findings that do not abort a run are recorded here instead of being
// returned as errors:
//   - Definitions the parser discards on purpose (builtins, bare re-declarations)
//   - Field types that reference no type defined by the schema
//   - Wire names that had to be escaped in the target language
package diagnostic
