// Package pipeline runs the generator stages in dependency order: parse the
// schema, classify every return type, render the files.
//
// Nothing is written here; callers decide whether the files go to disk or
// are compared against an existing tree.
package pipeline
