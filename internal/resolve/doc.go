// Package resolve maps schema wire types onto Kotlin types.
//
// A wire type is one of:
//   - a primitive (int32, int53, int64, double, string, bool, bytes, true);
//   - the opaque error type, passed through untouched;
//   - vector<X>, resolved recursively;
//   - a reference to another schema type.
//
// Nullability is not part of the wire type. It is inferred from the field
// documentation by IsNullable.
package resolve
