// Package gen renders Kotlin sources from a parsed schema.
//
// Every return-type group becomes one domain file and, when enabled, one
// mapper file:
//   - a group with one constructor is a standalone data class (or data
//     object when it has no fields);
//   - a group with several constructors is a sealed interface with every
//     constructor nested as a variant, and its mapper is an exhaustive when
//     with a fatal else branch.
//
// Mappers are toModel() extension functions on the wire classes. Field
// conversion is recursive: primitives and the opaque error type are copied,
// vectors become lists, references call toModel().
//
// Output is produced in memory; WriteFiles and Check deal with disk.
package gen
