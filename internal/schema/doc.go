// Package schema parses TL-style interface definition text into constructor
// records.
//
// A schema is a sequence of definitions of the shape
//
//	name field1:Type1 field2:Type2 = ReturnType;
//
// optionally preceded by "//" documentation lines using @tags, grouped into a
// types section and a functions section by the ---types--- and ---functions---
// markers. Constructors sharing a return type form one closed group.
package schema
