// Package analyze builds a declaration universe from Go source packages.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to turn
// exported structs into declarations. Markers come from two places:
//
//	//orm:entity                        doc directive on a type or method
//	Comments []*Comment `orm:"one_to_many,mappedBy=Post"`
//
// Mapping rules:
//   - *T is T; []T and [N]T are collections of T (type name "[]")
//   - methods with no parameters and one result are accessors
//   - func NewT(...) T or *T is a constructor of T; a struct without one has
//     the implicit zero-argument constructor
package analyze
