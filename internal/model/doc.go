// Package model is the read-only declaration model the validator inspects.
//
// A Universe holds Declarations (class-like units) with their constructors,
// Properties (fields and accessors) and Annotation instances. TypeRef is a
// resolved type identity that may carry type arguments.
//
// Model sources (YAML model files, Go packages) build a Universe once per
// session; nothing in this package mutates it afterwards.
package model
