package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownType is returned when a type name cannot be resolved in a Universe.
	ErrUnknownType = errors.New("unknown type")
	// ErrDuplicateDeclaration is returned when two declarations share a qualified name.
	ErrDuplicateDeclaration = errors.New("duplicate declaration")
	// ErrUnsupportedPropertyKind is returned when a property is neither a field nor an accessor.
	ErrUnsupportedPropertyKind = errors.New("unsupported property kind")
)

// TypeRef is a resolved type identity, optionally parameterized.
type TypeRef struct {
	Name string     // qualified name, e.g. "java.util.Set" or "relcheck/shop.Order"
	Args []*TypeRef // type arguments in declaration order
}

// NewTypeRef creates a TypeRef with the given qualified name and type arguments.
func NewTypeRef(name string, args ...*TypeRef) *TypeRef {
	return &TypeRef{Name: name, Args: args}
}

// Raw returns the non-parameterized form of the type.
func (t *TypeRef) Raw() *TypeRef {
	if t == nil {
		return nil
	}

	return &TypeRef{Name: t.Name}
}

// IsParameterized returns true if the type carries type arguments.
func (t *TypeRef) IsParameterized() bool {
	return t != nil && len(t.Args) > 0
}

// SimpleName returns the last segment of the qualified name.
func (t *TypeRef) SimpleName() string {
	if t == nil {
		return ""
	}

	return SimpleName(t.Name)
}

// String returns a readable form such as "java.util.Set<com.example.Child>".
func (t *TypeRef) String() string {
	if t == nil {
		return "<nil>"
	}

	if len(t.Args) == 0 {
		return t.Name
	}

	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s<%s>", t.Name, strings.Join(args, ", "))
}

// SameType reports whether a and b denote the same type, including type arguments.
// A nil reference is never the same as anything.
func SameType(a, b *TypeRef) bool {
	if a == nil || b == nil {
		return false
	}

	if a.Name != b.Name || len(a.Args) != len(b.Args) {
		return false
	}

	for i := range a.Args {
		if !SameType(a.Args[i], b.Args[i]) {
			return false
		}
	}

	return true
}

// SimpleName strips the package qualifier from a qualified type name.
// Go import paths may contain dots, so only the segment after the last
// slash is considered.
func SimpleName(qualified string) string {
	base := qualified
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i+1:]
	}

	return base
}

// Position locates an element in its source, if known.
type Position struct {
	File   string
	Line   int
	Column int
}

// IsValid returns true if the position carries a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns "file:line:col", omitting unknown parts.
func (p Position) String() string {
	if !p.IsValid() {
		return p.File
	}

	s := fmt.Sprintf("%d", p.Line)
	if p.Column > 0 {
		s = fmt.Sprintf("%d:%d", p.Line, p.Column)
	}

	if p.File == "" {
		return s
	}

	return p.File + ":" + s
}

// Element is anything annotations can be attached to: a Declaration or a Property.
type Element interface {
	// ElementName returns the name used when the element is shown in a diagnostic.
	ElementName() string
	// ElementPos returns the source position of the element.
	ElementPos() Position
	// AnnotationList returns the annotation instances in declaration order.
	AnnotationList() []*Annotation
}
