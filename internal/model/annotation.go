package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind is the variant tag of an AttributeValue.
type ValueKind int

const (
	ValueOther  ValueKind = iota // other
	ValueString                  // string
	ValueClass                   // class
)

// AttributeValue is the value of a single annotation attribute.
type AttributeValue struct {
	kind  ValueKind
	str   string
	class *TypeRef
	other any
}

// StringValue wraps a string-valued attribute.
func StringValue(s string) AttributeValue {
	return AttributeValue{kind: ValueString, str: s}
}

// ClassValue wraps a class-reference attribute.
func ClassValue(t *TypeRef) AttributeValue {
	return AttributeValue{kind: ValueClass, class: t}
}

// OtherValue wraps any other attribute value (numbers, booleans, arrays).
func OtherValue(v any) AttributeValue {
	return AttributeValue{kind: ValueOther, other: v}
}

func (v AttributeValue) Kind() ValueKind { return v.kind }

// AsString returns the string payload if the value is string-valued.
func (v AttributeValue) AsString() (string, bool) {
	return v.str, v.kind == ValueString
}

// AsClass returns the class reference if the value is class-valued.
func (v AttributeValue) AsClass() (*TypeRef, bool) {
	return v.class, v.kind == ValueClass
}

// Raw returns the untyped payload for ValueOther values.
func (v AttributeValue) Raw() any {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueClass:
		return v.class
	default:
		return v.other
	}
}

// String renders the value the way it would appear in source.
func (v AttributeValue) String() string {
	switch v.kind {
	case ValueString:
		return strconv.Quote(v.str)
	case ValueClass:
		return v.class.String() + ".class"
	default:
		return fmt.Sprint(v.other)
	}
}

// Attribute is a single name/value pair of an annotation.
type Attribute struct {
	Name  string
	Value AttributeValue
}

// Annotation is an annotation instance attached to an Element.
type Annotation struct {
	Type       *TypeRef
	Attributes []Attribute // explicitly given attributes, in source order
	Pos        Position
}

// NewAnnotation creates an annotation of the given type.
func NewAnnotation(t *TypeRef, attrs ...Attribute) *Annotation {
	return &Annotation{Type: t, Attributes: attrs}
}

// Attribute looks up an explicitly given attribute by name.
func (a *Annotation) Attribute(name string) (AttributeValue, bool) {
	for _, attr := range a.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return AttributeValue{}, false
}

// String renders the annotation, e.g. `@javax.persistence.OneToMany(mappedBy="parent")`.
func (a *Annotation) String() string {
	if a == nil {
		return "<nil>"
	}

	if len(a.Attributes) == 0 {
		return "@" + a.Type.String()
	}

	parts := make([]string, len(a.Attributes))
	for i, attr := range a.Attributes {
		parts[i] = attr.Name + "=" + attr.Value.String()
	}

	return fmt.Sprintf("@%s(%s)", a.Type, strings.Join(parts, ", "))
}
