package model

import "relcheck/internal/common"

//go:generate go tool stringer -type=PropertyKind,ValueKind -linecomment -output=kind_string.go

// PropertyKind distinguishes fields from accessor methods.
type PropertyKind int

const (
	PropertyUnsupported PropertyKind = iota // unsupported
	PropertyField                           // field
	PropertyAccessor                        // accessor
)

// ParsePropertyKind maps "field" and "accessor" (or "method") to a PropertyKind.
func ParsePropertyKind(s string) (PropertyKind, bool) {
	switch s {
	case "field":
		return PropertyField, true
	case "accessor", "method":
		return PropertyAccessor, true
	default:
		return PropertyUnsupported, false
	}
}

// Constructor is a declared constructor; only its parameter list matters here.
type Constructor struct {
	Params []*TypeRef
}

// Arity returns the number of parameters.
func (c Constructor) Arity() int {
	return len(c.Params)
}

// Declaration is a named class-like unit.
type Declaration struct {
	Name          string // simple name
	QualifiedName string
	Params        int // number of type parameters
	Supertypes    []*TypeRef
	Constructors  []Constructor // explicitly declared only
	Properties    []*Property
	Annotations   []*Annotation
	Pos           Position
}

// Type returns the raw TypeRef for the declaration.
func (d *Declaration) Type() *TypeRef {
	return NewTypeRef(d.qualified())
}

// AllConstructors returns the declared constructors, or the implicit
// zero-argument constructor when none is declared.
func (d *Declaration) AllConstructors() []Constructor {
	if common.IsEmpty(d.Constructors) {
		return []Constructor{{}}
	}

	return d.Constructors
}

// AddProperty appends p and sets its owner.
func (d *Declaration) AddProperty(p *Property) {
	p.Owner = d
	d.Properties = append(d.Properties, p)
}

func (d *Declaration) ElementName() string           { return d.Name }
func (d *Declaration) ElementPos() Position          { return d.Pos }
func (d *Declaration) AnnotationList() []*Annotation { return d.Annotations }

func (d *Declaration) qualified() string {
	if d.QualifiedName != "" {
		return d.QualifiedName
	}

	return d.Name
}

// Property is a field or accessor belonging to a Declaration.
type Property struct {
	Name        string
	Kind        PropertyKind
	Type        *TypeRef // declared type for fields, return type for accessors
	Annotations []*Annotation
	Owner       *Declaration // not owned
	Pos         Position
}

// ElementName returns "Owner.name" for fields and "Owner.name()" for accessors.
func (p *Property) ElementName() string {
	name := p.Name
	if p.Kind == PropertyAccessor {
		name += "()"
	}

	if p.Owner == nil {
		return name
	}

	return p.Owner.Name + "." + name
}

func (p *Property) ElementPos() Position          { return p.Pos }
func (p *Property) AnnotationList() []*Annotation { return p.Annotations }
