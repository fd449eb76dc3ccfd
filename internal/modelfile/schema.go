package modelfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"relcheck/internal/model"
)

// File is the root of a YAML model file.
type File struct {
	Version string `yaml:"version"`
	// Package qualifies simple declaration names, e.g. "com.example".
	Package      string           `yaml:"package,omitempty"`
	Types        []DeclarationDef `yaml:"types,omitempty"`
	Declarations []DeclarationDef `yaml:"declarations,omitempty"`

	// Path is the file the model was loaded from, if any.
	Path string `yaml:"-"`
}

// DeclarationDef describes a class-like declaration. Entries under "types"
// use the same shape but usually carry no properties.
type DeclarationDef struct {
	Name         string           `yaml:"name"`
	Params       int              `yaml:"params,omitempty"`
	Supertypes   []string         `yaml:"supertypes,omitempty"`
	Annotations  []AnnotationDef  `yaml:"annotations,omitempty"`
	Constructors []ConstructorDef `yaml:"constructors,omitempty"`
	Properties   []PropertyDef    `yaml:"properties,omitempty"`

	Line int `yaml:"-"`
}

// ConstructorDef lists the parameter types of one constructor.
type ConstructorDef struct {
	Params []string `yaml:"params,omitempty"`
}

// PropertyDef describes a field or accessor.
type PropertyDef struct {
	Name        string          `yaml:"name"`
	Kind        string          `yaml:"kind,omitempty"` // field (default) | accessor
	Type        string          `yaml:"type"`
	Annotations []AnnotationDef `yaml:"annotations,omitempty"`

	Line int `yaml:"-"`
}

// AnnotationDef describes an annotation instance.
type AnnotationDef struct {
	Type       string     `yaml:"type"`
	Attributes Attributes `yaml:"attributes,omitempty"`

	Line int `yaml:"-"`
}

// AttributeDef is one annotation attribute. Scalars tagged as strings are
// string values, {class: T} is a class reference, anything else is kept as
// decoded YAML.
type AttributeDef struct {
	Name  string
	Kind  model.ValueKind
	Str   string
	Class string
	Other any
}

// Attributes keeps attribute order as written in the file.
type Attributes []AttributeDef

// --- position capture ---

// UnmarshalYAML decodes a DeclarationDef and records its line.
func (d *DeclarationDef) UnmarshalYAML(node *yaml.Node) error {
	type plain DeclarationDef
	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}

	d.Line = node.Line

	return nil
}

// UnmarshalYAML decodes a PropertyDef and records its line.
func (p *PropertyDef) UnmarshalYAML(node *yaml.Node) error {
	type plain PropertyDef
	if err := node.Decode((*plain)(p)); err != nil {
		return err
	}

	p.Line = node.Line

	return nil
}

// UnmarshalYAML decodes an AnnotationDef and records its line.
// A bare scalar is shorthand for an annotation without attributes.
func (a *AnnotationDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		a.Type = node.Value
		a.Line = node.Line

		return nil
	}

	type plain AnnotationDef
	if err := node.Decode((*plain)(a)); err != nil {
		return err
	}

	a.Line = node.Line

	return nil
}

// --- Attributes YAML methods ---

// UnmarshalYAML decodes a mapping of attribute names to values, preserving order.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected attribute mapping, got %v", node.Line, node.Kind)
	}

	out := make(Attributes, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		attr, err := decodeAttribute(key.Value, val)
		if err != nil {
			return err
		}

		out = append(out, attr)
	}

	*a = out

	return nil
}

func decodeAttribute(name string, val *yaml.Node) (AttributeDef, error) {
	attr := AttributeDef{Name: name}

	switch {
	case val.Kind == yaml.ScalarNode && val.ShortTag() == "!!str":
		attr.Kind = model.ValueString
		attr.Str = val.Value

	case val.Kind == yaml.MappingNode && len(val.Content) == 2 && val.Content[0].Value == "class":
		attr.Kind = model.ValueClass
		attr.Class = val.Content[1].Value

	default:
		var v any
		if err := val.Decode(&v); err != nil {
			return attr, fmt.Errorf("line %d: attribute %q: %w", val.Line, name, err)
		}

		attr.Kind = model.ValueOther
		attr.Other = v
	}

	return attr, nil
}

// MarshalYAML writes attributes back as an ordered mapping.
func (a Attributes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, attr := range a {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: attr.Name}

		var val yaml.Node

		switch attr.Kind {
		case model.ValueString:
			val = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Str}
		case model.ValueClass:
			val = yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: "class"},
				{Kind: yaml.ScalarNode, Value: attr.Class},
			}}
		default:
			if err := val.Encode(attr.Other); err != nil {
				return nil, err
			}
		}

		node.Content = append(node.Content, key, &val)
	}

	return node, nil
}
