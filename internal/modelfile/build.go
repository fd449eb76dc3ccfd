package modelfile

import (
	"errors"
	"fmt"
	"strings"

	"relcheck/internal/model"
)

// ErrInvalidModel is returned when a model file cannot be turned into a universe.
var ErrInvalidModel = errors.New("invalid model")

// Primitives resolve without a declaration.
var Primitives = []string{"boolean", "byte", "char", "short", "int", "long", "float", "double", "void"}

// Build turns one or more model files into a Universe. Names declared in any
// file are visible to all of them.
func Build(files ...*File) (*model.Universe, error) {
	b := &builder{
		u:        model.NewUniverse(),
		declared: make(map[string]struct{}),
		bySimple: make(map[string][]string),
	}
	b.u.AddBuiltin(Primitives...)

	// First pass: register every name so references resolve regardless of order.
	for _, f := range files {
		for _, defs := range [][]DeclarationDef{f.Types, f.Declarations} {
			for i := range defs {
				name := qualifyDecl(defs[i].Name, f.Package)
				if name == "" {
					return nil, fmt.Errorf("%w: %s: line %d: declaration without name", ErrInvalidModel, f.Path, defs[i].Line)
				}

				if _, dup := b.declared[name]; dup {
					return nil, fmt.Errorf("%w: %s: %w: %s", ErrInvalidModel, f.Path, model.ErrDuplicateDeclaration, name)
				}

				b.declared[name] = struct{}{}
				simple := model.SimpleName(name)
				b.bySimple[simple] = append(b.bySimple[simple], name)
			}
		}
	}

	for _, f := range files {
		for _, defs := range [][]DeclarationDef{f.Types, f.Declarations} {
			for i := range defs {
				decl, err := b.declaration(f, &defs[i])
				if err != nil {
					return nil, fmt.Errorf("%w: %s: %w", ErrInvalidModel, f.Path, err)
				}

				if err := b.u.Add(decl); err != nil {
					return nil, fmt.Errorf("%w: %s: %w", ErrInvalidModel, f.Path, err)
				}
			}
		}
	}

	return b.u, nil
}

type builder struct {
	u        *model.Universe
	declared map[string]struct{}
	bySimple map[string][]string
}

func qualifyDecl(name, pkg string) string {
	if name == "" || strings.Contains(name, ".") || pkg == "" {
		return name
	}

	return pkg + "." + name
}

// qualify resolves a possibly simple type name: qualified names are kept,
// then the file's package, then a unique declaration with that simple name.
// Anything else (primitives, type variables, unknown library types) is kept
// as written.
func (b *builder) qualify(name, pkg string) string {
	if strings.Contains(name, ".") {
		return name
	}

	if pkg != "" {
		if _, ok := b.declared[pkg+"."+name]; ok {
			return pkg + "." + name
		}
	}

	if cands := b.bySimple[name]; len(cands) == 1 {
		return cands[0]
	}

	return name
}

func (b *builder) typeRef(expr, pkg string) (*model.TypeRef, error) {
	te, err := ParseTypeExpr(expr)
	if err != nil {
		return nil, err
	}

	return b.fromExpr(te, pkg), nil
}

func (b *builder) fromExpr(te TypeExpr, pkg string) *model.TypeRef {
	ref := model.NewTypeRef(b.qualify(te.Name, pkg))
	for _, a := range te.Args {
		ref.Args = append(ref.Args, b.fromExpr(a, pkg))
	}

	return ref
}

func (b *builder) declaration(f *File, def *DeclarationDef) (*model.Declaration, error) {
	name := qualifyDecl(def.Name, f.Package)

	decl := &model.Declaration{
		Name:          model.SimpleName(name),
		QualifiedName: name,
		Params:        def.Params,
		Pos:           model.Position{File: f.Path, Line: def.Line},
	}

	for _, s := range def.Supertypes {
		ref, err := b.typeRef(s, f.Package)
		if err != nil {
			return nil, fmt.Errorf("%s: supertype: %w", name, err)
		}

		decl.Supertypes = append(decl.Supertypes, ref)
	}

	anns, err := b.annotations(f, def.Annotations)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	decl.Annotations = anns

	for _, c := range def.Constructors {
		var ctor model.Constructor

		for _, p := range c.Params {
			ref, err := b.typeRef(p, f.Package)
			if err != nil {
				return nil, fmt.Errorf("%s: constructor parameter: %w", name, err)
			}

			ctor.Params = append(ctor.Params, ref)
		}

		decl.Constructors = append(decl.Constructors, ctor)
	}

	for i := range def.Properties {
		p, err := b.property(f, &def.Properties[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		decl.AddProperty(p)
	}

	return decl, nil
}

func (b *builder) property(f *File, def *PropertyDef) (*model.Property, error) {
	kind, ok := model.ParsePropertyKind(def.Kind)
	if !ok {
		return nil, fmt.Errorf("property %q: unknown kind %q", def.Name, def.Kind)
	}

	if def.Name == "" {
		return nil, fmt.Errorf("line %d: property without name", def.Line)
	}

	ref, err := b.typeRef(def.Type, f.Package)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", def.Name, err)
	}

	anns, err := b.annotations(f, def.Annotations)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", def.Name, err)
	}

	return &model.Property{
		Name:        def.Name,
		Kind:        kind,
		Type:        ref,
		Annotations: anns,
		Pos:         model.Position{File: f.Path, Line: def.Line},
	}, nil
}

func (b *builder) annotations(f *File, defs []AnnotationDef) ([]*model.Annotation, error) {
	out := make([]*model.Annotation, 0, len(defs))

	for _, def := range defs {
		ref, err := b.typeRef(def.Type, f.Package)
		if err != nil {
			return nil, fmt.Errorf("annotation: %w", err)
		}

		ann := model.NewAnnotation(ref)
		ann.Pos = model.Position{File: f.Path, Line: def.Line}

		for _, attr := range def.Attributes {
			v, err := b.attributeValue(f, attr)
			if err != nil {
				return nil, fmt.Errorf("annotation %s: %w", ref, err)
			}

			ann.Attributes = append(ann.Attributes, model.Attribute{Name: attr.Name, Value: v})
		}

		out = append(out, ann)
	}

	return out, nil
}

func (b *builder) attributeValue(f *File, attr AttributeDef) (model.AttributeValue, error) {
	switch attr.Kind {
	case model.ValueString:
		return model.StringValue(attr.Str), nil
	case model.ValueClass:
		ref, err := b.typeRef(attr.Class, f.Package)
		if err != nil {
			return model.AttributeValue{}, fmt.Errorf("attribute %q: %w", attr.Name, err)
		}

		return model.ClassValue(ref), nil
	default:
		return model.OtherValue(attr.Other), nil
	}
}
