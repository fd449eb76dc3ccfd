package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"relcheck/internal/catalog"
	"relcheck/internal/model"
)

// Marker type names synthesized for Go sources.
const (
	EntityMarker    = "orm.Entity"
	OneToManyMarker = "orm.OneToMany"
	ManyToOneMarker = "orm.ManyToOne"
	// SliceType is the collection capability: every []T and [N]T is a collection of T.
	SliceType = "[]"
	// MapType names map[K]V, which is not a collection.
	MapType = "map"

	// TagKey is the struct tag key carrying field markers.
	TagKey = "orm"
	// DirectivePrefix introduces a marker in a doc comment.
	DirectivePrefix = "//orm:"
)

// keywords maps tag and directive keywords to marker type names.
var keywords = map[string]string{
	"entity":      EntityMarker,
	"one_to_many": OneToManyMarker,
	"many_to_one": ManyToOneMarker,
}

// Names returns the catalog names to use with a universe loaded from Go sources.
func Names() catalog.Names {
	return catalog.Names{
		Entity:     EntityMarker,
		OneToMany:  OneToManyMarker,
		ManyToOne:  ManyToOneMarker,
		Collection: SliceType,
	}
}

func markerType(keyword string) *model.TypeRef {
	if name, ok := keywords[keyword]; ok {
		return model.NewTypeRef(name)
	}

	return model.NewTypeRef("orm." + keyword)
}

// parseTag reads `orm:"one_to_many,mappedBy=Post"`. An absent or "-" tag yields nil.
func parseTag(tag string, pos model.Position) (*model.Annotation, error) {
	value, ok := reflect.StructTag(tag).Lookup(TagKey)
	if !ok || value == "-" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	keyword := strings.TrimSpace(parts[0])
	if keyword == "" {
		return nil, fmt.Errorf("empty %s tag keyword in %q", TagKey, value)
	}

	ann := model.NewAnnotation(markerType(keyword))
	ann.Pos = pos

	for _, part := range parts[1:] {
		attr, err := parseAttribute(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%s tag %q: %w", TagKey, value, err)
		}

		ann.Attributes = append(ann.Attributes, attr)
	}

	return ann, nil
}

// parseDirectives reads every "//orm:keyword key=value ..." line of a doc comment.
func parseDirectives(doc *ast.CommentGroup, fset *token.FileSet) ([]*model.Annotation, error) {
	if doc == nil {
		return nil, nil
	}

	var out []*model.Annotation

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
		if !ok {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%s: empty directive", fset.Position(c.Pos()))
		}

		ann := model.NewAnnotation(markerType(fields[0]))
		ann.Pos = position(fset, c.Pos())

		for _, f := range fields[1:] {
			attr, err := parseAttribute(f)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fset.Position(c.Pos()), err)
			}

			ann.Attributes = append(ann.Attributes, attr)
		}

		out = append(out, ann)
	}

	return out, nil
}

// parseAttribute reads key=value; a double-quoted value is unquoted.
func parseAttribute(s string) (model.Attribute, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return model.Attribute{}, fmt.Errorf("attribute %q is not key=value", s)
	}

	if strings.HasPrefix(value, `"`) {
		unquoted, err := strconv.Unquote(value)
		if err != nil {
			return model.Attribute{}, fmt.Errorf("attribute %q: %w", s, err)
		}

		value = unquoted
	}

	return model.Attribute{Name: key, Value: model.StringValue(value)}, nil
}

func position(fset *token.FileSet, pos token.Pos) model.Position {
	p := fset.Position(pos)

	return model.Position{File: p.Filename, Line: p.Line, Column: p.Column}
}
