package diagnostic

import (
	"relcheck/internal/model"
)

// Anchor is a location a diagnostic is attached to: an element, one of its
// annotations, or a single attribute value of that annotation.
type Anchor interface {
	String() string
	Position() (model.Position, bool)
}

// ElementAnchor points at a declaration or property.
type ElementAnchor struct {
	Element model.Element
}

// OnElement anchors a diagnostic at e.
func OnElement(e model.Element) ElementAnchor {
	return ElementAnchor{Element: e}
}

func (a ElementAnchor) String() string {
	if a.Element == nil {
		return "<nil>"
	}

	return a.Element.ElementName()
}

func (a ElementAnchor) Position() (model.Position, bool) {
	if a.Element == nil {
		return model.Position{}, false
	}

	pos := a.Element.ElementPos()
	return pos, pos.IsValid()
}

// AnnotationAnchor points at an annotation instance.
type AnnotationAnchor struct {
	Annotation *model.Annotation
}

// OnAnnotation anchors a diagnostic at ann.
func OnAnnotation(ann *model.Annotation) AnnotationAnchor {
	return AnnotationAnchor{Annotation: ann}
}

func (a AnnotationAnchor) String() string {
	return a.Annotation.String()
}

func (a AnnotationAnchor) Position() (model.Position, bool) {
	if a.Annotation == nil {
		return model.Position{}, false
	}

	return a.Annotation.Pos, a.Annotation.Pos.IsValid()
}

// ValueAnchor points at a single attribute value.
type ValueAnchor struct {
	Name  string
	Value model.AttributeValue
}

// OnValue anchors a diagnostic at the value of attribute name.
func OnValue(name string, v model.AttributeValue) ValueAnchor {
	return ValueAnchor{Name: name, Value: v}
}

func (a ValueAnchor) String() string {
	return a.Value.String()
}

func (a ValueAnchor) Position() (model.Position, bool) {
	return model.Position{}, false
}
