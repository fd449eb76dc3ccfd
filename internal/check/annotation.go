package check

import (
	"relcheck/internal/model"
)

// FindAnnotation returns the first annotation on e whose type is target, or nil.
func FindAnnotation(e model.Element, target *model.TypeRef) *model.Annotation {
	for _, ann := range e.AnnotationList() {
		if model.SameType(ann.Type, target) {
			return ann
		}
	}

	return nil
}

// AttributeValue returns the explicitly given value of attribute name.
// An omitted attribute is not an error; callers decide what absence means.
func AttributeValue(ann *model.Annotation, name string) (model.AttributeValue, bool) {
	if ann == nil {
		return model.AttributeValue{}, false
	}

	return ann.Attribute(name)
}
