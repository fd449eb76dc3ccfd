package check

import (
	"relcheck/internal/common"
	"relcheck/internal/model"
)

// CollectionElementType returns the element type of a collection-typed
// reference, or nil when t is nil or not a collection.
//
// Only t's own type arguments are inspected. A type that fixes the element
// type through an intermediate non-generic subtype (class Children implements
// Collection<Child>) is treated as a non-collection.
func (v *Validator) CollectionElementType(t *model.TypeRef) *model.TypeRef {
	if t == nil || !v.universe.IsAssignable(t, v.catalog.Collection) {
		return nil
	}

	elem, _ := common.First(t.Args)

	return elem
}
