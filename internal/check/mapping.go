package check

import (
	"fmt"

	"relcheck/internal/diagnostic"
	"relcheck/internal/model"
)

// MappedByAttribute is the one-to-many attribute naming the back-reference property.
const MappedByAttribute = "mappedBy"

// CheckBidirectionalMapping verifies that a one-to-many property has a
// many-to-one back-reference on its element type and that mappedBy names it.
// At most one diagnostic is reported; the first failing step wins.
//
// A returned error wrapping ErrContractViolation means the property could not
// be checked at all; one wrapping model.ErrUnsupportedPropertyKind is fatal.
func (v *Validator) CheckBidirectionalMapping(childProperty *model.Property) error {
	propertyType, err := PropertyType(childProperty)
	if err != nil {
		return err
	}

	childElementType := v.CollectionElementType(propertyType)
	if childElementType == nil {
		return fmt.Errorf("%w: %s has non-collection type %s",
			ErrContractViolation, childProperty.ElementName(), propertyType)
	}

	childDeclaration := v.universe.Declaration(childElementType)
	if childDeclaration == nil {
		return fmt.Errorf("%w: element type %s of %s is not declared",
			ErrContractViolation, childElementType, childProperty.ElementName())
	}

	if childProperty.Owner == nil {
		return fmt.Errorf("%w: %s has no owning declaration", ErrContractViolation, childProperty.Name)
	}

	parentType := childProperty.Owner.Type()
	oneToMany := FindAnnotation(childProperty, v.catalog.OneToMany)

	parentRefProperty, err := v.findParentReference(parentType, childDeclaration)
	if err != nil {
		return err
	}

	if parentRefProperty == nil {
		v.reporter.Report(diagnostic.DiagnosticError,
			diagnostic.MsgNoMatchingManyToOne+childDeclaration.Name,
			diagnostic.OnElement(childProperty), diagnostic.OnAnnotation(oneToMany))

		return nil
	}

	mappedBy, ok := AttributeValue(oneToMany, MappedByAttribute)
	if !ok {
		v.reporter.Report(diagnostic.DiagnosticError,
			diagnostic.MsgMissingMappedBy,
			diagnostic.OnElement(childProperty), diagnostic.OnAnnotation(oneToMany))

		return nil
	}

	expected, err := PropertyName(parentRefProperty)
	if err != nil {
		return err
	}

	if got, isString := mappedBy.AsString(); !isString || got != expected {
		v.reporter.Report(diagnostic.DiagnosticError,
			diagnostic.MsgWrongMappedBy+expected,
			diagnostic.OnElement(childProperty), diagnostic.OnAnnotation(oneToMany),
			diagnostic.OnValue(MappedByAttribute, mappedBy))
	}

	return nil
}

// findParentReference returns the first field or accessor of child that
// carries the many-to-one marker and whose type is parentType.
func (v *Validator) findParentReference(parentType *model.TypeRef, child *model.Declaration) (*model.Property, error) {
	for _, p := range child.Properties {
		if p.Kind != model.PropertyField && p.Kind != model.PropertyAccessor {
			continue
		}

		if FindAnnotation(p, v.catalog.ManyToOne) == nil {
			continue
		}

		t, err := PropertyType(p)
		if err != nil {
			return nil, err
		}

		if model.SameType(parentType, t) {
			return p, nil
		}
	}

	return nil, nil
}
