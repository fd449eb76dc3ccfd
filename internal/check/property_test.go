package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relcheck/internal/model"
)

func TestPropertyName(t *testing.T) {
	tests := []struct {
		name string
		kind model.PropertyKind
		want string
	}{
		{"parent", model.PropertyField, "parent"},
		{"Parent", model.PropertyField, "Parent"},
		{"getParent", model.PropertyAccessor, "parent"},
		{"isActive", model.PropertyAccessor, "active"},
		{"getURL", model.PropertyAccessor, "URL"},
		{"getX", model.PropertyAccessor, "x"},
		{"get", model.PropertyAccessor, ""},
		{"issue", model.PropertyAccessor, "sue"},
		{"parent", model.PropertyAccessor, "parent"},
		{"Parent", model.PropertyAccessor, "Parent"},
		{"getÉcole", model.PropertyAccessor, "école"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.name, func(t *testing.T) {
			got, err := PropertyName(&model.Property{Name: tt.name, Kind: tt.kind})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyName_UnsupportedKind(t *testing.T) {
	_, err := PropertyName(&model.Property{Name: "Parent", Kind: model.PropertyUnsupported})
	require.ErrorIs(t, err, model.ErrUnsupportedPropertyKind)
	assert.Contains(t, err.Error(), "Parent")
}

func TestPropertyType(t *testing.T) {
	ref := model.NewTypeRef("Parent")

	got, err := PropertyType(&model.Property{Name: "parent", Kind: model.PropertyField, Type: ref})
	require.NoError(t, err)
	assert.Same(t, ref, got)

	got, err = PropertyType(&model.Property{Name: "getParent", Kind: model.PropertyAccessor, Type: ref})
	require.NoError(t, err)
	assert.Same(t, ref, got)

	_, err = PropertyType(&model.Property{Name: "parent", Kind: model.PropertyKind(7), Type: ref})
	assert.ErrorIs(t, err, model.ErrUnsupportedPropertyKind)
}

func TestFindAnnotation(t *testing.T) {
	first := model.NewAnnotation(model.NewTypeRef(oneToManyName), mappedBy("a"))
	second := model.NewAnnotation(model.NewTypeRef(oneToManyName), mappedBy("b"))
	p := &model.Property{
		Name:        "children",
		Kind:        model.PropertyField,
		Annotations: []*model.Annotation{manyToOne(), first, second},
	}

	assert.Same(t, first, FindAnnotation(p, model.NewTypeRef(oneToManyName)))
	assert.Nil(t, FindAnnotation(p, model.NewTypeRef(entityName)))
}

func TestAttributeValue(t *testing.T) {
	ann := oneToMany(mappedBy("parent"))

	v, ok := AttributeValue(ann, MappedByAttribute)
	require.True(t, ok)
	s, isString := v.AsString()
	assert.True(t, isString)
	assert.Equal(t, "parent", s)

	_, ok = AttributeValue(oneToMany(), MappedByAttribute)
	assert.False(t, ok)

	_, ok = AttributeValue(nil, MappedByAttribute)
	assert.False(t, ok)
}
