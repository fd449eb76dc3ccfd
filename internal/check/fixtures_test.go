package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"relcheck/internal/catalog"
	"relcheck/internal/diagnostic"
	"relcheck/internal/model"
)

const (
	entityName    = "javax.persistence.Entity"
	oneToManyName = "javax.persistence.OneToMany"
	manyToOneName = "javax.persistence.ManyToOne"
)

var (
	parentRef = model.NewTypeRef("Parent")
	childRef  = model.NewTypeRef("Child")
)

// newJPAUniverse returns a universe with the persistence markers and the
// java.util collection types declared.
func newJPAUniverse(t *testing.T) *model.Universe {
	t.Helper()

	u := model.NewUniverse()
	u.AddBuiltin("int", "java.lang.String")

	elem := model.NewTypeRef("E")
	for _, d := range []*model.Declaration{
		{Name: "Entity", QualifiedName: entityName},
		{Name: "OneToMany", QualifiedName: oneToManyName},
		{Name: "ManyToOne", QualifiedName: manyToOneName},
		{Name: "Collection", QualifiedName: "java.util.Collection", Params: 1},
		{
			Name: "Set", QualifiedName: "java.util.Set", Params: 1,
			Supertypes: []*model.TypeRef{model.NewTypeRef("java.util.Collection", elem)},
		},
		{
			Name: "List", QualifiedName: "java.util.List", Params: 1,
			Supertypes: []*model.TypeRef{model.NewTypeRef("java.util.Collection", elem)},
		},
		{
			Name: "Map", QualifiedName: "java.util.Map", Params: 2,
		},
	} {
		require.NoError(t, u.Add(d))
	}

	return u
}

func setOf(elem *model.TypeRef) *model.TypeRef {
	return model.NewTypeRef("java.util.Set", elem)
}

func entityAnnotation() *model.Annotation {
	return model.NewAnnotation(model.NewTypeRef(entityName))
}

func oneToMany(attrs ...model.Attribute) *model.Annotation {
	return model.NewAnnotation(model.NewTypeRef(oneToManyName), attrs...)
}

func manyToOne() *model.Annotation {
	return model.NewAnnotation(model.NewTypeRef(manyToOneName))
}

func mappedBy(v string) model.Attribute {
	return model.Attribute{Name: MappedByAttribute, Value: model.StringValue(v)}
}

// parentChild declares Parent.getChildren() -> Set<Child> annotated with
// ann, and a Child with the given properties.
func parentChild(t *testing.T, u *model.Universe, ann *model.Annotation, childProps ...*model.Property) *model.Property {
	t.Helper()

	getChildren := &model.Property{
		Name:        "getChildren",
		Kind:        model.PropertyAccessor,
		Type:        setOf(childRef),
		Annotations: []*model.Annotation{ann},
	}

	require.NoError(t, u.Add(&model.Declaration{Name: "Parent", QualifiedName: "Parent",
		Properties: []*model.Property{getChildren}}))
	require.NoError(t, u.Add(&model.Declaration{Name: "Child", QualifiedName: "Child",
		Properties: childProps}))

	return getChildren
}

func mustCatalog(t *testing.T, u *model.Universe) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(u, catalog.DefaultNames())
	require.NoError(t, err)

	return c
}

func newValidator(t *testing.T, u *model.Universe) (*Validator, *diagnostic.Diagnostics) {
	t.Helper()

	diags := &diagnostic.Diagnostics{}

	return New(u, mustCatalog(t, u), diags), diags
}
