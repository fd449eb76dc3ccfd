package check

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relcheck/internal/diagnostic"
	"relcheck/internal/model"
)

func TestCheckNoArgConstructor(t *testing.T) {
	intRef := model.NewTypeRef("int")

	tests := []struct {
		name         string
		constructors []model.Constructor
		wantError    bool
	}{
		{name: "implicit default constructor"},
		{name: "explicit no-arg", constructors: []model.Constructor{{}}},
		{
			name:         "no-arg among others",
			constructors: []model.Constructor{{Params: []*model.TypeRef{intRef}}, {}},
		},
		{
			name:         "only int constructor",
			constructors: []model.Constructor{{Params: []*model.TypeRef{intRef}}},
			wantError:    true,
		},
		{
			name: "several non-empty constructors",
			constructors: []model.Constructor{
				{Params: []*model.TypeRef{intRef}},
				{Params: []*model.TypeRef{intRef, intRef}},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newJPAUniverse(t)
			decl := &model.Declaration{
				Name:          "SimpleAnnotated",
				QualifiedName: "SimpleAnnotated",
				Constructors:  tt.constructors,
				Annotations:   []*model.Annotation{entityAnnotation()},
			}
			require.NoError(t, u.Add(decl))
			v, diags := newValidator(t, u)

			v.CheckNoArgConstructor(decl)

			if !tt.wantError {
				assert.Zero(t, diags.Len(), spew.Sdump(diags))
				return
			}

			require.Len(t, diags.Errors, 1)
			diag := diags.Errors[0]
			assert.Equal(t, diagnostic.DiagnosticError, diag.Severity)
			assert.Equal(t, "missing no argument constructor", diag.Message)
			assert.Equal(t, []string{"SimpleAnnotated", "@javax.persistence.Entity"}, diag.AnchorStrings())
		})
	}
}

// buildShop declares an entity without a no-arg constructor and three
// one-to-many properties, each broken in a different way, plus one valid.
func buildShop(t *testing.T) *model.Universe {
	t.Helper()

	u := newJPAUniverse(t)
	order := model.NewTypeRef("Order")
	customer := model.NewTypeRef("Customer")

	decls := []*model.Declaration{
		{
			Name: "Customer", QualifiedName: "Customer",
			Annotations:  []*model.Annotation{entityAnnotation()},
			Constructors: []model.Constructor{{Params: []*model.TypeRef{model.NewTypeRef("java.lang.String")}}},
			Properties: []*model.Property{
				{Name: "getOrders", Kind: model.PropertyAccessor, Type: setOf(order),
					Annotations: []*model.Annotation{oneToMany(mappedBy("customer"))}},
				{Name: "notes", Kind: model.PropertyField, Type: setOf(model.NewTypeRef("Note")),
					Annotations: []*model.Annotation{oneToMany()}},
			},
		},
		{
			Name: "Order", QualifiedName: "Order",
			Annotations: []*model.Annotation{entityAnnotation()},
			Properties: []*model.Property{
				{Name: "getCustomer", Kind: model.PropertyAccessor, Type: customer,
					Annotations: []*model.Annotation{manyToOne()}},
				{Name: "lines", Kind: model.PropertyField, Type: model.NewTypeRef("java.util.List", model.NewTypeRef("Line")),
					Annotations: []*model.Annotation{oneToMany(mappedBy("parentOrder"))}},
			},
		},
		{
			Name: "Line", QualifiedName: "Line",
			Annotations: []*model.Annotation{entityAnnotation()},
			Properties: []*model.Property{
				{Name: "order", Kind: model.PropertyField, Type: order,
					Annotations: []*model.Annotation{manyToOne()}},
			},
		},
		{
			Name: "Note", QualifiedName: "Note",
			Properties: []*model.Property{
				{Name: "customer", Kind: model.PropertyField, Type: customer,
					Annotations: []*model.Annotation{manyToOne()}},
			},
		},
	}

	for _, d := range decls {
		require.NoError(t, u.Add(d))
	}

	return u
}

func messages(d *diagnostic.Diagnostics) []string {
	var out []string
	for _, diag := range d.All() {
		out = append(out, diag.Message)
	}

	return out
}

func TestValidator_RunUniverse(t *testing.T) {
	u := buildShop(t)
	v, diags := newValidator(t, u)

	claimed, err := v.RunUniverse()
	require.NoError(t, err)
	assert.False(t, claimed)

	assert.Equal(t, []string{
		"missing no argument constructor",
		"Missing mappedBy attribute",
		"mappedBy attribute should be order",
	}, messages(diags), spew.Sdump(diags))
}

func TestValidator_Select(t *testing.T) {
	v, _ := newValidator(t, buildShop(t))

	entities, props := v.Select()

	var names []string
	for _, d := range entities {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Customer", "Order", "Line"}, names)

	names = nil
	for _, p := range props {
		names = append(names, p.ElementName())
	}
	assert.Equal(t, []string{"Customer.getOrders()", "Customer.notes", "Order.lines"}, names)
}

func TestValidator_Idempotent(t *testing.T) {
	u := buildShop(t)
	v, first := newValidator(t, u)

	_, err := v.RunUniverse()
	require.NoError(t, err)

	second := &diagnostic.Diagnostics{}
	v.reporter = second
	_, err = v.RunUniverse()
	require.NoError(t, err)

	assert.Equal(t, first.All(), second.All())
}

func TestValidator_ContractViolationDoesNotStopRun(t *testing.T) {
	u := newJPAUniverse(t)
	broken := &model.Property{Name: "child", Kind: model.PropertyField, Type: childRef,
		Annotations: []*model.Annotation{oneToMany()}}
	prop := parentChild(t, u, oneToMany())
	parent, _ := u.Lookup("Parent")
	parent.AddProperty(broken)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	c := mustCatalog(t, u)
	diags := &diagnostic.Diagnostics{}
	v := New(u, c, diags, WithLogger(logger))

	_, err := v.Run(nil, []*model.Property{broken, prop})
	require.NoError(t, err)

	assert.Equal(t, []string{"No matching @ManyToOne annotation on Child"}, messages(diags))
	assert.Contains(t, logs.String(), "skipping unverifiable one-to-many property")
}

func TestValidator_UnsupportedKindIsFatal(t *testing.T) {
	u := newJPAUniverse(t)
	prop := parentChild(t, u, oneToMany())
	prop.Kind = model.PropertyUnsupported
	v, _ := newValidator(t, u)

	_, err := v.Run(nil, []*model.Property{prop})
	require.ErrorIs(t, err, model.ErrUnsupportedPropertyKind)
}
