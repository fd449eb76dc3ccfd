package model

import (
	"fmt"
)

// Universe holds every declaration visible to one analysis session.
// It is built once by a model source and read-only afterwards.
type Universe struct {
	decls    map[string]*Declaration
	order    []*Declaration
	builtins map[string]struct{}
}

// NewUniverse creates an empty Universe.
func NewUniverse() *Universe {
	return &Universe{
		decls:    make(map[string]*Declaration),
		builtins: make(map[string]struct{}),
	}
}

// Add registers a declaration and links its properties back to it.
func (u *Universe) Add(d *Declaration) error {
	name := d.qualified()
	if _, ok := u.decls[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDeclaration, name)
	}

	for _, p := range d.Properties {
		p.Owner = d
	}

	u.decls[name] = d
	u.order = append(u.order, d)

	return nil
}

// AddBuiltin registers a type name that resolves without a declaration
// (primitives, slices, framework markers supplied by the host).
func (u *Universe) AddBuiltin(names ...string) {
	for _, n := range names {
		u.builtins[n] = struct{}{}
	}
}

// Lookup returns the declaration with the given qualified name.
func (u *Universe) Lookup(name string) (*Declaration, bool) {
	d, ok := u.decls[name]
	return d, ok
}

// Resolve returns the raw TypeRef for a declared or builtin type name.
func (u *Universe) Resolve(name string) (*TypeRef, error) {
	if _, ok := u.decls[name]; ok {
		return NewTypeRef(name), nil
	}

	if _, ok := u.builtins[name]; ok {
		return NewTypeRef(name), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
}

// Declaration returns the declaration a type reference points to, or nil.
func (u *Universe) Declaration(t *TypeRef) *Declaration {
	if t == nil {
		return nil
	}

	return u.decls[t.Name]
}

// Declarations returns all declarations in insertion order.
func (u *Universe) Declarations() []*Declaration {
	return u.order
}

// Len returns the number of declarations.
func (u *Universe) Len() int {
	return len(u.order)
}

// IsAssignable reports whether t is assignable to target when both are
// compared in raw form: t is target itself or has it among its transitive
// supertypes.
func (u *Universe) IsAssignable(t, target *TypeRef) bool {
	if t == nil || target == nil {
		return false
	}

	return u.isSubtype(t.Name, target.Name, make(map[string]struct{}))
}

func (u *Universe) isSubtype(name, target string, seen map[string]struct{}) bool {
	if name == target {
		return true
	}

	if _, ok := seen[name]; ok {
		return false
	}
	seen[name] = struct{}{}

	d := u.decls[name]
	if d == nil {
		return false
	}

	for _, s := range d.Supertypes {
		if s != nil && u.isSubtype(s.Name, target, seen) {
			return true
		}
	}

	return false
}
