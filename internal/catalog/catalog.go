// Package catalog resolves the well-known marker types the validator compares
// against. Resolution happens once per session; the resulting Catalog is
// read-only and safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"

	"relcheck/internal/model"
)

// ErrUnresolvedMarker indicates the host environment lacks an expected framework type.
var ErrUnresolvedMarker = errors.New("unresolved marker type")

// Names holds the qualified names of the four marker types.
type Names struct {
	Entity     string `yaml:"entity,omitempty"`
	OneToMany  string `yaml:"one_to_many,omitempty"`
	ManyToOne  string `yaml:"many_to_one,omitempty"`
	Collection string `yaml:"collection,omitempty"`
}

// DefaultNames returns the JPA marker names.
func DefaultNames() Names {
	return Names{
		Entity:     "javax.persistence.Entity",
		OneToMany:  "javax.persistence.OneToMany",
		ManyToOne:  "javax.persistence.ManyToOne",
		Collection: "java.util.Collection",
	}
}

// WithDefaults fills empty names from fallback.
func (n Names) WithDefaults(fallback Names) Names {
	if n.Entity == "" {
		n.Entity = fallback.Entity
	}

	if n.OneToMany == "" {
		n.OneToMany = fallback.OneToMany
	}

	if n.ManyToOne == "" {
		n.ManyToOne = fallback.ManyToOne
	}

	if n.Collection == "" {
		n.Collection = fallback.Collection
	}

	return n
}

// Resolver resolves a qualified type name. *model.Universe implements it.
type Resolver interface {
	Resolve(name string) (*model.TypeRef, error)
}

// Catalog holds the resolved marker types for one session.
type Catalog struct {
	Entity     *model.TypeRef
	OneToMany  *model.TypeRef
	ManyToOne  *model.TypeRef
	Collection *model.TypeRef

	names Names
}

// New resolves every marker name. A name that does not resolve is a fatal
// configuration error.
func New(r Resolver, names Names) (*Catalog, error) {
	c := &Catalog{names: names}

	for _, m := range []struct {
		name string
		dst  **model.TypeRef
	}{
		{names.Entity, &c.Entity},
		{names.OneToMany, &c.OneToMany},
		{names.ManyToOne, &c.ManyToOne},
		{names.Collection, &c.Collection},
	} {
		if m.name == "" {
			return nil, fmt.Errorf("%w: empty marker name", ErrUnresolvedMarker)
		}

		ref, err := r.Resolve(m.name)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrUnresolvedMarker, m.name, err)
		}

		*m.dst = ref.Raw()
	}

	return c, nil
}

// Names returns the names the catalog was resolved from.
func (c *Catalog) Names() Names {
	return c.names
}
