package check

import (
	"errors"
	"fmt"
	"log/slog"

	"relcheck/internal/catalog"
	"relcheck/internal/diagnostic"
	"relcheck/internal/model"
)

// ErrContractViolation marks input the model source should never have produced,
// such as a one-to-many marker on a property that is not a collection.
var ErrContractViolation = errors.New("model contract violation")

// Reporter receives the diagnostics of a session. *diagnostic.Diagnostics implements it.
type Reporter interface {
	Report(severity diagnostic.DiagnosticSeverity, message string, anchors ...diagnostic.Anchor)
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for progress and contract violations.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// Validator runs the relationship checks over one session's universe.
// It holds no state besides its read-only inputs, so a single Validator may be
// run repeatedly and yields the same diagnostics each time.
type Validator struct {
	universe *model.Universe
	catalog  *catalog.Catalog
	reporter Reporter
	logger   *slog.Logger
}

// New creates a Validator for universe u using the resolved marker catalog c.
func New(u *model.Universe, c *catalog.Catalog, r Reporter, opts ...Option) *Validator {
	v := &Validator{
		universe: u,
		catalog:  c,
		reporter: r,
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.logger == nil {
		v.logger = slog.Default()
	}

	return v
}

// Run checks every entity declaration for a zero-argument constructor, then
// every one-to-many property for a consistent back-reference. Every violation
// is reported; none stops the run.
//
// The returned bool is always false: the validator does not claim the
// elements, so other validators may process them afterwards. A non-nil error
// is fatal for the session.
func (v *Validator) Run(entities []*model.Declaration, oneToMany []*model.Property) (bool, error) {
	for _, decl := range entities {
		v.logger.Debug("checking entity constructor", slog.String("declaration", decl.QualifiedName))
		v.CheckNoArgConstructor(decl)
	}

	for _, p := range oneToMany {
		v.logger.Debug("checking one-to-many mapping", slog.String("property", p.ElementName()))

		err := v.CheckBidirectionalMapping(p)
		switch {
		case err == nil:
		case errors.Is(err, ErrContractViolation):
			v.logger.Warn("skipping unverifiable one-to-many property",
				slog.String("property", p.ElementName()), slog.Any("error", err))
		default:
			return false, fmt.Errorf("check %s: %w", p.ElementName(), err)
		}
	}

	return false, nil
}

// RunUniverse selects the entity-marked declarations and one-to-many-marked
// properties of the universe and runs both checks over them.
func (v *Validator) RunUniverse() (bool, error) {
	entities, oneToMany := v.Select()

	v.logger.Info("running relationship checks",
		slog.Int("entities", len(entities)),
		slog.Int("one_to_many", len(oneToMany)))

	return v.Run(entities, oneToMany)
}

// Select returns the declarations carrying the entity marker and the
// properties carrying the one-to-many marker, in universe order.
func (v *Validator) Select() ([]*model.Declaration, []*model.Property) {
	var (
		entities  []*model.Declaration
		oneToMany []*model.Property
	)

	for _, decl := range v.universe.Declarations() {
		if FindAnnotation(decl, v.catalog.Entity) != nil {
			entities = append(entities, decl)
		}

		for _, p := range decl.Properties {
			if FindAnnotation(p, v.catalog.OneToMany) != nil {
				oneToMany = append(oneToMany, p)
			}
		}
	}

	return entities, oneToMany
}
