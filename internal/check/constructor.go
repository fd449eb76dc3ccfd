package check

import (
	"relcheck/internal/diagnostic"
	"relcheck/internal/model"
)

// CheckNoArgConstructor reports an entity declaration that has no
// zero-argument constructor. The implicit default constructor counts.
func (v *Validator) CheckNoArgConstructor(decl *model.Declaration) {
	for _, ctor := range decl.AllConstructors() {
		if ctor.Arity() == 0 {
			return
		}
	}

	anchors := []diagnostic.Anchor{diagnostic.OnElement(decl)}
	if entity := FindAnnotation(decl, v.catalog.Entity); entity != nil {
		anchors = append(anchors, diagnostic.OnAnnotation(entity))
	}

	v.reporter.Report(diagnostic.DiagnosticError, diagnostic.MsgMissingNoArgConstructor, anchors...)
}
