// Package check implements the relationship-mapping checks.
//
// Two invariants are enforced over a model.Universe:
//
//   - every entity-marked declaration has a zero-argument constructor
//     (CheckNoArgConstructor);
//   - every one-to-many property has a many-to-one back-reference of the
//     owning type on its element type, named by the mappedBy attribute
//     (CheckBidirectionalMapping).
//
// Violations are reported to a Reporter and never returned as errors. Errors
// are reserved for input the model source must not produce.
package check
