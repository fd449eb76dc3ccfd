// Package diagnostic collects and renders the findings of a validation
// session.
//
// Key capabilities:
//   - Severity-bucketed collection (errors, warnings, infos)
//   - Anchors on the offending element, its annotation and an attribute value
//   - Stable codes derived from the fixed message templates
//   - Text and JSON rendering
package diagnostic
