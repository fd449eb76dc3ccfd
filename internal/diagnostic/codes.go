package diagnostic

import "strings"

// Messages emitted by the relationship checks. Tooling asserts on the exact
// text, so these must not change.
const (
	MsgMissingNoArgConstructor = "missing no argument constructor"
	MsgNoMatchingManyToOne     = "No matching @ManyToOne annotation on "
	MsgMissingMappedBy         = "Missing mappedBy attribute"
	MsgWrongMappedBy           = "mappedBy attribute should be "
)

const (
	CodeMissingNoArgConstructor = "missing_no_arg_constructor"
	CodeMissingManyToOne        = "missing_many_to_one"
	CodeMissingMappedBy         = "missing_mapped_by"
	CodeWrongMappedBy           = "wrong_mapped_by"
)

var codePrefixes = []struct {
	prefix string
	code   string
}{
	{MsgMissingNoArgConstructor, CodeMissingNoArgConstructor},
	{MsgNoMatchingManyToOne, CodeMissingManyToOne},
	{MsgMissingMappedBy, CodeMissingMappedBy},
	{MsgWrongMappedBy, CodeWrongMappedBy},
}

// CodeFor returns the code for a known message, or "" for anything else.
func CodeFor(message string) string {
	for _, cp := range codePrefixes {
		if strings.HasPrefix(message, cp.prefix) {
			return cp.code
		}
	}

	return ""
}
