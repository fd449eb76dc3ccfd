package check

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"relcheck/internal/model"
)

// PropertyType returns the declared type of a field or the return type of an accessor.
func PropertyType(p *model.Property) (*model.TypeRef, error) {
	switch p.Kind {
	case model.PropertyField, model.PropertyAccessor:
		return p.Type, nil
	default:
		return nil, unsupported(p)
	}
}

// PropertyName returns the canonical property name: the field name verbatim,
// or the accessor name with a "get" or "is" prefix stripped and decapitalized.
// Accessors without either prefix keep their name.
func PropertyName(p *model.Property) (string, error) {
	switch p.Kind {
	case model.PropertyField:
		return p.Name, nil
	case model.PropertyAccessor:
		if rest, ok := strings.CutPrefix(p.Name, "get"); ok {
			return decapitalize(rest), nil
		}

		if rest, ok := strings.CutPrefix(p.Name, "is"); ok {
			return decapitalize(rest), nil
		}

		return p.Name, nil
	default:
		return "", unsupported(p)
	}
}

// decapitalize lower-cases the first rune unless the first two runes are both
// upper case ("URL" stays "URL", "Parent" becomes "parent").
func decapitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}

	if second, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(second) && unicode.IsUpper(first) {
		return s
	}

	return string(unicode.ToLower(first)) + s[size:]
}

func unsupported(p *model.Property) error {
	return fmt.Errorf("%w: %s is %s", model.ErrUnsupportedPropertyKind, p.ElementName(), p.Kind)
}
