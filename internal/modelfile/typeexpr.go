package modelfile

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// TypeExpr is a parsed type expression such as "java.util.Set<Child>".
type TypeExpr struct {
	Name string
	Args []TypeExpr
}

// String renders the expression in canonical form.
func (t TypeExpr) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}

	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}

	return t.Name + "<" + strings.Join(args, ", ") + ">"
}

// ParseTypeExpr parses "Name", "pkg.Name" and "Name<Arg, Other<X>>".
func ParseTypeExpr(s string) (TypeExpr, error) {
	if strings.TrimSpace(s) == "" {
		return TypeExpr{}, errors.New("empty type")
	}

	p := &typeParser{src: s}

	t, err := p.parseType()
	if err != nil {
		return TypeExpr{}, fmt.Errorf("invalid type %q: %w", s, err)
	}

	p.skipSpace()

	if p.pos != len(p.src) {
		return TypeExpr{}, fmt.Errorf("invalid type %q: unexpected %q at offset %d", s, p.src[p.pos:], p.pos)
	}

	return t, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) parseType() (TypeExpr, error) {
	p.skipSpace()

	name := p.ident()
	if name == "" {
		return TypeExpr{}, fmt.Errorf("expected type name at offset %d", p.pos)
	}

	t := TypeExpr{Name: name}

	p.skipSpace()

	if !p.consume('<') {
		return t, nil
	}

	for {
		arg, err := p.parseType()
		if err != nil {
			return TypeExpr{}, err
		}

		t.Args = append(t.Args, arg)

		p.skipSpace()

		switch {
		case p.consume(','):
		case p.consume('>'):
			return t, nil
		default:
			return TypeExpr{}, fmt.Errorf("expected ',' or '>' at offset %d", p.pos)
		}
	}
}

func (p *typeParser) ident() string {
	start := p.pos

	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}

	return p.src[start:p.pos]
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c == '.' || c == '/' ||
		c >= 0x80 || unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}

func (p *typeParser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}

	return false
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}
