package style

import (
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/vango-dev/hoist/internal/errors"
)

// Parse builds a Rule from inline CSS declaration text such as
// "color: red; padding-top: 15px". Declarations keep their source order.
func Parse(text string) (Rule, error) {
	parser := css.NewParser(parse.NewInputString(text), true)

	var decls []Decl
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				return Rule{}, errors.New(errors.CodeInvalidStyle).Wrap(err)
			}
			return New(decls...), nil

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			value := joinValues(parser.Values())
			if value == "" {
				return Rule{}, errors.New(errors.CodeInvalidStyle).
					WithDetail("declaration " + strconv.Quote(string(data)) + " has no value")
			}
			decls = append(decls, Decl{
				Property: string(data),
				Value:    value,
			})
		}
	}
}

// MustParse is like Parse but panics on malformed input.
// Intended for package-level style constants.
func MustParse(text string) Rule {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

// joinValues flattens value tokens, collapsing whitespace runs to one space.
// A "!" delimiter is always preceded by a space so "red !important" reads
// the same as the text given to Pairs.
func joinValues(tokens []css.Token) string {
	var b strings.Builder
	pendingSpace := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			pendingSpace = b.Len() > 0
			continue
		}
		if t.TokenType == css.DelimToken && string(t.Data) == "!" && b.Len() > 0 {
			pendingSpace = true
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
