package style

import "strings"

// Decl is a single property:value declaration.
type Decl struct {
	Property string
	Value    string
}

// Rule is an ordered set of declarations. The zero value is an empty rule.
// Rules are immutable; every constructor copies its input.
type Rule struct {
	decls []Decl
}

// New creates a rule from the given declarations, normalizing property names.
func New(decls ...Decl) Rule {
	out := make([]Decl, 0, len(decls))
	for _, d := range decls {
		out = append(out, Decl{Property: normalizeProperty(d.Property), Value: d.Value})
	}
	return Rule{decls: out}
}

// Pairs creates a rule from alternating property/value strings.
// A trailing property without a value is ignored.
//
//	style.Pairs("color", "red", "padding_top", "15px")
func Pairs(kv ...string) Rule {
	decls := make([]Decl, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		decls = append(decls, Decl{Property: kv[i], Value: kv[i+1]})
	}
	return New(decls...)
}

// Decls returns a copy of the rule's declarations.
func (r Rule) Decls() []Decl {
	out := make([]Decl, len(r.decls))
	copy(out, r.decls)
	return out
}

// Len returns the number of declarations.
func (r Rule) Len() int {
	return len(r.decls)
}

// IsEmpty reports whether the rule has no declarations.
func (r Rule) IsEmpty() bool {
	return len(r.decls) == 0
}

// CSS renders the declaration block body, one "prop:value;" per line,
// in insertion order.
func (r Rule) CSS() string {
	var b strings.Builder
	for _, d := range r.decls {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	return b.String()
}

// String implements fmt.Stringer.
func (r Rule) String() string {
	return r.CSS()
}

func normalizeProperty(p string) string {
	return strings.ReplaceAll(strings.TrimSpace(p), "_", "-")
}
