package style

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync/atomic"
	"time"
)

const (
	// DefaultSecret seeds class names when the host configures no secret.
	DefaultSecret = "123123"

	// ClassPrefix keeps generated names valid CSS identifiers even when the
	// hash starts with a digit.
	ClassPrefix = "o"

	// HashLength is the number of hex characters kept from the digest.
	HashLength = 5
)

var secret atomic.Pointer[string]

// SetSecret sets the process-wide secret used by ClassName and ElementID.
// An empty secret restores DefaultSecret.
func SetSecret(s string) {
	if s == "" {
		secret.Store(nil)
		return
	}
	secret.Store(&s)
}

// Secret returns the secret currently in effect.
func Secret() string {
	if s := secret.Load(); s != nil {
		return *s
	}
	return DefaultSecret
}

// Generated is the hoisted form of a rule: its class name and CSS body.
type Generated struct {
	Class string
	CSS   string
}

// Block renders the generated rule as a stylesheet entry.
func (g Generated) Block() string {
	return "." + g.Class + " {\n" + g.CSS + "}\n"
}

// Generate hoists a rule using the current secret.
func Generate(r Rule) Generated {
	css := r.CSS()
	return Generated{Class: hashName(Secret() + css), CSS: css}
}

// ClassName returns the content-addressed class name for r under the
// current secret.
func ClassName(r Rule) string {
	return hashName(Secret() + r.CSS())
}

// ClassNameWithSecret is ClassName with an explicit secret.
func ClassNameWithSecret(r Rule, secret string) string {
	return hashName(secret + r.CSS())
}

// ElementID derives a stable id for an element from the given parts.
func ElementID(parts ...string) string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return hashName(string(buf))
}

// LegacyClassName derives a class name from a fixed salt, the CSS text and
// the current minute.
//
// Deprecated: the name changes every minute for identical styles, which
// breaks caching and makes output nondeterministic. Use ClassName.
func LegacyClassName(r Rule, now time.Time) string {
	minute := strconv.FormatInt(now.Unix()/60, 10)
	return hashName("hoist" + minute + r.CSS())
}

func hashName(input string) string {
	sum := sha256.Sum256([]byte(input))
	return ClassPrefix + hex.EncodeToString(sum[:])[:HashLength]
}
