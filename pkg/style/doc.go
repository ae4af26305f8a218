// Package style models inline CSS declarations and derives content-addressed
// class names for them.
//
// A Rule is an ordered, immutable list of property:value declarations.
// Property names written with underscores are normalized to hyphens, so
// Pairs("padding_top", "15px") and Pairs("padding-top", "15px") are the
// same rule.
//
// # Class names
//
// ClassName hashes the application secret together with the rendered CSS
// text and keeps a short hex prefix:
//
//	rule := style.Pairs("color", "red")
//	rule.CSS()            // "color:red;\n"
//	style.ClassName(rule) // "o" + 5 hex chars, stable for a given secret
//
// Identical declarations therefore always map to the same class, which is
// what lets a page register each distinct style exactly once.
//
// The secret is process-wide and should be set once at startup with
// SetSecret. When no secret is configured DefaultSecret is used.
package style
