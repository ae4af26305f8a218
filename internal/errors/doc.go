// Package errors provides structured, coded errors for hoist.
//
// Every error carries a short code (e.g. "E101") that maps to a category,
// a one-line message, a longer explanation and a documentation link. The
// position of the offending node in the element tree is recorded as a
// path such as "body > div[1] > img[0]" so that a broken constructor call
// deep inside a page can be found without a debugger.
//
// # Error Categories
//
//   - markup: element tree construction problems (missing required attributes)
//   - style: inline style declarations that cannot be parsed
//   - render: serialization failures
//   - config: configuration loading and validation
//   - cli: command line usage errors
//
// # Usage
//
//	err := errors.New("E101").
//	    WithPath("body > div[0] > img[2]").
//	    WithSuggestion(`pass a non-empty src: el.Img("/logo.png")`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Missing required attribute
//	//
//	//   at body > div[0] > img[2]
//	//
//	//   A tag constructor was called without one of its required attributes.
//	//
//	//   Hint: pass a non-empty src: el.Img("/logo.png")
package errors
