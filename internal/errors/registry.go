package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// Well-known codes.
const (
	CodeMissingRequiredAttribute = "E101"
	CodeInvalidStyle             = "E102"
	CodeUnknownNodeKind          = "E103"
	CodeInvalidConfig            = "E120"
	CodeConfigNotFound           = "E121"
	CodeUnknownMode              = "E140"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup Errors (E100-E119)
	// ============================================

	CodeMissingRequiredAttribute: {
		Category: CategoryMarkup,
		Message:  "Missing required attribute",
		Detail:   "A tag constructor was called without one of its required attributes.",
	},
	CodeInvalidStyle: {
		Category: CategoryStyle,
		Message:  "Invalid style declaration",
		Detail:   "The inline style text could not be parsed into property:value declarations.",
	},
	CodeUnknownNodeKind: {
		Category: CategoryRender,
		Message:  "Unknown node kind",
		Detail:   "The renderer met a node whose kind it does not know how to serialize.",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	CodeInvalidConfig: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "hoist.json or hoist.yaml contains a value outside its allowed range.",
	},
	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "Neither hoist.json nor hoist.yaml exists in the project directory.",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	CodeUnknownMode: {
		Category: CategoryCLI,
		Message:  "Unknown render mode",
		Detail:   "The render mode must be one of html, css or js.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
