package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors
	// ============================================

	"E001": {
		Category:   CategoryRuntime,
		Message:    "Fragment backing buffer is nil",
		Detail:     "A byte-range fragment was constructed from a nil slice. The backing buffer must exist at construction time, not just at emission.",
		Suggestion: "Pass a non-nil slice, or use WriteString for string content.",
		DocURL:     "https://vango.dev/docs/taghelper/errors/E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Fragment range out of bounds",
		Detail:   "The offset and length handed to Range do not fit inside the backing buffer.",
		DocURL:   "https://vango.dev/docs/taghelper/errors/E002",
	},
	"E003": {
		Category:   CategoryRuntime,
		Message:    "Scratch buffer smaller than requested",
		Detail:     "The scratch pool returned a slice shorter than the requested size, violating the Pool contract. The slice was released back to the pool.",
		Suggestion: "Check the pool implementation: Acquire(n) must return at least n bytes.",
		DocURL:     "https://vango.dev/docs/taghelper/errors/E003",
	},
	"E007": {
		Category: CategoryRuntime,
		Message:  "Unknown fragment kind",
		Detail:   "Emission encountered a fragment whose kind is outside the closed variant set. This indicates construction outside the package API.",
		DocURL:   "https://vango.dev/docs/taghelper/errors/E007",
	},
	"E008": {
		Category:   CategoryRuntime,
		Message:    "Span write on closed buffer",
		Detail:     "WriteSpan needs pooled scratch memory, and a closed buffer has already released its scratch bookkeeping; a fresh acquisition could never be returned to the pool.",
		Suggestion: "Call Reset to reuse the buffer for another render pass.",
		DocURL:     "https://vango.dev/docs/taghelper/errors/E008",
	},

	// ============================================
	// Validation Errors
	// ============================================

	"E004": {
		Category: CategoryValidation,
		Message:  "Directive already registered",
		Detail:   "A native directive with this name was registered earlier. Directive names are unique per registry.",
		DocURL:   "https://vango.dev/docs/taghelper/errors/E004",
	},
	"E005": {
		Category: CategoryValidation,
		Message:  "Directive name is empty",
		Detail:   "Every registered directive needs a non-empty name; the name is the lookup key for rule sets.",
		DocURL:   "https://vango.dev/docs/taghelper/errors/E005",
	},

	// ============================================
	// Config Errors
	// ============================================

	"E006": {
		Category:   CategoryConfig,
		Message:    "Invalid directive manifest",
		Detail:     "The directive manifest could not be decoded.",
		Suggestion: "The manifest is a JSON object with a top-level \"directives\" array; see the documentation for the schema.",
		DocURL:     "https://vango.dev/docs/taghelper/errors/E006",
	},
}
