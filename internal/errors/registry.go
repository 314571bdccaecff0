package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Template Authoring Errors (E001-E039)
	// ============================================

	"E001": {
		Category: CategoryTemplate,
		Message:  "Boolean attribute bindings must be the sole attribute content",
		Detail:   "A ?attr binding cannot be mixed with literal text or other bindings in the same attribute value. Write ?disabled={{}} with nothing else inside the value.",
		DocURL:   "https://weft.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryDirective,
		Message:  "classMap must be the only binding in a class attribute",
		Detail:   "The classMap directive writes the whole class attribute. Use it as the single binding of class=, optionally after static class names.",
		DocURL:   "https://weft.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryDirective,
		Message:  "styleMap must be the only binding in a style attribute",
		Detail:   "The styleMap directive writes the whole style attribute. Use it as the single binding of style=.",
		DocURL:   "https://weft.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryDirective,
		Message:  "repeat can only be used in node position",
		Detail:   "The repeat directive manages a sequence of child ranges and must be bound where element children go, not inside an attribute.",
		DocURL:   "https://weft.dev/docs/errors/E004",
	},
	"E005": {
		Category: CategoryTemplate,
		Message:  "Event binding value is not a handler",
		Detail:   "An @event binding accepts nil, a func(*dom.Event), a func(any, *dom.Event), an EventHandler, or a ListenerSpec.",
		DocURL:   "https://weft.dev/docs/errors/E005",
	},

	// ============================================
	// Render Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryRender,
		Message:  "Render target is not an element",
		Detail:   "Render needs an element or fragment container to own the root part.",
		DocURL:   "https://weft.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryRender,
		Message:  "Template skeleton failed to parse",
		Detail:   "The static markup of the template could not be parsed as HTML.",
		DocURL:   "https://weft.dev/docs/errors/E041",
	},

	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No weft.json was found in the project directory or any parent.",
		DocURL:   "https://weft.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "weft.json exists but could not be parsed as JSON.",
		DocURL:   "https://weft.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has a value outside its allowed range.",
		DocURL:   "https://weft.dev/docs/errors/E102",
	},

	// ============================================
	// Publish Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryPublish,
		Message:  "Publish store write failed",
		Detail:   "A rendered page could not be written to the publish store.",
		DocURL:   "https://weft.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryPublish,
		Message:  "No pages registered",
		Detail:   "Publishing needs at least one registered page to render.",
		DocURL:   "https://weft.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "A published file could not be uploaded to the remote store.",
		DocURL:   "https://weft.dev/docs/errors/E122",
	},
}

// Register adds a custom error template to the registry.
// Existing codes are not overwritten.
func Register(code string, template ErrorTemplate) bool {
	if _, exists := registry[code]; exists {
		return false
	}
	registry[code] = template
	return true
}

// Lookup returns the registered template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
