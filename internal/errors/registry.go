package errors

// Registered error codes.
const (
	CodeConfigNotFound = "E101"
	CodeConfigParse    = "E102"
	CodeConfigInvalid  = "E103"
	CodeConfigEnv      = "E104"

	CodeCatalogRequest = "E201"
	CodeCatalogStatus  = "E202"
	CodeCatalogDecode  = "E203"
	CodeCatalogShort   = "E204"

	CodeSessionNotFound = "E301"
	CodeHandlerNotFound = "E302"
	CodeInvalidMessage  = "E303"
	CodeSessionLimit    = "E304"
	CodeSessionClosed   = "E305"

	CodePublishTarget = "E401"
	CodePublishWrite  = "E402"
	CodePublishUpload = "E403"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration (E101-E199)
	// ============================================

	CodeConfigNotFound: {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Pass --config with an existing displaycard.json or displaycard.toml",
	},
	CodeConfigParse: {
		Category: CategoryConfig,
		Message:  "Configuration file could not be parsed",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	CodeConfigEnv: {
		Category:   CategoryConfig,
		Message:    "Environment file could not be loaded",
		Suggestion: "Check the .env syntax: one KEY=value per line",
	},

	// ============================================
	// Catalog (E201-E299)
	// ============================================

	CodeCatalogRequest: {
		Category:   CategoryCatalog,
		Message:    "Product catalog request failed",
		Suggestion: "Check network access to catalog.base_url",
	},
	CodeCatalogStatus: {
		Category: CategoryCatalog,
		Message:  "Product catalog returned an unexpected status",
	},
	CodeCatalogDecode: {
		Category: CategoryCatalog,
		Message:  "Product catalog response could not be decoded",
	},
	CodeCatalogShort: {
		Category: CategoryCatalog,
		Message:  "Product catalog returned fewer products than requested",
	},

	// ============================================
	// Sessions and protocol (E301-E399)
	// ============================================

	CodeSessionNotFound: {
		Category:   CategorySession,
		Message:    "Session not found",
		Suggestion: "Reload the page to start a new session",
	},
	CodeHandlerNotFound: {
		Category: CategoryProtocol,
		Message:  "No handler for event",
	},
	CodeInvalidMessage: {
		Category: CategoryProtocol,
		Message:  "Invalid live message",
	},
	CodeSessionLimit: {
		Category:   CategorySession,
		Message:    "Session limit reached",
		Suggestion: "Raise session.max_sessions or lower session.attach_timeout",
	},
	CodeSessionClosed: {
		Category: CategorySession,
		Message:  "Session is closed",
	},

	// ============================================
	// Publish (E401-E499)
	// ============================================

	CodePublishTarget: {
		Category:   CategoryPublish,
		Message:    "No publish target configured",
		Suggestion: "Set publish.dir or publish.s3_bucket",
	},
	CodePublishWrite: {
		Category: CategoryPublish,
		Message:  "Writing the exported page failed",
	},
	CodePublishUpload: {
		Category:   CategoryPublish,
		Message:    "Uploading the exported page failed",
		Suggestion: "Check AWS credentials and that the bucket exists in publish.s3_region",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
