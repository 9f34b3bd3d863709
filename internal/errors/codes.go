package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidPrice  ErrorCode = "VALIDATION_005"
	ValidationInvalidTier   ErrorCode = "VALIDATION_006"
)

// Catalog error codes (CATALOG_*)
const (
	CatalogItemNotFound ErrorCode = "CATALOG_001"
	CatalogInvalidID    ErrorCode = "CATALOG_002"
	CatalogUnknownField ErrorCode = "CATALOG_003"
	CatalogFieldNotEnum ErrorCode = "CATALOG_004"
)

// Quote error codes (QUOTE_*)
const (
	QuoteNotFound          ErrorCode = "QUOTE_001"
	QuoteMissingPatient    ErrorCode = "QUOTE_002"
	QuoteInvalidStatus     ErrorCode = "QUOTE_003"
	QuoteIllegalTransition ErrorCode = "QUOTE_004"
	QuoteInvalidID         ErrorCode = "QUOTE_005"
	QuoteDuplicateLine     ErrorCode = "QUOTE_006"
)

// Cleanup error codes (CLEANUP_*)
const (
	CleanupUnknownField    ErrorCode = "CLEANUP_001"
	CleanupEmptyCorrection ErrorCode = "CLEANUP_002"
	CleanupNothingToApply  ErrorCode = "CLEANUP_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemStoreError         ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidPrice:  "Price must be a non-negative amount with at most two decimals",
	ValidationInvalidTier:   "Unknown discount tier",

	// Catalog errors
	CatalogItemNotFound: "Catalog item not found",
	CatalogInvalidID:    "Invalid catalog item ID format",
	CatalogUnknownField: "Unknown catalog field",
	CatalogFieldNotEnum: "Catalog field has no official value list",

	// Quote errors
	QuoteNotFound:          "Quote not found",
	QuoteMissingPatient:    "Patient name is required to save a quote",
	QuoteInvalidStatus:     "Unknown quote status",
	QuoteIllegalTransition: "Quote status transition is not allowed",
	QuoteInvalidID:         "Invalid quote ID format",
	QuoteDuplicateLine:     "Cart contains duplicate line identifiers",

	// Cleanup errors
	CleanupUnknownField:    "Unknown cleanup field",
	CleanupEmptyCorrection: "Correction source and target values are required",
	CleanupNothingToApply:  "No rows hold the source value",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemStoreError:         "Store operation failed",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
