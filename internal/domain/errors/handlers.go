package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PROMOTION_NOT_FOUND"
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}
