package models

// ErrorResponse is the JSON body of every non-200 API response.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}
