package handlers

// ErrorResponse is the {"errorMessage": ...} error body returned for rejected input.
type ErrorResponse struct {
	status       int
	ErrorMessage string `json:"errorMessage"`
}

// NewErrorResponse creates an error that huma writes with the given status.
func NewErrorResponse(status int, message string) *ErrorResponse {
	return &ErrorResponse{status: status, ErrorMessage: message}
}

func (e *ErrorResponse) Error() string {
	return e.ErrorMessage
}

// GetStatus implements huma.StatusError.
func (e *ErrorResponse) GetStatus() int {
	return e.status
}
