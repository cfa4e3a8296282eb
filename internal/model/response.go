package model

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewListResponse wraps a collection and its length.
func NewListResponse(count int, data any) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// NewErrorResponse wraps a failure message. detail is appended when non-empty.
func NewErrorResponse(message string, detail string) Response {
	if detail != "" {
		message = message + ": " + detail
	}
	return Response{Success: false, Message: message}
}
