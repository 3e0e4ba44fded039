package models

// ErrorResponse is the error body shared by all handlers.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

func NewValidationErrorResponse(fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	}
}

type SignupResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse is returned by the standalone photo upload endpoint.
type UploadResponse struct {
	FilePath string `json:"file_path"`
}
