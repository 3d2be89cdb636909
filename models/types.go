package models

// AskRequest is decoded loosely so a non-string question can be told apart
// from a missing one.
type AskRequest map[string]any

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type AskResponse struct {
	Answer    string `json:"answer"`
	Model     string `json:"model"`
	Timestamp string `json:"timestamp"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
