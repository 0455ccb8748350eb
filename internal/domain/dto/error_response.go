package dto

import "time"

// ErrorResponse is the standardized JSON error body for transport-level
// failures (malformed payloads, panics). Outcome-level failures for the
// watch go through SalesMessage instead.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid request body"`
	ErrorDetails string    `json:"error,omitempty" example:"unexpected EOF"`
	Timestamp    time.Time `json:"timestamp" example:"2024-07-17T15:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse, flattening the inner error
// (if any) into ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
