package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse documents the failure envelope
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Data    any    `json:"data"`
	Message string `json:"message" example:"trip not found"`
	Error   string `json:"error" example:"not_found"`
}
