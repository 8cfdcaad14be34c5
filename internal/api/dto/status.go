package dto

// ErrorResponse is the body of every non-2xx reply. RequestID echoes the
// X-Request-ID header so callers can match a failure to the server log.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	FloorPlan string `json:"floor_plan"`
}
