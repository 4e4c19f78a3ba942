package common

// ErrorResponse is the envelope every failed request is answered with
type ErrorResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// SuccessResponse wraps payloads of the detail, update and delete endpoints
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
