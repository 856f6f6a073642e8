package models

import "time"

// HealthResponse reports overall service health
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    string                 `json:"uptime"`
	Services  map[string]ServiceInfo `json:"services"`
}

// ServiceInfo reports the health of one backing service
type ServiceInfo struct {
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	LastCheck time.Time `json:"last_check"`
}

// ErrorResponse is the error body returned by every endpoint. Service names
// the upstream the failure came from; it is omitted for pure input-validation
// failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Service string `json:"service,omitempty"`
}
