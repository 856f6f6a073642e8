package services

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCacheMiss is returned by the cache when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// ExternalAPIError reports a failed upstream call. StatusCode is zero when the
// failure happened below HTTP (DNS, connect, timeout); handlers fall back to
// 502 in that case.
type ExternalAPIError struct {
	Message    string
	StatusCode int
	Service    string
}

func (e *ExternalAPIError) Error() string {
	return e.Message
}

// HTTPStatus returns the status to surface downstream
func (e *ExternalAPIError) HTTPStatus() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	return http.StatusBadGateway
}

// ValidationError reports malformed input. It is terminal: no upstream call is
// attempted and no service tag is attached.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PayloadTooLargeError reports a downloaded document exceeding the configured
// size ceiling, detected before any parsing
type PayloadTooLargeError struct {
	SizeMB  int
	LimitMB int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("PDF too large: %dMB (max %dMB)", e.SizeMB, e.LimitMB)
}
