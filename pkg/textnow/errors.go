package textnow

import "fmt"

const (
	ErrorCodeServerError  = "SERVER_ERROR"  // 5xx from the provider
	ErrorCodeTimeout      = "TIMEOUT"       // context timeout or cancellation
	ErrorCodeRejected     = "REJECTED"      // 400-class rejection of the request
	ErrorCodeUnauthorized = "UNAUTHORIZED"  // session cookies no longer valid
	ErrorCodeNetworkError = "NETWORK_ERROR" // connection failures
	ErrorCodeBadResponse  = "BAD_RESPONSE"  // body did not decode or lacked required fields
)

// UpstreamError reports a failed call to the provider. Status carries the
// provider's HTTP status when one was received, zero otherwise.
type UpstreamError struct {
	Code   string
	Status int
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("textnow: %s (status %d)", e.Code, e.Status)
	}
	return fmt.Sprintf("textnow: %s", e.Code)
}

func errorForStatus(status int) *UpstreamError {
	switch {
	case status == 401 || status == 403:
		return &UpstreamError{Code: ErrorCodeUnauthorized, Status: status}
	case status >= 400 && status < 500:
		return &UpstreamError{Code: ErrorCodeRejected, Status: status}
	default:
		return &UpstreamError{Code: ErrorCodeServerError, Status: status}
	}
}
