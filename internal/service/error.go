package service

import "errors"

var (
	errNotAudio         = errors.New("file must be an audio file")
	errInvalidMediaURL  = errors.New("invalid media URL")
	errPasswordMismatch = errors.New("passwords do not match")
	errBadCredentials   = errors.New("invalid username or password")
	errMissingAPIKey    = errors.New("text-to-speech API key is required")
)

// Error ties a stable error code (internal/constants) to its cause so the
// boundary middleware can pick the HTTP status without string matching.
type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
