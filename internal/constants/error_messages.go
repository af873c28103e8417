package constants

const (
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeUsernameTaken      = "USERNAME_TAKEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodePasswordMismatch   = "PASSWORD_MISMATCH"
	ErrCodeInvalidMediaURL    = "INVALID_MEDIA_URL"
	ErrCodeNotAudio           = "NOT_AUDIO"
	ErrCodeUpstream           = "UPSTREAM_ERROR"
	ErrCodeSynthesis          = "SYNTHESIS_ERROR"
	ErrCodeSynthesisNoAudio   = "SYNTHESIS_NO_AUDIO"
	ErrCodeMissingAPIKey      = "MISSING_API_KEY"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody = "failed to parse request body"
	ErrMsgValidation         = "request failed validation"
	ErrMsgUserNotFound       = "user not found"
	ErrMsgUsernameTaken      = "username already exists"
	ErrMsgInvalidCredentials = "invalid username or password"
	ErrMsgPasswordMismatch   = "passwords do not match"
	ErrMsgInvalidMediaURL    = "invalid media URL"
	ErrMsgNotAudio           = "file must be an audio file"
	ErrMsgUpstream           = "upstream provider request failed"
	ErrMsgSynthesis          = "failed to generate audio"
	ErrMsgSynthesisNoAudio   = "no audio data received from provider"
	ErrMsgMissingAPIKey      = "text-to-speech API key is required"
	ErrMsgInternalError      = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeValidation:         ErrMsgValidation,
	ErrCodeUserNotFound:       ErrMsgUserNotFound,
	ErrCodeUsernameTaken:      ErrMsgUsernameTaken,
	ErrCodeInvalidCredentials: ErrMsgInvalidCredentials,
	ErrCodePasswordMismatch:   ErrMsgPasswordMismatch,
	ErrCodeInvalidMediaURL:    ErrMsgInvalidMediaURL,
	ErrCodeNotAudio:           ErrMsgNotAudio,
	ErrCodeUpstream:           ErrMsgUpstream,
	ErrCodeSynthesis:          ErrMsgSynthesis,
	ErrCodeSynthesisNoAudio:   ErrMsgSynthesisNoAudio,
	ErrCodeMissingAPIKey:      ErrMsgMissingAPIKey,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeValidation, ErrCodePasswordMismatch,
		ErrCodeInvalidMediaURL, ErrCodeNotAudio, ErrCodeMissingAPIKey:
		return 400
	case ErrCodeInvalidCredentials:
		return 401
	case ErrCodeUserNotFound:
		return 404
	case ErrCodeUsernameTaken:
		return 409
	case ErrCodeUpstream, ErrCodeSynthesis, ErrCodeSynthesisNoAudio:
		return 502
	default:
		return 500
	}
}
