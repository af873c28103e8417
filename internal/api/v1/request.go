package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

// SessionRequest carries the provider credentials every messaging call
// needs. Clients hold their own cookies; nothing is cached server-side.
type SessionRequest struct {
	Username  string `json:"username" form:"username" validate:"required"`
	SIDCookie string `json:"sid_cookie" form:"sid_cookie" validate:"required"`
	CSRFToken string `json:"csrf_token" form:"csrf_token" validate:"required"`
}

func (r SessionRequest) session() textnow.Session {
	return textnow.Session{
		Username:  r.Username,
		SIDCookie: r.SIDCookie,
		CSRFToken: r.CSRFToken,
	}
}

// textnowSessionFromQuery reads credentials from the media proxy's query
// string. The media host takes absolute URLs, so no username is needed.
func textnowSessionFromQuery(c *fiber.Ctx) textnow.Session {
	return textnow.Session{
		SIDCookie: c.Query("sid"),
		CSRFToken: c.Query("csrf"),
	}
}

type ConversationsRequest struct {
	SessionRequest
}

type MessagesRequest struct {
	SessionRequest
	Number string `json:"number" form:"number" validate:"required"`
}

type SendTextRequest struct {
	SessionRequest
	Number  string `json:"number" form:"number" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// SendAttachmentRequest is the multipart form accompanying an uploaded
// file on the media and voice send routes.
type SendAttachmentRequest struct {
	SessionRequest
	Number  string `json:"number" form:"number" validate:"required"`
	Caption string `json:"message" form:"message"`
}

type SynthesizeRequest struct {
	Text   string `json:"text" validate:"required"`
	APIKey string `json:"api_key" validate:"required"`
	Voice  string `json:"voice"`
	Accent string `json:"accent"`
	Mood   string `json:"mood"`
	Tone   string `json:"tone"`
}

type SignUpRequest struct {
	Username        string `json:"username" validate:"required,min=3"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	TextNowUsername string `json:"textnow_username" validate:"required"`
	SIDCookie       string `json:"sid_cookie" validate:"required"`
	CSRFToken       string `json:"csrf_token" validate:"required"`
}

type LogInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type GetUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type UpdateUserRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	Username        string `json:"username" validate:"required"`
	TextNowUsername string `json:"textnow_username" validate:"required"`
	SIDCookie       string `json:"sid_cookie" validate:"required"`
	CSRFToken       string `json:"csrf_token" validate:"required"`
	GeminiAPIKey    string `json:"gemini_api_key"`
}
