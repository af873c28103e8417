package service

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/internal/constants"
	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

const (
	MessageTypeSMS   = "sms"
	MessageTypeMMS   = "mms"
	MessageTypeVoice = "voice"

	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// Content types assumed when the feed omits one.
const (
	defaultImageContentType = "image/jpeg"
	defaultAudioContentType = "audio/mpeg"
)

// MessageView is a single message normalized for display.
type MessageView struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Number      string    `json:"number"`
	Date        time.Time `json:"date"`
	Direction   string    `json:"direction"`
	Type        string    `json:"type"`
	MediaURL    string    `json:"media_url,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
}

type MessageService interface {
	List(ctx context.Context, s textnow.Session, contact string) ([]MessageView, error)
}

type message struct {
	client textnow.Client
	logger *zap.Logger
}

func NewMessageService(client textnow.Client, logger *zap.Logger) MessageService {
	return &message{client: client, logger: logger}
}

func (m *message) List(ctx context.Context, s textnow.Session, contact string) ([]MessageView, error) {
	// page_size=0 asks the provider for the whole thread.
	raw, err := m.client.Messages(ctx, s, contact, 0)
	if err != nil {
		m.logger.Warn("Failed to fetch conversation messages",
			zap.String("username", s.Username),
			zap.String("contact", contact),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeUpstream, err)
	}

	views := make([]MessageView, 0, len(raw))
	for _, msg := range raw {
		views = append(views, NormalizeMessage(msg, contact))
	}

	// Chronological display order, oldest first.
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date.Before(views[j].Date)
	})

	return views, nil
}

// NormalizeMessage applies the display policy to one feed record: direction
// mapping, media URL resolution with a body fallback, type classification in
// voice > media > text priority, and content-type defaulting.
func NormalizeMessage(msg textnow.Message, fallbackContact string) MessageView {
	direction := DirectionReceived
	if msg.Outbound {
		direction = DirectionSent
	}

	bodyIsMediaURL := strings.HasPrefix(strings.TrimSpace(msg.Body), textnow.MediaHost)

	mediaURL := msg.MediaURL
	if mediaURL == "" && bodyIsMediaURL {
		mediaURL = strings.TrimSpace(msg.Body)
	}
	// A malformed URL drops the media field, never the message.
	if mediaURL != "" {
		if _, err := url.ParseRequestURI(mediaURL); err != nil {
			mediaURL = ""
		}
	}

	msgType := MessageTypeSMS
	switch {
	case msg.Type == textnow.TypeVoice:
		msgType = MessageTypeVoice
	case msg.Type == textnow.TypeMedia || mediaURL != "" || bodyIsMediaURL:
		msgType = MessageTypeMMS
	}

	contentType := msg.ContentType
	if contentType == "" {
		switch msgType {
		case MessageTypeMMS:
			contentType = defaultImageContentType
		case MessageTypeVoice:
			contentType = defaultAudioContentType
		}
	}

	number := msg.Contact
	if number == "" {
		number = fallbackContact
	}

	return MessageView{
		ID:          msg.ID,
		Content:     msg.Body,
		Number:      number,
		Date:        msg.Time,
		Direction:   direction,
		Type:        msgType,
		MediaURL:    mediaURL,
		ContentType: contentType,
	}
}
