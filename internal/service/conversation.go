package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

// The feed has no stable conversation list, so conversations are derived by
// scanning one large page of raw messages and keeping the newest message per
// normalized contact.
const conversationPageSize = 1000

const (
	previewImage = "📷 Image"
	previewVoice = "🎤 Voice message"
	previewMedia = "📷 Media"
	previewLimit = 50
)

type ConversationSummary struct {
	ID              string    `json:"id"`
	Number          string    `json:"number"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	Unread          int       `json:"unread"`
	LastMediaURL    string    `json:"last_media_url,omitempty"`
}

type ConversationService interface {
	List(ctx context.Context, s textnow.Session) []ConversationSummary
}

type conversation struct {
	client textnow.Client
	logger *zap.Logger
}

func NewConversationService(client textnow.Client, logger *zap.Logger) ConversationService {
	return &conversation{client: client, logger: logger}
}

// List never fails toward the caller: if the message feed is down it falls
// back to the provider's conversations endpoint, and if that is down too it
// returns an empty list.
func (c *conversation) List(ctx context.Context, s textnow.Session) []ConversationSummary {
	messages, err := c.client.Messages(ctx, s, "", conversationPageSize)
	if err == nil {
		return DeriveConversations(messages)
	}

	c.logger.Warn("Message feed unavailable, falling back to conversations endpoint",
		zap.String("username", s.Username),
		zap.Error(err))

	upstream, err := c.client.Conversations(ctx, s)
	if err != nil {
		c.logger.Error("Both conversation sources failed",
			zap.String("username", s.Username),
			zap.Error(err))
		return []ConversationSummary{}
	}

	summaries := make([]ConversationSummary, 0, len(upstream))
	for _, conv := range upstream {
		number := conv.Contact
		if number == "" {
			number = "unknown"
		}
		summaries = append(summaries, ConversationSummary{
			ID:              number,
			Number:          number,
			LastMessage:     conv.LastMessage,
			LastMessageTime: conv.LastTime,
			Unread:          conv.Unread,
		})
	}

	sortByRecency(summaries)
	return summaries
}

// NormalizeContact strips the formatting variants the feed uses for the same
// phone number: whitespace, parentheses, hyphens and a leading plus. The
// result is the conversation dedup key. Normalizing an already normalized
// value is a no-op.
func NormalizeContact(contact string) string {
	var b strings.Builder
	b.Grow(len(contact))
	for _, r := range contact {
		switch r {
		case ' ', '\t', '-', '(', ')', '+':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// DeriveConversations reduces a raw message scan to one summary per contact,
// newest first. The merge runs twice: the feed can present one contact under
// several formatting variants, and the second normalize-and-merge pass
// collapses artifacts the first pass can leave behind.
func DeriveConversations(messages []textnow.Message) []ConversationSummary {
	summaries := mergeByContact(messages, func(msg textnow.Message) ConversationSummary {
		return ConversationSummary{
			LastMessage:     previewContent(msg),
			LastMessageTime: msg.Time,
			LastMediaURL:    msg.MediaURL,
		}
	})

	deduped := make([]ConversationSummary, 0, len(summaries))
	index := make(map[string]int, len(summaries))
	for _, summary := range summaries {
		key := NormalizeContact(summary.Number)
		if at, seen := index[key]; seen {
			if summary.LastMessageTime.After(deduped[at].LastMessageTime) {
				deduped[at] = summary
			}
			continue
		}
		index[key] = len(deduped)
		deduped = append(deduped, summary)
	}

	sortByRecency(deduped)
	return deduped
}

func mergeByContact(messages []textnow.Message, summarize func(textnow.Message) ConversationSummary) []ConversationSummary {
	index := make(map[string]int)
	var out []ConversationSummary

	for _, msg := range messages {
		number := NormalizeContact(msg.Contact)
		if number == "" || number == "unknown" {
			continue
		}

		summary := summarize(msg)
		summary.ID = number
		summary.Number = number

		at, seen := index[number]
		if !seen {
			index[number] = len(out)
			out = append(out, summary)
			continue
		}

		// Overwrite only on a strictly later message, and replace content,
		// time and media URL together so a summary never mixes fields from
		// messages of different times.
		if summary.LastMessageTime.After(out[at].LastMessageTime) {
			out[at] = summary
		}
	}

	return out
}

func previewContent(msg textnow.Message) string {
	switch {
	case msg.Type == textnow.TypeVoice:
		return previewVoice
	case msg.Type == textnow.TypeMedia && msg.MediaURL != "":
		return previewImage
	case strings.HasPrefix(msg.Body, textnow.MediaHost):
		return previewMedia
	}

	runes := []rune(msg.Body)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return msg.Body
}

func sortByRecency(summaries []ConversationSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastMessageTime.After(summaries[j].LastMessageTime)
	})
}
