package textnow

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// The feed is undocumented and its field names drift between payload variants.
// Every alternative-name resolution lives in this file, first match wins, so
// upstream schema drift stays a one-place change.

// flexString accepts JSON strings, numbers and null.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

// flexTime accepts RFC 3339 strings and numeric epoch values (seconds, with
// an optional fractional part). Unparseable values become the zero time; the
// caller treats those records as oldest rather than dropping them.
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(data []byte) error {
	*f = flexTime(time.Time{})
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				*f = flexTime(t)
				return nil
			}
		}
		return nil
	}
	if sec, err := strconv.ParseFloat(string(data), 64); err == nil {
		whole := int64(sec)
		frac := int64((sec - float64(whole)) * 1e9)
		*f = flexTime(time.Unix(whole, frac).UTC())
	}
	return nil
}

type rawAttachment struct {
	URL flexString `json:"url"`
}

type rawMessage struct {
	ID          flexString      `json:"id"`
	MessageID   flexString      `json:"message_id"`
	Contact     flexString      `json:"contact"`
	ContactVal  flexString      `json:"contact_value"`
	Number      flexString      `json:"number"`
	Message     flexString      `json:"message"`
	Body        flexString      `json:"body"`
	Date        flexTime        `json:"date"`
	Timestamp   flexTime        `json:"timestamp"`
	Direction   int             `json:"message_direction"`
	DirectionV2 int             `json:"direction"`
	Type        int             `json:"message_type"`
	MediaURL    flexString      `json:"media_url"`
	AttachURL   flexString      `json:"attachment_url"`
	Attachments []rawAttachment `json:"attachments"`
	ContentType flexString      `json:"content_type"`
}

type messagesEnvelope struct {
	Messages []rawMessage `json:"messages"`
}

type rawConversation struct {
	ID         flexString `json:"id"`
	ContactVal flexString `json:"contact_value"`
	Number     flexString `json:"number"`
	LastMsg    flexString `json:"last_message"`
	Message    flexString `json:"message"`
	LastTime   flexTime   `json:"last_message_time"`
	Date       flexTime   `json:"date"`
	Unread     int        `json:"unread_count"`
}

type conversationsEnvelope struct {
	Conversations []rawConversation `json:"conversations"`
}

func firstOf(values ...flexString) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}

func firstTimeOf(values ...flexTime) time.Time {
	for _, v := range values {
		if !time.Time(v).IsZero() {
			return time.Time(v)
		}
	}
	return time.Time{}
}

// direction code 2 marks outbound; everything else is inbound.
const directionOutbound = 2

func parseMessage(raw rawMessage) Message {
	var attachURL flexString
	if len(raw.Attachments) > 0 {
		attachURL = raw.Attachments[0].URL
	}

	return Message{
		ID:          firstOf(raw.ID, raw.MessageID),
		Contact:     firstOf(raw.ContactVal, raw.Number, raw.Contact),
		Body:        firstOf(raw.Message, raw.Body),
		Time:        firstTimeOf(raw.Date, raw.Timestamp),
		Outbound:    raw.Direction == directionOutbound || raw.DirectionV2 == directionOutbound,
		Type:        MessageType(raw.Type),
		MediaURL:    firstOf(raw.MediaURL, raw.AttachURL, attachURL),
		ContentType: string(raw.ContentType),
	}
}

func parseConversation(raw rawConversation) Conversation {
	return Conversation{
		Contact:     firstOf(raw.ContactVal, raw.Number, raw.ID),
		LastMessage: firstOf(raw.LastMsg, raw.Message),
		LastTime:    firstTimeOf(raw.LastTime, raw.Date),
		Unread:      raw.Unread,
	}
}

func decodeMessages(data []byte) ([]Message, error) {
	var envelope messagesEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(envelope.Messages))
	for _, raw := range envelope.Messages {
		messages = append(messages, parseMessage(raw))
	}
	return messages, nil
}

// The conversations endpoint returns either a bare array or an object with a
// "conversations" key depending on account age.
func decodeConversations(data []byte) ([]Conversation, error) {
	var raws []rawConversation
	if err := json.Unmarshal(data, &raws); err != nil {
		var envelope conversationsEnvelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, err
		}
		raws = envelope.Conversations
	}

	conversations := make([]Conversation, 0, len(raws))
	for _, raw := range raws {
		conversations = append(conversations, parseConversation(raw))
	}
	return conversations, nil
}
