package textnow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessages_AlternativeFieldNames(t *testing.T) {
	payload := []byte(`{"messages": [
		{"id": 1, "contact_value": "+1 (555) 000-1111", "message": "hi",
		 "date": "2024-03-01T10:00:00Z", "message_direction": 1, "message_type": 1},
		{"message_id": "abc", "number": "5550001111", "body": "hello",
		 "timestamp": 1709287200, "direction": 2, "message_type": 2,
		 "attachment_url": "https://media.textnow.com/a.jpg"},
		{"id": 3, "contact": "5550002222", "message": "pic",
		 "date": "2024-03-01T12:00:00Z", "message_type": 2,
		 "attachments": [{"url": "https://media.textnow.com/b.jpg"}]}
	]}`)

	messages, err := decodeMessages(payload)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, "1", messages[0].ID)
	assert.Equal(t, "+1 (555) 000-1111", messages[0].Contact)
	assert.Equal(t, "hi", messages[0].Body)
	assert.False(t, messages[0].Outbound)
	assert.Equal(t, TypeText, messages[0].Type)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), messages[0].Time)

	assert.Equal(t, "abc", messages[1].ID)
	assert.Equal(t, "5550001111", messages[1].Contact)
	assert.Equal(t, "hello", messages[1].Body)
	assert.True(t, messages[1].Outbound)
	assert.Equal(t, "https://media.textnow.com/a.jpg", messages[1].MediaURL)
	assert.Equal(t, time.Unix(1709287200, 0).UTC(), messages[1].Time)

	assert.Equal(t, "https://media.textnow.com/b.jpg", messages[2].MediaURL)
}

func TestDecodeMessages_PrefersFirstMatchingField(t *testing.T) {
	payload := []byte(`{"messages": [
		{"id": "primary", "message_id": "secondary",
		 "contact_value": "first", "number": "second", "contact": "third",
		 "message": "from-message", "body": "from-body",
		 "media_url": "https://media.textnow.com/1.jpg",
		 "attachment_url": "https://media.textnow.com/2.jpg",
		 "message_type": 2}
	]}`)

	messages, err := decodeMessages(payload)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assert.Equal(t, "primary", messages[0].ID)
	assert.Equal(t, "first", messages[0].Contact)
	assert.Equal(t, "from-message", messages[0].Body)
	assert.Equal(t, "https://media.textnow.com/1.jpg", messages[0].MediaURL)
}

func TestDecodeMessages_UnparseableTimestampBecomesZero(t *testing.T) {
	payload := []byte(`{"messages": [{"id": 1, "contact_value": "5550001111", "message": "x", "date": "not-a-date"}]}`)

	messages, err := decodeMessages(payload)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Time.IsZero())
}

func TestDecodeConversations_BareArrayAndEnvelope(t *testing.T) {
	bare := []byte(`[{"contact_value": "5550001111", "last_message": "yo",
		"last_message_time": "2024-03-01T10:00:00Z", "unread_count": 2}]`)

	conversations, err := decodeConversations(bare)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "5550001111", conversations[0].Contact)
	assert.Equal(t, "yo", conversations[0].LastMessage)
	assert.Equal(t, 2, conversations[0].Unread)

	wrapped := []byte(`{"conversations": [{"number": "5550002222", "message": "hey", "date": "2024-03-02T10:00:00Z"}]}`)

	conversations, err = decodeConversations(wrapped)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "5550002222", conversations[0].Contact)
	assert.Equal(t, "hey", conversations[0].LastMessage)
	assert.Equal(t, 0, conversations[0].Unread)
}

func TestDecodeConversations_Malformed(t *testing.T) {
	_, err := decodeConversations([]byte(`"nope"`))
	assert.Error(t, err)
}
