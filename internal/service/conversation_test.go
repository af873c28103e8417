package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/internal/mocks"
	"github.com/zodyking/textnow-gateway/internal/service"
	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

var session = textnow.Session{Username: "tester", SIDCookie: "sid", CSRFToken: "csrf"}

func at(sec int) time.Time {
	return time.Date(2024, 3, 1, 10, 0, sec, 0, time.UTC)
}

func TestNormalizeContact(t *testing.T) {
	assert.Equal(t, "15550001111", service.NormalizeContact("+1 (555) 000-1111"))
	assert.Equal(t, "5550001111", service.NormalizeContact("555-000-1111"))
	assert.Equal(t, "", service.NormalizeContact("  + () - "))
}

func TestNormalizeContact_Idempotent(t *testing.T) {
	for _, contact := range []string{"+1 (555) 000-1111", "5550001111", "unknown", ""} {
		once := service.NormalizeContact(contact)
		assert.Equal(t, once, service.NormalizeContact(once))
	}
}

func TestDeriveConversations_MergesFormattingVariants(t *testing.T) {
	messages := []textnow.Message{
		{Contact: "+1 (555) 000-1111", Type: textnow.TypeText, Body: "hi", Time: at(1)},
		{Contact: "15550001111", Type: textnow.TypeText, Body: "hello", Time: at(2)},
	}

	conversations := service.DeriveConversations(messages)

	require.Len(t, conversations, 1)
	assert.Equal(t, "15550001111", conversations[0].Number)
	assert.Equal(t, "hello", conversations[0].LastMessage)
	assert.Equal(t, at(2), conversations[0].LastMessageTime)
}

func TestDeriveConversations_KeepsNewestFieldsTogether(t *testing.T) {
	messages := []textnow.Message{
		{Contact: "5550001111", Type: textnow.TypeMedia, Body: "", MediaURL: "https://media.textnow.com/old.jpg", Time: at(5)},
		{Contact: "5550001111", Type: textnow.TypeText, Body: "newer text", Time: at(9)},
		{Contact: "5550001111", Type: textnow.TypeText, Body: "oldest", Time: at(1)},
	}

	conversations := service.DeriveConversations(messages)

	require.Len(t, conversations, 1)
	assert.Equal(t, "newer text", conversations[0].LastMessage)
	assert.Equal(t, at(9), conversations[0].LastMessageTime)
	assert.Empty(t, conversations[0].LastMediaURL)
}

func TestDeriveConversations_EqualTimestampKeepsFirst(t *testing.T) {
	messages := []textnow.Message{
		{Contact: "5550001111", Type: textnow.TypeText, Body: "first", Time: at(3)},
		{Contact: "5550001111", Type: textnow.TypeText, Body: "second", Time: at(3)},
	}

	conversations := service.DeriveConversations(messages)

	require.Len(t, conversations, 1)
	assert.Equal(t, "first", conversations[0].LastMessage)
}

func TestDeriveConversations_SkipsInvalidContacts(t *testing.T) {
	messages := []textnow.Message{
		{Contact: "", Type: textnow.TypeText, Body: "no contact", Time: at(1)},
		{Contact: "unknown", Type: textnow.TypeText, Body: "sentinel", Time: at(2)},
		{Contact: " + ", Type: textnow.TypeText, Body: "formatting only", Time: at(3)},
		{Contact: "5550001111", Type: textnow.TypeText, Body: "kept", Time: at(4)},
	}

	conversations := service.DeriveConversations(messages)

	require.Len(t, conversations, 1)
	assert.Equal(t, "kept", conversations[0].LastMessage)
}

func TestDeriveConversations_SortedByRecencyDescending(t *testing.T) {
	messages := []textnow.Message{
		{Contact: "5550000001", Type: textnow.TypeText, Body: "a", Time: at(1)},
		{Contact: "5550000003", Type: textnow.TypeText, Body: "c", Time: at(9)},
		{Contact: "5550000002", Type: textnow.TypeText, Body: "b", Time: at(5)},
	}

	conversations := service.DeriveConversations(messages)

	require.Len(t, conversations, 3)
	for i := 1; i < len(conversations); i++ {
		assert.False(t, conversations[i].LastMessageTime.After(conversations[i-1].LastMessageTime))
	}
	assert.Equal(t, "5550000003", conversations[0].Number)
}

func TestDeriveConversations_PreviewClassification(t *testing.T) {
	messages := []textnow.Message{
		{Contact: "5550000001", Type: textnow.TypeMedia, MediaURL: "https://media.textnow.com/a.jpg", Time: at(1)},
		{Contact: "5550000002", Type: textnow.TypeVoice, MediaURL: "https://media.textnow.com/v.mp3", Time: at(2)},
		{Contact: "5550000003", Type: textnow.TypeText, Body: "https://media.textnow.com/x.jpg", Time: at(3)},
		{Contact: "5550000004", Type: textnow.TypeText, Body: "plain", Time: at(4)},
	}

	conversations := service.DeriveConversations(messages)
	require.Len(t, conversations, 4)

	byNumber := map[string]string{}
	for _, conv := range conversations {
		byNumber[conv.Number] = conv.LastMessage
	}

	assert.Equal(t, "📷 Image", byNumber["5550000001"])
	// Voice classifies as voice even with a media URL present.
	assert.Equal(t, "🎤 Voice message", byNumber["5550000002"])
	assert.Equal(t, "📷 Media", byNumber["5550000003"])
	assert.Equal(t, "plain", byNumber["5550000004"])
}

func TestDeriveConversations_TruncatesLongPreviews(t *testing.T) {
	long := ""
	for i := 0; i < 60; i++ {
		long += "x"
	}

	conversations := service.DeriveConversations([]textnow.Message{
		{Contact: "5550001111", Type: textnow.TypeText, Body: long, Time: at(1)},
	})

	require.Len(t, conversations, 1)
	assert.Len(t, conversations[0].LastMessage, 53)
	assert.Equal(t, "...", conversations[0].LastMessage[50:])
}

func TestConversationList_UsesMessageFeed(t *testing.T) {
	client := &mocks.TextNowClient{}
	client.On("Messages", mock.Anything, session, "", 1000).Return([]textnow.Message{
		{Contact: "5550001111", Type: textnow.TypeText, Body: "hi", Time: at(1)},
	}, nil)

	svc := service.NewConversationService(client, zap.NewNop())
	conversations := svc.List(context.Background(), session)

	require.Len(t, conversations, 1)
	client.AssertNotCalled(t, "Conversations")
}

func TestConversationList_FallsBackToConversationsEndpoint(t *testing.T) {
	client := &mocks.TextNowClient{}
	client.On("Messages", mock.Anything, session, "", 1000).
		Return(nil, &textnow.UpstreamError{Code: textnow.ErrorCodeServerError, Status: 502})
	client.On("Conversations", mock.Anything, session).Return([]textnow.Conversation{
		{Contact: "5550001111", LastMessage: "yo", LastTime: at(2), Unread: 3},
		{Contact: "", LastMessage: "mystery", LastTime: at(1)},
	}, nil)

	svc := service.NewConversationService(client, zap.NewNop())
	conversations := svc.List(context.Background(), session)

	require.Len(t, conversations, 2)
	assert.Equal(t, "5550001111", conversations[0].Number)
	assert.Equal(t, 3, conversations[0].Unread)
	assert.Equal(t, "unknown", conversations[1].Number)
}

func TestConversationList_BothSourcesDownReturnsEmpty(t *testing.T) {
	client := &mocks.TextNowClient{}
	client.On("Messages", mock.Anything, session, "", 1000).
		Return(nil, errors.New("boom"))
	client.On("Conversations", mock.Anything, session).
		Return(nil, errors.New("boom again"))

	svc := service.NewConversationService(client, zap.NewNop())
	conversations := svc.List(context.Background(), session)

	assert.NotNil(t, conversations)
	assert.Empty(t, conversations)
}
