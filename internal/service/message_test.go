package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/internal/mocks"
	"github.com/zodyking/textnow-gateway/internal/service"
	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

func TestNormalizeMessage_Direction(t *testing.T) {
	sent := service.NormalizeMessage(textnow.Message{Outbound: true, Type: textnow.TypeText}, "555")
	received := service.NormalizeMessage(textnow.Message{Type: textnow.TypeText}, "555")

	assert.Equal(t, service.DirectionSent, sent.Direction)
	assert.Equal(t, service.DirectionReceived, received.Direction)
}

func TestNormalizeMessage_VoiceBeatsMediaURL(t *testing.T) {
	view := service.NormalizeMessage(textnow.Message{
		Type:     textnow.TypeVoice,
		MediaURL: "https://media.textnow.com/v.mp3",
	}, "555")

	assert.Equal(t, service.MessageTypeVoice, view.Type)
	assert.Equal(t, "https://media.textnow.com/v.mp3", view.MediaURL)
	assert.Equal(t, "audio/mpeg", view.ContentType)
}

func TestNormalizeMessage_BodyAsMediaURL(t *testing.T) {
	view := service.NormalizeMessage(textnow.Message{
		Type: textnow.TypeText,
		Body: "https://media.textnow.com/x.jpg",
	}, "555")

	assert.Equal(t, service.MessageTypeMMS, view.Type)
	assert.Equal(t, "https://media.textnow.com/x.jpg", view.MediaURL)
	assert.Equal(t, "image/jpeg", view.ContentType)
}

func TestNormalizeMessage_MalformedMediaURLDropsFieldOnly(t *testing.T) {
	view := service.NormalizeMessage(textnow.Message{
		Type:     textnow.TypeMedia,
		Body:     "look at this",
		MediaURL: "::not-a-url::",
	}, "555")

	assert.Empty(t, view.MediaURL)
	assert.Equal(t, "look at this", view.Content)
	// Type code still marks it media even after the URL is dropped.
	assert.Equal(t, service.MessageTypeMMS, view.Type)
}

func TestNormalizeMessage_PlainTextHasNoContentType(t *testing.T) {
	view := service.NormalizeMessage(textnow.Message{Type: textnow.TypeText, Body: "hey"}, "555")

	assert.Equal(t, service.MessageTypeSMS, view.Type)
	assert.Empty(t, view.ContentType)
	assert.Empty(t, view.MediaURL)
}

func TestNormalizeMessage_ExplicitContentTypeKept(t *testing.T) {
	view := service.NormalizeMessage(textnow.Message{
		Type:        textnow.TypeMedia,
		MediaURL:    "https://media.textnow.com/a.png",
		ContentType: "image/png",
	}, "555")

	assert.Equal(t, "image/png", view.ContentType)
}

func TestNormalizeMessage_FallbackContact(t *testing.T) {
	view := service.NormalizeMessage(textnow.Message{Type: textnow.TypeText}, "5550009999")
	assert.Equal(t, "5550009999", view.Number)
}

func TestMessageList_ChronologicalOrder(t *testing.T) {
	client := &mocks.TextNowClient{}
	client.On("Messages", mock.Anything, session, "5550001111", 0).Return([]textnow.Message{
		{ID: "b", Type: textnow.TypeText, Body: "second", Time: at(5)},
		{ID: "a", Type: textnow.TypeText, Body: "first", Time: at(1)},
		{ID: "c", Type: textnow.TypeText, Body: "third", Time: at(9)},
	}, nil)

	svc := service.NewMessageService(client, zap.NewNop())
	views, err := svc.List(context.Background(), session, "5550001111")

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{views[0].ID, views[1].ID, views[2].ID})
}

func TestMessageList_UpstreamFailure(t *testing.T) {
	client := &mocks.TextNowClient{}
	client.On("Messages", mock.Anything, session, "5550001111", 0).
		Return(nil, &textnow.UpstreamError{Code: textnow.ErrorCodeServerError, Status: 502})

	svc := service.NewMessageService(client, zap.NewNop())
	_, err := svc.List(context.Background(), session, "5550001111")

	var svcErr service.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "UPSTREAM_ERROR", svcErr.Code)
}
