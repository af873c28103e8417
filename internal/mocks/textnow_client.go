package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

type TextNowClient struct {
	mock.Mock
}

func (m *TextNowClient) Messages(ctx context.Context, s textnow.Session, contact string, pageSize int) ([]textnow.Message, error) {
	args := m.Called(ctx, s, contact, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]textnow.Message), args.Error(1)
}

func (m *TextNowClient) Conversations(ctx context.Context, s textnow.Session) ([]textnow.Conversation, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]textnow.Conversation), args.Error(1)
}

func (m *TextNowClient) SendMessage(ctx context.Context, s textnow.Session, contact, body string) error {
	args := m.Called(ctx, s, contact, body)
	return args.Error(0)
}

func (m *TextNowClient) AttachmentURL(ctx context.Context, s textnow.Session, messageType textnow.MessageType) (string, error) {
	args := m.Called(ctx, s, messageType)
	return args.String(0), args.Error(1)
}

func (m *TextNowClient) UploadAttachment(ctx context.Context, uploadURL string, data []byte, contentType string) error {
	args := m.Called(ctx, uploadURL, data, contentType)
	return args.Error(0)
}

func (m *TextNowClient) SendAttachment(ctx context.Context, s textnow.Session, params textnow.AttachmentParams) error {
	args := m.Called(ctx, s, params)
	return args.Error(0)
}

func (m *TextNowClient) FetchMedia(ctx context.Context, s textnow.Session, mediaURL string) (*textnow.MediaResource, error) {
	args := m.Called(ctx, s, mediaURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*textnow.MediaResource), args.Error(1)
}
