package service

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/internal/constants"
	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

// MediaService re-fetches attachment resources with the user's session
// attached. The media host requires the same cookie authentication as the
// main API, and the cookies must never reach the browser's own requests.
type MediaService interface {
	Fetch(ctx context.Context, s textnow.Session, rawURL string) (*textnow.MediaResource, error)
}

type media struct {
	client textnow.Client
	logger *zap.Logger
}

func NewMediaService(client textnow.Client, logger *zap.Logger) MediaService {
	return &media{client: client, logger: logger}
}

func (m *media) Fetch(ctx context.Context, s textnow.Session, rawURL string) (*textnow.MediaResource, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, NewServiceError(constants.ErrCodeInvalidMediaURL, errInvalidMediaURL)
	}

	resource, err := m.client.FetchMedia(ctx, s, rawURL)
	if err != nil {
		m.logger.Warn("Failed to fetch media resource",
			zap.String("url", rawURL),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeUpstream, err)
	}

	return resource, nil
}
