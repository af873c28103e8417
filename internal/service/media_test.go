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

func TestMediaFetch(t *testing.T) {
	client := &mocks.TextNowClient{}
	client.On("FetchMedia", mock.Anything, session, "https://media.textnow.com/a.jpg").
		Return(&textnow.MediaResource{ContentType: "image/jpeg", Body: []byte("img")}, nil)

	svc := service.NewMediaService(client, zap.NewNop())
	resource, err := svc.Fetch(context.Background(), session, "https://media.textnow.com/a.jpg")

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", resource.ContentType)
	assert.Equal(t, []byte("img"), resource.Body)
}

func TestMediaFetch_InvalidURL(t *testing.T) {
	client := &mocks.TextNowClient{}

	svc := service.NewMediaService(client, zap.NewNop())
	_, err := svc.Fetch(context.Background(), session, "not a url")

	var svcErr service.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "INVALID_MEDIA_URL", svcErr.Code)
	client.AssertNotCalled(t, "FetchMedia")
}

func TestMediaFetch_UpstreamFailure(t *testing.T) {
	client := &mocks.TextNowClient{}
	client.On("FetchMedia", mock.Anything, session, "https://media.textnow.com/a.jpg").
		Return(nil, &textnow.UpstreamError{Code: textnow.ErrorCodeUnauthorized, Status: 403})

	svc := service.NewMediaService(client, zap.NewNop())
	_, err := svc.Fetch(context.Background(), session, "https://media.textnow.com/a.jpg")

	var svcErr service.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "UPSTREAM_ERROR", svcErr.Code)
}
