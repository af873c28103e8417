package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/internal/constants"
	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

// The provider drops or reorders a caption sent too soon after its
// attachment, so the caption follows after a tunable wait. 10s matches what
// worked in practice; there is no completion callback to wait on instead.
const DefaultCaptionDelay = 10 * time.Second

type SendConfig struct {
	CaptionDelay time.Duration `mapstructure:"caption_delay"`
}

type SendService interface {
	SendText(ctx context.Context, s textnow.Session, cmd SendTextCommand) error
	SendMedia(ctx context.Context, s textnow.Session, cmd SendMediaCommand) error
	SendVoice(ctx context.Context, s textnow.Session, cmd SendVoiceCommand) error
}

type send struct {
	client textnow.Client
	cfg    SendConfig
	logger *zap.Logger
}

func NewSendService(client textnow.Client, cfg SendConfig, logger *zap.Logger) SendService {
	if cfg.CaptionDelay <= 0 {
		cfg.CaptionDelay = DefaultCaptionDelay
	}
	return &send{client: client, cfg: cfg, logger: logger}
}

func (s *send) SendText(ctx context.Context, session textnow.Session, cmd SendTextCommand) error {
	if err := s.client.SendMessage(ctx, session, cmd.Contact, cmd.Body); err != nil {
		s.logger.Warn("Failed to send text message",
			zap.String("contact", cmd.Contact),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeUpstream, err)
	}

	s.logger.Info("Text message sent", zap.String("contact", cmd.Contact))
	return nil
}

// SendMedia runs the three-step attachment pipeline, then delivers an
// optional caption as a separate text message after the configured delay.
// Each step's failure is terminal; a prior successful step is not rolled
// back. A caption failure after a delivered attachment is logged only.
func (s *send) SendMedia(ctx context.Context, session textnow.Session, cmd SendMediaCommand) error {
	mediaType := "images"
	if strings.HasPrefix(cmd.ContentType, "video/") {
		mediaType = "video"
	}

	err := s.sendAttachment(ctx, session, textnow.AttachmentParams{
		Contact:   cmd.Contact,
		Type:      textnow.TypeMedia,
		MediaType: mediaType,
	}, cmd.Data, cmd.ContentType)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.Caption) == "" {
		return nil
	}

	select {
	case <-time.After(s.cfg.CaptionDelay):
	case <-ctx.Done():
		s.logger.Warn("Caption delivery abandoned, request cancelled during delay",
			zap.String("contact", cmd.Contact))
		return nil
	}

	if err := s.client.SendMessage(ctx, session, cmd.Contact, strings.TrimSpace(cmd.Caption)); err != nil {
		// The attachment already went out; surface success for the send as a
		// whole and leave the caption to a manual retry.
		s.logger.Error("Failed to send caption after media",
			zap.String("contact", cmd.Contact),
			zap.Error(err))
	}

	return nil
}

func (s *send) SendVoice(ctx context.Context, session textnow.Session, cmd SendVoiceCommand) error {
	if !strings.HasPrefix(cmd.ContentType, "audio/") {
		return NewServiceError(constants.ErrCodeNotAudio, errNotAudio)
	}

	return s.sendAttachment(ctx, session, textnow.AttachmentParams{
		Contact:   cmd.Contact,
		Type:      textnow.TypeVoice,
		MediaType: "audio",
	}, cmd.Data, cmd.ContentType)
}

func (s *send) sendAttachment(ctx context.Context, session textnow.Session, params textnow.AttachmentParams, data []byte, contentType string) error {
	uploadURL, err := s.client.AttachmentURL(ctx, session, params.Type)
	if err != nil {
		s.logger.Warn("Failed to get pre-signed upload target",
			zap.String("contact", params.Contact),
			zap.Int("messageType", int(params.Type)),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeUpstream, err)
	}

	if err := s.client.UploadAttachment(ctx, uploadURL, data, contentType); err != nil {
		s.logger.Warn("Failed to upload attachment",
			zap.String("contact", params.Contact),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeUpstream, err)
	}

	params.AttachmentURL = uploadURL
	if err := s.client.SendAttachment(ctx, session, params); err != nil {
		s.logger.Warn("Failed to send attachment message",
			zap.String("contact", params.Contact),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeUpstream, err)
	}

	s.logger.Info("Attachment sent",
		zap.String("contact", params.Contact),
		zap.String("mediaType", params.MediaType))
	return nil
}
