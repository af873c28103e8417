package v1

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/internal/api/validator"
	"github.com/zodyking/textnow-gateway/internal/constants"
	"github.com/zodyking/textnow-gateway/internal/service"
)

const (
	defaultImageContentType = "image/jpeg"
	defaultAudioContentType = "audio/mpeg"

	mediaCacheControl = "public, max-age=3600"
)

type Handler struct {
	logger        *zap.Logger
	validator     validator.IXValidator
	conversations service.ConversationService
	messages      service.MessageService
	sender        service.SendService
	media         service.MediaService
	synthesis     service.SynthesisService
	users         service.UserService
}

func NewHandler(logger *zap.Logger, validator validator.IXValidator,
	conversations service.ConversationService, messages service.MessageService,
	sender service.SendService, media service.MediaService,
	synthesis service.SynthesisService, users service.UserService) *Handler {
	return &Handler{
		logger:        logger,
		validator:     validator,
		conversations: conversations,
		messages:      messages,
		sender:        sender,
		media:         media,
		synthesis:     synthesis,
		users:         users,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Conversations(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request ConversationsRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	conversations := h.conversations.List(ctx, request.session())

	return c.JSON(ConversationsResponse{Conversations: conversations, Total: len(conversations)})
}

func (h *Handler) Messages(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request MessagesRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	messages, err := h.messages.List(ctx, request.session(), request.Number)
	if err != nil {
		h.logger.Error("Failed to fetch messages",
			zap.String("number", request.Number),
			zap.Error(err))
		return err
	}

	return c.JSON(MessagesResponse{Messages: messages, Total: len(messages)})
}

func (h *Handler) SendText(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendTextRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	cmd := service.SendTextCommand{Contact: request.Number, Body: request.Message}
	if err := h.sender.SendText(ctx, request.session(), cmd); err != nil {
		return err
	}

	return c.JSON(SendResponse{Status: "sent"})
}

func (h *Handler) SendMedia(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendAttachmentRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	data, contentType, err := h.readUpload(c, defaultImageContentType)
	if err != nil {
		return err
	}

	cmd := service.SendMediaCommand{
		Contact:     request.Number,
		Data:        data,
		ContentType: contentType,
		Caption:     request.Caption,
	}
	if err := h.sender.SendMedia(ctx, request.session(), cmd); err != nil {
		return err
	}

	h.logger.Info("Media message sent",
		zap.String("number", request.Number),
		zap.String("contentType", contentType),
		zap.Int("size", len(data)))

	return c.JSON(SendResponse{Status: "sent"})
}

func (h *Handler) SendVoice(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendAttachmentRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	data, contentType, err := h.readUpload(c, defaultAudioContentType)
	if err != nil {
		return err
	}

	cmd := service.SendVoiceCommand{
		Contact:     request.Number,
		Data:        data,
		ContentType: contentType,
	}
	if err := h.sender.SendVoice(ctx, request.session(), cmd); err != nil {
		return err
	}

	return c.JSON(SendResponse{Status: "sent"})
}

// Media streams a provider-hosted attachment back to the browser, which
// cannot attach the session cookies itself. Credentials arrive as query
// parameters alongside the target URL.
func (h *Handler) Media(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rawURL := c.Query("url")
	session := textnowSessionFromQuery(c)

	resource, err := h.media.Fetch(ctx, session, rawURL)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, resource.ContentType)
	c.Set(fiber.HeaderCacheControl, mediaCacheControl)
	return c.Send(resource.Body)
}

func (h *Handler) Synthesize(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SynthesizeRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	cmd := service.SynthesizeCommand{
		Text:   request.Text,
		APIKey: request.APIKey,
		Voice:  request.Voice,
		Accent: request.Accent,
		Mood:   request.Mood,
		Tone:   request.Tone,
	}

	audio, err := h.synthesis.Synthesize(ctx, cmd)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "audio/wav")
	return c.Send(audio)
}

func (h *Handler) bind(c *fiber.Ctx, request any) error {
	if err := c.BodyParser(request); err != nil {
		h.logger.Warn("Failed to parse request body",
			zap.Error(err),
			zap.String("path", c.Path()))
		return service.NewServiceError(constants.ErrCodeInvalidRequestBody, err)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		fields := validator.Fields(errs)
		h.logger.Warn("Request failed validation",
			zap.String("path", c.Path()),
			zap.String("fields", fields))
		return service.NewServiceError(constants.ErrCodeValidation,
			fmt.Errorf("invalid fields: %s", fields))
	}

	return nil
}

// readUpload pulls the "file" part out of a multipart request. The part's
// declared content type drives attachment classification upstream, so a
// missing one falls back to the route's default.
func (h *Handler) readUpload(c *fiber.Ctx, defaultContentType string) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn("Missing file in multipart request", zap.Error(err))
		return nil, "", service.NewServiceError(constants.ErrCodeInvalidRequestBody, err)
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		h.logger.Warn("Failed to read uploaded file", zap.Error(err))
		return nil, "", service.NewServiceError(constants.ErrCodeInvalidRequestBody, err)
	}

	// Generic uploads (curl, some form libraries) declare octet-stream;
	// treat that the same as no declaration at all.
	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = defaultContentType
	}

	return data, contentType, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
