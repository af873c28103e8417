package metrics

import (
	"context"
	"time"

	"github.com/zodyking/textnow-gateway/pkg/textnow"
	"github.com/zodyking/textnow-gateway/pkg/tts"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// InstrumentedClient wraps the provider client and records per-operation
// call counts and durations.
type InstrumentedClient struct {
	next    textnow.Client
	metrics *Metrics
}

func NewInstrumentedClient(next textnow.Client, m *Metrics) textnow.Client {
	return &InstrumentedClient{next: next, metrics: m}
}

func (c *InstrumentedClient) Messages(ctx context.Context, s textnow.Session, contact string, pageSize int) ([]textnow.Message, error) {
	start := time.Now()
	messages, err := c.next.Messages(ctx, s, contact, pageSize)
	c.record("messages", start, err)
	return messages, err
}

func (c *InstrumentedClient) Conversations(ctx context.Context, s textnow.Session) ([]textnow.Conversation, error) {
	start := time.Now()
	conversations, err := c.next.Conversations(ctx, s)
	c.record("conversations", start, err)
	return conversations, err
}

func (c *InstrumentedClient) SendMessage(ctx context.Context, s textnow.Session, contact, body string) error {
	start := time.Now()
	err := c.next.SendMessage(ctx, s, contact, body)
	c.record("send_message", start, err)
	return err
}

func (c *InstrumentedClient) AttachmentURL(ctx context.Context, s textnow.Session, messageType textnow.MessageType) (string, error) {
	start := time.Now()
	uploadURL, err := c.next.AttachmentURL(ctx, s, messageType)
	c.record("attachment_url", start, err)
	return uploadURL, err
}

func (c *InstrumentedClient) UploadAttachment(ctx context.Context, uploadURL string, data []byte, contentType string) error {
	start := time.Now()
	err := c.next.UploadAttachment(ctx, uploadURL, data, contentType)
	c.record("upload_attachment", start, err)
	return err
}

func (c *InstrumentedClient) SendAttachment(ctx context.Context, s textnow.Session, params textnow.AttachmentParams) error {
	start := time.Now()
	err := c.next.SendAttachment(ctx, s, params)
	c.record("send_attachment", start, err)
	return err
}

func (c *InstrumentedClient) FetchMedia(ctx context.Context, s textnow.Session, mediaURL string) (*textnow.MediaResource, error) {
	start := time.Now()
	resource, err := c.next.FetchMedia(ctx, s, mediaURL)
	c.record("fetch_media", start, err)
	return resource, err
}

func (c *InstrumentedClient) record(operation string, start time.Time, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	c.metrics.RecordUpstreamRequest(operation, outcome, time.Since(start))
}

// InstrumentedSynthesizer records synthesis outcomes and audio sizes.
type InstrumentedSynthesizer struct {
	next    tts.Synthesizer
	metrics *Metrics
}

func NewInstrumentedSynthesizer(next tts.Synthesizer, m *Metrics) tts.Synthesizer {
	return &InstrumentedSynthesizer{next: next, metrics: m}
}

func (s *InstrumentedSynthesizer) Synthesize(ctx context.Context, req tts.Request) ([]byte, error) {
	audio, err := s.next.Synthesize(ctx, req)
	if err != nil {
		s.metrics.RecordSynthesis(outcomeFailure, 0)
		return nil, err
	}

	s.metrics.RecordSynthesis(outcomeSuccess, len(audio))
	return audio, nil
}
