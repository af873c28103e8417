package textnow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zodyking/textnow-gateway/pkg/httpclient"
)

// The provider rejects calls that do not look like its own web client, so a
// fixed desktop user agent is mandatory on every request.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

const defaultContentType = "image/jpeg"

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Client wraps the provider's undocumented cookie-authenticated API.
type Client interface {
	Messages(ctx context.Context, s Session, contact string, pageSize int) ([]Message, error)
	Conversations(ctx context.Context, s Session) ([]Conversation, error)
	SendMessage(ctx context.Context, s Session, contact, body string) error
	AttachmentURL(ctx context.Context, s Session, messageType MessageType) (string, error)
	UploadAttachment(ctx context.Context, uploadURL string, data []byte, contentType string) error
	SendAttachment(ctx context.Context, s Session, params AttachmentParams) error
	FetchMedia(ctx context.Context, s Session, mediaURL string) (*MediaResource, error)
}

type client struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, httpClient httpclient.HTTPClient) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.textnow.com"
	}
	return &client{cfg: cfg, client: httpClient}
}

func (c *client) Messages(ctx context.Context, s Session, contact string, pageSize int) ([]Message, error) {
	endpoint := fmt.Sprintf("%s/api/users/%s/messages?start_message_id=0&direction=future&page_size=%d",
		c.cfg.BaseURL, url.PathEscape(s.Username), pageSize)
	if contact != "" {
		endpoint += "&contact_value=" + url.QueryEscape(contact)
	}

	body, err := c.getJSON(ctx, s, endpoint)
	if err != nil {
		return nil, err
	}

	messages, err := decodeMessages(body)
	if err != nil {
		return nil, &UpstreamError{Code: ErrorCodeBadResponse}
	}
	return messages, nil
}

func (c *client) Conversations(ctx context.Context, s Session) ([]Conversation, error) {
	endpoint := fmt.Sprintf("%s/api/users/%s/conversations", c.cfg.BaseURL, url.PathEscape(s.Username))

	body, err := c.getJSON(ctx, s, endpoint)
	if err != nil {
		return nil, err
	}

	conversations, err := decodeConversations(body)
	if err != nil {
		return nil, &UpstreamError{Code: ErrorCodeBadResponse}
	}
	return conversations, nil
}

func (c *client) SendMessage(ctx context.Context, s Session, contact, messageBody string) error {
	endpoint := fmt.Sprintf("%s/api/users/%s/messages", c.cfg.BaseURL, url.PathEscape(s.Username))

	payload, err := json.Marshal(map[string]any{
		"contact_value": contact,
		"message":       messageBody,
		"read":          1,
	})
	if err != nil {
		return err
	}

	headers := c.sessionHeaders(s)
	headers["Content-Type"] = "application/json"

	resp, err := c.client.Post(ctx, endpoint, bytes.NewReader(payload), headers)
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorForStatus(resp.StatusCode)
	}
	return nil
}

func (c *client) AttachmentURL(ctx context.Context, s Session, messageType MessageType) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v3/attachment_url?message_type=%d", c.cfg.BaseURL, messageType)

	headers := c.sessionHeaders(s)
	headers["Referer"] = c.cfg.BaseURL + "/"

	resp, err := c.client.Get(ctx, endpoint, headers)
	if err != nil {
		return "", wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errorForStatus(resp.StatusCode)
	}

	// The upload target comes back under "result" on current accounts and
	// "url" on older ones.
	var payload struct {
		Result string `json:"result"`
		URL    string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &UpstreamError{Code: ErrorCodeBadResponse}
	}

	uploadURL := payload.Result
	if uploadURL == "" {
		uploadURL = payload.URL
	}
	if uploadURL == "" {
		return "", &UpstreamError{Code: ErrorCodeBadResponse}
	}
	return uploadURL, nil
}

// UploadAttachment PUTs raw bytes to a pre-signed target. The target embeds
// its own authorization, so no session headers are attached.
func (c *client) UploadAttachment(ctx context.Context, uploadURL string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = defaultContentType
	}

	resp, err := c.client.Put(ctx, uploadURL, bytes.NewReader(data), map[string]string{"Content-Type": contentType})
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorForStatus(resp.StatusCode)
	}
	return nil
}

func (c *client) SendAttachment(ctx context.Context, s Session, params AttachmentParams) error {
	endpoint := c.cfg.BaseURL + "/api/v3/send_attachment"

	form := url.Values{}
	form.Set("contact_value", params.Contact)
	form.Set("contact_type", "2")
	form.Set("attachment_url", params.AttachmentURL)
	form.Set("message_type", strconv.Itoa(int(params.Type)))
	form.Set("media_type", params.MediaType)
	form.Set("message", params.Message)

	headers := c.sessionHeaders(s)
	headers["Content-Type"] = "application/x-www-form-urlencoded"

	resp, err := c.client.Post(ctx, endpoint, strings.NewReader(form.Encode()), headers)
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorForStatus(resp.StatusCode)
	}
	return nil
}

func (c *client) FetchMedia(ctx context.Context, s Session, mediaURL string) (*MediaResource, error) {
	headers := c.sessionHeaders(s)
	headers["Referer"] = c.cfg.BaseURL + "/"
	headers["Accept"] = "image/*,*/*;q=0.8"

	resp, err := c.client.Get(ctx, mediaURL, headers)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorForStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Code: ErrorCodeNetworkError}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}
	return &MediaResource{ContentType: contentType, Body: body}, nil
}

func (c *client) getJSON(ctx context.Context, s Session, endpoint string) ([]byte, error) {
	resp, err := c.client.Get(ctx, endpoint, c.sessionHeaders(s))
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorForStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Code: ErrorCodeNetworkError}
	}
	return body, nil
}

func (c *client) sessionHeaders(s Session) map[string]string {
	return map[string]string{
		"Cookie":           fmt.Sprintf("connect.sid=%s; _csrf=%s", s.SIDCookie, s.CSRFToken),
		"X-CSRF-Token":     s.CSRFToken,
		"User-Agent":       userAgent,
		"X-Requested-With": "XMLHttpRequest",
		"Accept":           "application/json",
	}
}

func wrapTransportError(err error) *UpstreamError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &UpstreamError{Code: ErrorCodeTimeout}
	}
	return &UpstreamError{Code: ErrorCodeNetworkError}
}
