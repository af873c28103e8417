package textnow

import "time"

// MediaHost is the prefix of URLs the provider serves attachments from.
// Message bodies sometimes carry such a URL instead of populating the media
// fields, so classification code needs to recognize it.
const MediaHost = "https://media.textnow.com"

// MessageType is the provider's numeric type discriminator.
type MessageType int

const (
	TypeText  MessageType = 1
	TypeMedia MessageType = 2
	TypeVoice MessageType = 3
)

// Session holds the credentials triple the provider requires on every call.
type Session struct {
	Username  string
	SIDCookie string
	CSRFToken string
}

// Message is the normalized form of one record from the raw message feed.
// Raw payloads vary in shape; parseMessage resolves the alternatives so no
// raw field names leak past this package.
type Message struct {
	ID          string
	Contact     string
	Body        string
	Time        time.Time
	Outbound    bool
	Type        MessageType
	MediaURL    string
	ContentType string
}

// Conversation is one record from the secondary conversations endpoint, used
// only when the message feed is unavailable.
type Conversation struct {
	Contact     string
	LastMessage string
	LastTime    time.Time
	Unread      int
}

// AttachmentParams describes the follow-up call after a pre-signed upload.
type AttachmentParams struct {
	Contact       string
	AttachmentURL string
	Type          MessageType
	MediaType     string // "images", "video" or "audio"
	Message       string
}

// MediaResource is a proxied attachment body with its original content type.
type MediaResource struct {
	ContentType string
	Body        []byte
}
