package service

type SendTextCommand struct {
	Contact string
	Body    string
}

type SendMediaCommand struct {
	Contact     string
	Data        []byte
	ContentType string
	Caption     string
}

type SendVoiceCommand struct {
	Contact     string
	Data        []byte
	ContentType string
}

type SynthesizeCommand struct {
	Text   string
	APIKey string
	Voice  string
	Accent string
	Mood   string
	Tone   string
}

type SignUpCommand struct {
	Username        string
	Password        string
	ConfirmPassword string
	TextNowUsername string
	SIDCookie       string
	CSRFToken       string
}

type LogInCommand struct {
	Username string
	Password string
}

type UpdateUserCommand struct {
	UserID          string
	Username        string
	TextNowUsername string
	SIDCookie       string
	CSRFToken       string
	GeminiAPIKey    string
}
