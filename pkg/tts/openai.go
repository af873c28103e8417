package tts

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIModel = string(openai.TTSModel1)
	defaultOpenAIVoice = string(openai.VoiceAlloy)
)

type OpenAIConfig struct {
	Model string `mapstructure:"model"`
}

// OpenAISynthesizer is the alternate provider, selected by config when a user
// prefers an OpenAI key over a Gemini one. The PCM response format matches
// Gemini's: s16le mono 24 kHz, so the same WAV wrapping applies.
type OpenAISynthesizer struct {
	cfg OpenAIConfig
}

func NewOpenAISynthesizer(cfg OpenAIConfig) *OpenAISynthesizer {
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	return &OpenAISynthesizer{cfg: cfg}
}

func (o *OpenAISynthesizer) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if req.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	voice := req.Voice
	if voice == "" {
		voice = defaultOpenAIVoice
	}

	client := openai.NewClient(req.APIKey)
	resp, err := client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.cfg.Model),
		Input:          req.Prompt,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatPcm,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	defer resp.Close()

	pcm, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	if len(pcm) == 0 {
		return nil, ErrNoAudio
	}
	return pcm, nil
}
