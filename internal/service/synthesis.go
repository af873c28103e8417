package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/internal/constants"
	"github.com/zodyking/textnow-gateway/pkg/tts"
)

// SynthesisService turns text plus style selectors into a playable WAV: it
// expands the selectors into a reading instruction, asks the provider for raw
// PCM and wraps the payload in a WAV container.
type SynthesisService interface {
	Synthesize(ctx context.Context, cmd SynthesizeCommand) ([]byte, error)
}

type synthesis struct {
	synthesizer tts.Synthesizer
	logger      *zap.Logger
}

func NewSynthesisService(synthesizer tts.Synthesizer, logger *zap.Logger) SynthesisService {
	return &synthesis{synthesizer: synthesizer, logger: logger}
}

func (s *synthesis) Synthesize(ctx context.Context, cmd SynthesizeCommand) ([]byte, error) {
	if cmd.APIKey == "" {
		return nil, NewServiceError(constants.ErrCodeMissingAPIKey, errMissingAPIKey)
	}

	prompt := tts.BuildPrompt(cmd.Text, tts.Style{
		Accent: cmd.Accent,
		Mood:   cmd.Mood,
		Tone:   cmd.Tone,
	})

	pcm, err := s.synthesizer.Synthesize(ctx, tts.Request{
		Prompt: prompt,
		Voice:  cmd.Voice,
		APIKey: cmd.APIKey,
	})
	if err != nil {
		s.logger.Warn("Voice synthesis failed", zap.Error(err))
		if errors.Is(err, tts.ErrNoAudio) {
			return nil, NewServiceError(constants.ErrCodeSynthesisNoAudio, err)
		}
		if errors.Is(err, tts.ErrMissingAPIKey) {
			return nil, NewServiceError(constants.ErrCodeMissingAPIKey, err)
		}
		return nil, NewServiceError(constants.ErrCodeSynthesis, err)
	}

	if len(pcm) == 0 {
		return nil, NewServiceError(constants.ErrCodeSynthesisNoAudio, tts.ErrNoAudio)
	}

	return tts.WrapPCM(pcm), nil
}
