package tts

import "context"

// Request is a fully composed synthesis instruction. Prompt already embeds
// any style clauses; Voice names a provider-prebuilt voice identity.
type Request struct {
	Prompt string
	Voice  string
	APIKey string
}

// Synthesizer turns a prompt into raw single-channel 16-bit PCM at SampleRate.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

// Both supported providers emit s16le mono at this rate.
const (
	SampleRate    = 24000
	Channels      = 1
	BitsPerSample = 16
)
