package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zodyking/textnow-gateway/pkg/tts"
)

type Synthesizer struct {
	mock.Mock
}

func (m *Synthesizer) Synthesize(ctx context.Context, req tts.Request) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
