package tts_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zodyking/textnow-gateway/pkg/httpclient"
	"github.com/zodyking/textnow-gateway/pkg/tts"
)

func newGemini(serverURL string) *tts.GeminiSynthesizer {
	return tts.NewGeminiSynthesizer(
		tts.GeminiConfig{BaseURL: serverURL},
		httpclient.NewHTTPClient(5*time.Second),
	)
}

func audioResponse(pcm []byte) string {
	return fmt.Sprintf(`{"candidates": [{"content": {"parts": [
		{"inlineData": {"mimeType": "audio/L16;codec=pcm;rate=24000", "data": %q}}
	]}}]}`, base64.StdEncoding.EncodeToString(pcm))
}

func TestGemini_Synthesize(t *testing.T) {
	pcm := []byte{0, 1, 2, 3}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash-preview-tts:generateContent")

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		contents := payload["contents"].([]any)
		part := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)
		assert.Equal(t, "say hi", part["text"])

		w.Write([]byte(audioResponse(pcm)))
	}))
	defer server.Close()

	got, err := newGemini(server.URL).Synthesize(context.Background(), tts.Request{Prompt: "say hi", APIKey: "secret-key"})
	require.NoError(t, err)
	assert.Equal(t, pcm, got)
}

func TestGemini_EmptyAudioIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(audioResponse(nil)))
	}))
	defer server.Close()

	_, err := newGemini(server.URL).Synthesize(context.Background(), tts.Request{Prompt: "x", APIKey: "k"})
	assert.ErrorIs(t, err, tts.ErrNoAudio)
}

func TestGemini_NoAudioPartIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "no audio here"}]}}]}`))
	}))
	defer server.Close()

	_, err := newGemini(server.URL).Synthesize(context.Background(), tts.Request{Prompt: "x", APIKey: "k"})
	assert.ErrorIs(t, err, tts.ErrNoAudio)
}

func TestGemini_ProviderFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota"}}`))
	}))
	defer server.Close()

	_, err := newGemini(server.URL).Synthesize(context.Background(), tts.Request{Prompt: "x", APIKey: "k"})
	assert.ErrorIs(t, err, tts.ErrProviderFailed)
}

func TestGemini_MissingAPIKey(t *testing.T) {
	_, err := newGemini("http://unused").Synthesize(context.Background(), tts.Request{Prompt: "x"})
	assert.ErrorIs(t, err, tts.ErrMissingAPIKey)
}
