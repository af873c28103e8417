package tts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_NoStylePassesTextThrough(t *testing.T) {
	assert.Equal(t, "hello there", BuildPrompt("hello there", Style{}))
}

func TestBuildPrompt_AllSelectors(t *testing.T) {
	prompt := BuildPrompt("hi", Style{Accent: "british", Mood: "happy", Tone: "formal"})

	assert.True(t, strings.HasPrefix(prompt, "Read this text aloud with "))
	assert.Contains(t, prompt, "refined British accent")
	assert.Contains(t, prompt, ", with a joyful and upbeat emotional state")
	assert.Contains(t, prompt, ", with a professional and formal tone")
	assert.Contains(t, prompt, `"hi"`)
}

func TestBuildPrompt_UnknownSelectorsFallBack(t *testing.T) {
	prompt := BuildPrompt("hi", Style{Accent: "martian", Mood: "bewildered", Tone: "sardonic"})

	assert.Contains(t, prompt, "a martian accent")
	assert.Contains(t, prompt, "a bewildered mood")
	assert.Contains(t, prompt, "a sardonic tone")
}

func TestBuildPrompt_SingleSelector(t *testing.T) {
	prompt := BuildPrompt("hi", Style{Mood: "calm"})

	assert.Contains(t, prompt, "a peaceful and serene emotional state")
	assert.NotContains(t, prompt, ", with")
}
