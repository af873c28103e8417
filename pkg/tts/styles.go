package tts

import "fmt"

// Style selects how the synthesized voice should read the text. Empty fields
// are omitted from the instruction; unknown values fall back to a generic
// templated clause instead of failing.
type Style struct {
	Accent string
	Mood   string
	Tone   string
}

var accentDescriptions = map[string]string{
	"american":      "a clear American accent with natural pronunciation",
	"british":       "a refined British accent with proper enunciation",
	"australian":    "a distinctive Australian accent with characteristic vowel sounds",
	"canadian":      "a Canadian accent with subtle regional variations",
	"indian":        "an Indian accent with melodic intonation patterns",
	"jamaican":      "a vibrant Jamaican accent with rhythmic cadence",
	"irish":         "a charming Irish accent with lyrical quality",
	"scottish":      "a strong Scottish accent with distinctive rolling r's",
	"south-african": "a South African accent with unique vowel pronunciations",
	"new-zealand":   "a New Zealand accent with distinctive vowel shifts",
	"spanish":       "a Spanish accent with characteristic pronunciation",
	"french":        "a French accent with elegant pronunciation",
	"german":        "a German accent with precise articulation",
	"italian":       "an Italian accent with expressive intonation",
}

var moodDescriptions = map[string]string{
	"neutral":     "a neutral, balanced emotional state",
	"happy":       "a joyful and upbeat emotional state with positive energy",
	"sad":         "a melancholic and somber emotional state with gentle expression",
	"excited":     "an enthusiastic and energetic emotional state with high energy",
	"calm":        "a peaceful and serene emotional state with relaxed delivery",
	"energetic":   "a dynamic and lively emotional state with vibrant energy",
	"melancholic": "a deeply reflective and wistful emotional state",
	"cheerful":    "a bright and optimistic emotional state with warmth",
	"serious":     "a focused and earnest emotional state with gravitas",
	"playful":     "a lighthearted and fun emotional state with whimsy",
	"romantic":    "a tender and affectionate emotional state with warmth",
	"nostalgic":   "a wistful and sentimental emotional state with longing",
	"confident":   "a self-assured and bold emotional state with conviction",
	"anxious":     "a nervous and worried emotional state with tension",
	"relaxed":     "a laid-back and easygoing emotional state with ease",
	"passionate":  "an intense and fervent emotional state with strong feeling",
	"mysterious":  "an enigmatic and intriguing emotional state with subtlety",
	"optimistic":  "a hopeful and positive emotional state with brightness",
	"pessimistic": "a cautious and skeptical emotional state with reservation",
	"grateful":    "a thankful and appreciative emotional state with warmth",
	"apologetic":  "a remorseful and contrite emotional state with sincerity",
}

var toneDescriptions = map[string]string{
	"conversational": "a natural, conversational tone as if speaking to a friend",
	"formal":         "a professional and formal tone with proper etiquette",
	"casual":         "a relaxed and informal tone with friendly familiarity",
	"friendly":       "a warm and approachable tone with genuine friendliness",
	"professional":   "a polished and business-like tone with authority",
}

func describeAccent(accent string) string {
	if desc, ok := accentDescriptions[accent]; ok {
		return desc
	}
	return fmt.Sprintf("a %s accent", accent)
}

func describeMood(mood string) string {
	if desc, ok := moodDescriptions[mood]; ok {
		return desc
	}
	return fmt.Sprintf("a %s mood", mood)
}

func describeTone(tone string) string {
	if desc, ok := toneDescriptions[tone]; ok {
		return desc
	}
	return fmt.Sprintf("a %s tone", tone)
}

// BuildPrompt composes the natural-language reading instruction around the
// literal text. With no style selectors the text passes through untouched.
func BuildPrompt(text string, style Style) string {
	var parts []string
	if style.Accent != "" {
		parts = append(parts, describeAccent(style.Accent))
	}
	if style.Mood != "" {
		parts = append(parts, describeMood(style.Mood))
	}
	if style.Tone != "" {
		parts = append(parts, describeTone(style.Tone))
	}

	if len(parts) == 0 {
		return text
	}

	instruction := parts[0]
	for _, part := range parts[1:] {
		instruction += ", with " + part
	}
	return fmt.Sprintf("Read this text aloud with %s: %q", instruction, text)
}
