package mood

import (
	"errors"
	"fmt"
	"strings"

	"Moosic/model"
)

// Validation errors surfaced as 400 responses before any external call.
var (
	ErrEmptyContent     = errors.New("no content provided to analyze")
	ErrInvalidInputType = errors.New("invalid input type")
)

// emojiLabels maps the fixed emoji catalog to a mood label. Emoji outside
// this table are interpreted as neutral, not rejected.
var emojiLabels = map[string]string{
	"😊": "happy",
	"😢": "sad",
	"😡": "angry",
	"😴": "tired",
	"😍": "loving",
	"😰": "anxious",
	"🤔": "thoughtful",
	"😎": "confident",
	"🥳": "celebratory",
	"😔": "disappointed",
	"🤗": "affectionate",
	"😤": "frustrated",
}

// EmojiLabel returns the mood label for an emoji, or "neutral" for emoji
// outside the fixed catalog.
func EmojiLabel(emoji string) string {
	if label, ok := emojiLabels[emoji]; ok {
		return label
	}
	return "neutral"
}

// Interpret builds the generative-service prompt for a mood signal.
// The prompt instructs the model to return two lines of validation plus
// one practical suggestion.
func Interpret(signal model.MoodSignal) (string, error) {
	if strings.TrimSpace(signal.Value) == "" {
		return "", ErrEmptyContent
	}

	switch signal.Kind {
	case model.InputTypeEmoji:
		emotion := EmojiLabel(signal.Value)
		prompt := fmt.Sprintf(`The user shared %s indicating they feel %s.
Respond with:
1. Two lines of emotional validation
2. One practical suggestion
Keep it warm and supportive.`, signal.Value, emotion)
		return prompt, nil

	case model.InputTypeText:
		prompt := fmt.Sprintf(`Analyze this mood text: %q.
Provide:
1. Two empathetic validation lines
2. One helpful suggestion
Be compassionate and practical.`, signal.Value)
		return prompt, nil

	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidInputType, signal.Kind)
	}
}
