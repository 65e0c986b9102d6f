package mood

import (
	"strings"

	"Moosic/model"
)

// Detection is the quick keyword-based mood read used for persisted
// history entries. It is independent of the generative analysis.
type Detection struct {
	Mood  string
	Score int // 1-10
}

// emojiDetections maps the emoji catalog to a mood and score.
var emojiDetections = map[string]Detection{
	"😊": {Mood: "happy", Score: 8},
	"😢": {Mood: "sad", Score: 3},
	"😡": {Mood: "angry", Score: 4},
	"😴": {Mood: "tired", Score: 5},
	"😍": {Mood: "love", Score: 9},
	"😰": {Mood: "anxious", Score: 3},
	"🤔": {Mood: "thoughtful", Score: 6},
	"😎": {Mood: "confident", Score: 8},
	"🥳": {Mood: "excited", Score: 9},
	"😔": {Mood: "disappointed", Score: 4},
	"🤗": {Mood: "affectionate", Score: 8},
	"😤": {Mood: "frustrated", Score: 4},
}

var textDetections = []struct {
	keywords  []string
	detection Detection
}{
	{[]string{"happy", "joy", "great", "awesome"}, Detection{Mood: "happy", Score: 8}},
	{[]string{"sad", "depressed", "down", "cry"}, Detection{Mood: "sad", Score: 3}},
	{[]string{"angry", "mad", "furious", "hate"}, Detection{Mood: "angry", Score: 4}},
	{[]string{"anxious", "worried", "nervous", "stress"}, Detection{Mood: "anxious", Score: 3}},
	{[]string{"tired", "exhausted", "sleepy"}, Detection{Mood: "tired", Score: 5}},
}

var neutralDetection = Detection{Mood: "neutral", Score: 6}

// Detect reads the mood and score straight from the raw signal.
func Detect(inputType, content string) Detection {
	if inputType == model.InputTypeEmoji {
		if d, ok := emojiDetections[content]; ok {
			return d
		}
		return Detection{Mood: "neutral", Score: 5}
	}

	text := strings.ToLower(content)
	for _, rule := range textDetections {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.detection
			}
		}
	}
	return neutralDetection
}
