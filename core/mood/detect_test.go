package mood

import (
	"testing"

	"Moosic/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		inputType string
		content   string
		wantMood  string
		wantScore int
	}{
		{"known emoji", model.InputTypeEmoji, "😊", "happy", 8},
		{"celebratory emoji", model.InputTypeEmoji, "🥳", "excited", 9},
		{"unknown emoji", model.InputTypeEmoji, "🦄", "neutral", 5},
		{"happy text", model.InputTypeText, "today was awesome", "happy", 8},
		{"sad text", model.InputTypeText, "I want to cry", "sad", 3},
		{"anxious text", model.InputTypeText, "so much stress", "anxious", 3},
		{"neutral text", model.InputTypeText, "nothing much going on", "neutral", 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Detect(tc.inputType, tc.content)
			if got.Mood != tc.wantMood || got.Score != tc.wantScore {
				t.Errorf("Detect(%s, %q) = %s/%d, want %s/%d",
					tc.inputType, tc.content, got.Mood, got.Score, tc.wantMood, tc.wantScore)
			}
		})
	}
}
