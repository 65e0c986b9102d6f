package mood

import (
	"reflect"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{"happy keyword", "You sound really happy today", CategoryHappy},
		{"joy keyword", "There is so much JOY in your words", CategoryHappy},
		{"sad keyword", "It sounds like you are feeling down lately", CategorySad},
		{"anxious keyword", "All this stress is weighing on you", CategoryAnxious},
		{"angry keyword", "Being frustrated with work is normal", CategoryAngry},
		{"tired keyword", "You seem completely exhausted", CategoryTired},
		{"no keyword", "The weather was fine this morning", CategoryCalm},
		{"empty text", "", CategoryCalm},
		// Priority order: happy is checked before tired.
		{"happy beats tired", "happy but also tired", CategoryHappy},
		// sad beats anxious in the fixed order.
		{"sad beats anxious", "feeling sad and full of worry", CategorySad},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Categorize(tc.text)
			if got != tc.want {
				t.Errorf("Categorize(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestCategorizeIsIdempotent(t *testing.T) {
	text := "a stressful day that left me exhausted"
	first := Categorize(text)
	second := Categorize(text)
	if first != second {
		t.Fatalf("Categorize not deterministic: %s then %s", first, second)
	}
	if !reflect.DeepEqual(Terms(first), Terms(second)) {
		t.Fatal("Terms differ for the same category")
	}
}

func TestTermsShape(t *testing.T) {
	// Every category must carry usable, bounded search terms.
	categories := []Category{
		CategoryHappy, CategorySad, CategoryAnxious,
		CategoryAngry, CategoryTired, CategoryCalm,
	}

	for _, c := range categories {
		terms := Terms(c)
		if len(terms.MusicTerms) == 0 || len(terms.MusicTerms) > 4 {
			t.Errorf("category %s: music terms count %d outside (0,4]", c, len(terms.MusicTerms))
		}
		for _, mt := range terms.MusicTerms {
			if mt == "" {
				t.Errorf("category %s: empty music term", c)
			}
		}
		if terms.VideoQuery == "" {
			t.Errorf("category %s: empty video query", c)
		}
		if terms.BookQuery == "" {
			t.Errorf("category %s: empty book query", c)
		}
	}
}

func TestTermsUnknownCategoryFallsBack(t *testing.T) {
	if !reflect.DeepEqual(Terms(Category("percussive")), calmTerms) {
		t.Error("unknown category should fall back to the calm term set")
	}
}
