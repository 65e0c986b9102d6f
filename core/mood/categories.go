package mood

import "strings"

// Category names one of the six fixed mood categories.
type Category string

const (
	CategoryHappy   Category = "happy"
	CategorySad     Category = "sad"
	CategoryAnxious Category = "anxious"
	CategoryAngry   Category = "angry"
	CategoryTired   Category = "tired"
	CategoryCalm    Category = "calm"
)

// SearchTermSet holds the content search terms associated with a category.
type SearchTermSet struct {
	MusicTerms []string
	VideoQuery string
	BookQuery  string
}

// categoryRule pairs a category with the keywords that select it.
type categoryRule struct {
	category Category
	keywords []string
	terms    SearchTermSet
}

// categoryRules is evaluated top to bottom; the first rule whose keyword
// appears in the text wins. Kept data-driven so the table can be swapped
// in tests independent of the matching logic.
var categoryRules = []categoryRule{
	{
		category: CategoryHappy,
		keywords: []string{"happy", "joy", "excited"},
		terms: SearchTermSet{
			MusicTerms: []string{"upbeat happy songs", "feel good hits", "dance pop", "sunshine pop"},
			VideoQuery: "guided gratitude meditation",
			BookQuery:  "the science of happiness",
		},
	},
	{
		category: CategorySad,
		keywords: []string{"sad", "down", "depressed"},
		terms: SearchTermSet{
			MusicTerms: []string{"comforting acoustic", "gentle piano", "healing songs", "soft indie"},
			VideoQuery: "guided meditation for sadness",
			BookQuery:  "overcoming sadness self help",
		},
	},
	{
		category: CategoryAnxious,
		keywords: []string{"anxious", "worry", "stress"},
		terms: SearchTermSet{
			MusicTerms: []string{"calming ambient", "meditation music", "nature sounds", "slow breathing music"},
			VideoQuery: "breathing exercises for anxiety",
			BookQuery:  "anxiety and worry workbook",
		},
	},
	{
		category: CategoryAngry,
		keywords: []string{"angry", "frustrated", "mad"},
		terms: SearchTermSet{
			MusicTerms: []string{"calm down music", "slow instrumental", "peaceful guitar", "chill lofi"},
			VideoQuery: "anger management techniques",
			BookQuery:  "managing anger mindfully",
		},
	},
	{
		category: CategoryTired,
		keywords: []string{"tired", "exhausted", "fatigue"},
		terms: SearchTermSet{
			MusicTerms: []string{"sleep music", "relaxing piano", "rest and restore", "ambient sleep"},
			VideoQuery: "body scan relaxation",
			BookQuery:  "rest and recovery from burnout",
		},
	},
}

// calmTerms is the default category used when no keyword matches.
var calmTerms = SearchTermSet{
	MusicTerms: []string{"peaceful instrumental", "mindfulness music", "soft acoustic", "calm focus"},
	VideoQuery: "mindfulness practice for beginners",
	BookQuery:  "mindfulness for beginners",
}

// Categorize maps an analysis text to exactly one category. It is total
// and deterministic: checks run in fixed priority order and short-circuit
// on the first keyword hit; no hit yields the calm category.
func Categorize(analysisText string) Category {
	text := strings.ToLower(analysisText)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return CategoryCalm
}

// Terms returns the search terms for a category. Unknown categories fall
// back to the calm set so the result is always usable.
func Terms(category Category) SearchTermSet {
	for _, rule := range categoryRules {
		if rule.category == category {
			return rule.terms
		}
	}
	return calmTerms
}

// CategorizeTerms derives the full term set for an analysis text.
func CategorizeTerms(analysisText string) (Category, SearchTermSet) {
	c := Categorize(analysisText)
	return c, Terms(c)
}
