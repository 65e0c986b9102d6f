package model

import "time"

// Mood input kinds accepted by the analyze endpoint. Voice and Image exist
// in the history schema but are not interpreted yet.
const (
	InputTypeText  = "Text"
	InputTypeEmoji = "Emoji"
	InputTypeVoice = "Voice"
	InputTypeImage = "Image"
)

// MoodSignal is the raw user input submitted for analysis. Created per
// request, never persisted as-is.
type MoodSignal struct {
	Kind  string `json:"inputType"`
	Value string `json:"content"`
}

// MoodEntry is one persisted mood submission with its analysis.
type MoodEntry struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       int64     `json:"userId" gorm:"index;not null"`
	InputType    string    `json:"inputType" gorm:"size:10;not null"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	DetectedMood string    `json:"detectedMood" gorm:"size:30;not null"`
	MoodScore    int       `json:"moodScore" gorm:"default:5"` // 1-10
	Analysis     string    `json:"analysis" gorm:"type:text;not null"`
	Suggestion   string    `json:"suggestion" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName sets the table name.
func (MoodEntry) TableName() string {
	return "mood_entries"
}

// MoodStat is one row of the per-mood aggregation.
type MoodStat struct {
	Mood     string  `json:"mood"`
	Count    int64   `json:"count"`
	AvgScore float64 `json:"avgScore"`
}
