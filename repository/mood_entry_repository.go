package repository

import (
	"context"
	"fmt"

	"Moosic/model"

	"gorm.io/gorm"
)

// MoodEntryRepository defines the interface for mood history operations.
type MoodEntryRepository interface {
	Create(ctx context.Context, entry *model.MoodEntry) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]*model.MoodEntry, error)
	StatsByUser(ctx context.Context, userID int64) ([]model.MoodStat, error)
}

// gormMoodEntryRepository implements MoodEntryRepository on GORM.
type gormMoodEntryRepository struct {
	db *gorm.DB
}

// NewGormMoodEntryRepository creates a new gormMoodEntryRepository.
func NewGormMoodEntryRepository(db *gorm.DB) MoodEntryRepository {
	return &gormMoodEntryRepository{db: db}
}

// Create persists one mood entry.
func (r *gormMoodEntryRepository) Create(ctx context.Context, entry *model.MoodEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}
	return nil
}

// ListByUser returns the user's most recent entries, newest first.
func (r *gormMoodEntryRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*model.MoodEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []*model.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries for user %d: %w", userID, err)
	}
	return entries, nil
}

// StatsByUser aggregates entry count and average score per detected mood,
// most frequent mood first.
func (r *gormMoodEntryRepository) StatsByUser(ctx context.Context, userID int64) ([]model.MoodStat, error) {
	var stats []model.MoodStat
	err := r.db.WithContext(ctx).
		Model(&model.MoodEntry{}).
		Select("detected_mood AS mood, COUNT(*) AS count, AVG(mood_score) AS avg_score").
		Where("user_id = ?", userID).
		Group("detected_mood").
		Order("count DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate mood stats for user %d: %w", userID, err)
	}
	return stats, nil
}
