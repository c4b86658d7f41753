package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HighScore is the best result reached so far.
type HighScore struct {
	ID         string
	Points     int
	Level      int
	AchievedAt time.Time
}

// NewHighScore creates a record for a finished game.
func NewHighScore(points, level int) *HighScore {
	return &HighScore{
		ID:         uuid.New().String(),
		Points:     points,
		Level:      level,
		AchievedAt: time.Now(),
	}
}

// Beats reports whether h is better than other. Any score beats nil.
func (h *HighScore) Beats(other *HighScore) bool {
	return other == nil || h.Points > other.Points
}

// HighScoreStore defines the interface for persistent high-score storage.
type HighScoreStore interface {
	// Load returns the best stored score, or nil when nothing was saved.
	Load(ctx context.Context) (*HighScore, error)
	// Save records a score.
	Save(ctx context.Context, hs *HighScore) error
	// Close releases storage resources.
	Close() error
}
