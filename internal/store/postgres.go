package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_scores (
    id TEXT PRIMARY KEY,
    points INTEGER NOT NULL,
    level INTEGER NOT NULL,
    achieved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_high_scores_points ON high_scores(points DESC);
`

// PostgresStore implements HighScoreStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Load returns the highest score. Ties go to the earliest record.
func (s *PostgresStore) Load(ctx context.Context) (*HighScore, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, points, level, achieved_at
		 FROM high_scores ORDER BY points DESC, achieved_at ASC LIMIT 1`)

	hs, err := scanHighScore(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return hs, err
}

// Save inserts a score record.
func (s *PostgresStore) Save(ctx context.Context, hs *HighScore) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO high_scores (id, points, level, achieved_at)
		 VALUES ($1, $2, $3, $4)`,
		hs.ID, hs.Points, hs.Level, hs.AchievedAt)
	return err
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanHighScore(row pgx.Row) (*HighScore, error) {
	var hs HighScore
	err := row.Scan(&hs.ID, &hs.Points, &hs.Level, &hs.AchievedAt)
	if err != nil {
		return nil, err
	}
	return &hs, nil
}
