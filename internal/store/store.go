// Package store persists fantasy scoring settings and computed projections
// in Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/courtside/hoopcast/services/projection-service/internal/scoring"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
)

// ErrNotFound means the requested row does not exist
var ErrNotFound = errors.New("not found")

// Store wraps the projection-service database
type Store struct {
	db *sql.DB
}

// New creates a store over an open database handle
func New(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

// Open connects to Postgres and verifies the connection
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return New(db), nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetUserWeights loads a user's scoring weights, falling back to the
// defaults when the user has never saved any
func (s *Store) GetUserWeights(ctx context.Context, userID string) (scoring.Weights, error) {
	query := `
		SELECT weights
		FROM fantasy_settings
		WHERE user_id = $1
	`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return scoring.DefaultWeights(), nil
	}
	if err != nil {
		return scoring.Weights{}, fmt.Errorf("loading settings: %w", err)
	}

	var weights scoring.Weights
	if err := json.Unmarshal(raw, &weights); err != nil {
		return scoring.Weights{}, fmt.Errorf("decoding settings: %w", err)
	}

	return weights, nil
}

// UpdateUserWeights merges a sparse category→value map into the user's
// stored weights, field by field, and saves the result. Categories absent
// from the update keep their current values.
func (s *Store) UpdateUserWeights(ctx context.Context, userID string, partial map[string]float64) (scoring.Weights, error) {
	current, err := s.GetUserWeights(ctx, userID)
	if err != nil {
		return scoring.Weights{}, err
	}

	// Re-encode the current weights as a category map, overlay the update,
	// and rebuild. Keeps the merge field-level without a second merge path.
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return scoring.Weights{}, fmt.Errorf("encoding current weights: %w", err)
	}

	merged := map[string]float64{}
	if err := json.Unmarshal(currentJSON, &merged); err != nil {
		return scoring.Weights{}, fmt.Errorf("decoding current weights: %w", err)
	}
	for key, value := range partial {
		merged[key] = value
	}

	weights := scoring.WeightsFromPartial(merged)

	data, err := json.Marshal(weights)
	if err != nil {
		return scoring.Weights{}, fmt.Errorf("encoding weights: %w", err)
	}

	query := `
		INSERT INTO fantasy_settings (user_id, weights, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			weights = EXCLUDED.weights,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, userID, data); err != nil {
		return scoring.Weights{}, fmt.Errorf("saving settings: %w", err)
	}

	return weights, nil
}

// ResetUserWeights restores a user's settings to the defaults
func (s *Store) ResetUserWeights(ctx context.Context, userID string) (scoring.Weights, error) {
	weights := scoring.DefaultWeights()

	data, err := json.Marshal(weights)
	if err != nil {
		return scoring.Weights{}, fmt.Errorf("encoding weights: %w", err)
	}

	query := `
		INSERT INTO fantasy_settings (user_id, weights, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			weights = EXCLUDED.weights,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, userID, data); err != nil {
		return scoring.Weights{}, fmt.Errorf("resetting settings: %w", err)
	}

	return weights, nil
}

// SavedProjection is a persisted season projection row
type SavedProjection struct {
	ID         string                  `json:"id"`
	Player     string                  `json:"player"`
	Season     string                  `json:"season"`
	Method     models.Method           `json:"method"`
	Projection models.SeasonProjection `json:"projection"`
	CreatedAt  time.Time               `json:"created_at"`
}

// SaveSeasonProjection persists a computed season projection.
// Returns the new row's ID.
func (s *Store) SaveSeasonProjection(ctx context.Context, player, season string, projection *models.SeasonProjection) (string, error) {
	data, err := json.Marshal(projection)
	if err != nil {
		return "", fmt.Errorf("encoding projection: %w", err)
	}

	id := uuid.New().String()

	query := `
		INSERT INTO projections (id, player, season, method, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, id, player, season, string(projection.Method), data); err != nil {
		return "", fmt.Errorf("saving projection: %w", err)
	}

	return id, nil
}

// LatestSeasonProjection loads the most recent persisted projection for a
// player, season and method
func (s *Store) LatestSeasonProjection(ctx context.Context, player, season string, method models.Method) (*SavedProjection, error) {
	query := `
		SELECT id, player, season, method, payload, created_at
		FROM projections
		WHERE player = $1 AND season = $2 AND method = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var (
		saved     SavedProjection
		methodStr string
		payload   []byte
	)

	err := s.db.QueryRowContext(ctx, query, player, season, string(method)).Scan(
		&saved.ID,
		&saved.Player,
		&saved.Season,
		&methodStr,
		&payload,
		&saved.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading projection: %w", err)
	}

	saved.Method = models.Method(methodStr)
	if err := json.Unmarshal(payload, &saved.Projection); err != nil {
		return nil, fmt.Errorf("decoding projection: %w", err)
	}

	return &saved, nil
}
