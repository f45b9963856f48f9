package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

// RecommendationRepository provides read access to the recommendation table.
// Rows are returned in catalog order (the position column).
type RecommendationRepository struct {
	db *sql.DB
}

// NewRecommendationRepository creates a new RecommendationRepository with the provided database connection.
func NewRecommendationRepository(db *sql.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

const recommendationColumns = `
	id, symbol, name, current_price, expected_return, confidence, allocation, horizon, rationale
`

// Recommendations retrieves the full catalog.
// Returns an empty slice if the table has no rows.
func (r *RecommendationRepository) Recommendations(ctx context.Context) ([]model.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendation ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendation table: %w", err)
	}
	defer rows.Close()

	recs := []model.Recommendation{}
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation table results: %w", err)
		}
		recs = append(recs, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recommendation table: %w", err)
	}

	return recs, nil
}

// Recommendation retrieves a single recommendation by ID.
// Returns ErrRecommendationNotFound if no row matches.
func (r *RecommendationRepository) Recommendation(ctx context.Context, id string) (model.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendation WHERE id = ?`

	rec, err := scanRecommendation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Recommendation{}, fmt.Errorf("%w: %s", apperrors.ErrRecommendationNotFound, id)
	}
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to query recommendation: %w", err)
	}
	return rec, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecommendation(s scanner) (model.Recommendation, error) {
	var rec model.Recommendation
	err := s.Scan(
		&rec.ID,
		&rec.Symbol,
		&rec.Name,
		&rec.CurrentPrice,
		&rec.ExpectedReturn,
		&rec.Confidence,
		&rec.Allocation,
		&rec.Horizon,
		&rec.Rationale,
	)
	return rec, err
}
