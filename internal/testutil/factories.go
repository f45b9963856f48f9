package testutil

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/CryptoShield-Backend/internal/model"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
)

// RecommendationBuilder provides a fluent interface for creating test recommendations.
//
// Example usage:
//
//	// In-memory record with defaults
//	rec := testutil.NewRecommendation().Build()
//
//	// Customized record stored in the database
//	rec := testutil.NewRecommendation().
//	    WithSymbol("ETH/USDT").
//	    WithAllocation("25").
//	    Insert(t, db)
type RecommendationBuilder struct {
	rec      model.Recommendation
	position int
}

// NewRecommendation creates a RecommendationBuilder with sensible defaults.
func NewRecommendation() *RecommendationBuilder {
	return &RecommendationBuilder{
		rec: model.Recommendation{
			ID:             MakeID(),
			Symbol:         MakeSymbol("TST"),
			Name:           "Test Coin",
			CurrentPrice:   decimal.RequireFromString("1.25"),
			ExpectedReturn: decimal.RequireFromString("0.5"),
			Confidence:     decimal.RequireFromString("90"),
			Allocation:     decimal.RequireFromString("10"),
			Horizon:        service.DefaultHorizon,
			Rationale:      "Test rationale",
		},
	}
}

// WithID sets a custom ID.
func (b *RecommendationBuilder) WithID(id string) *RecommendationBuilder {
	b.rec.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *RecommendationBuilder) WithSymbol(symbol string) *RecommendationBuilder {
	b.rec.Symbol = symbol
	return b
}

// WithName sets a custom display name.
func (b *RecommendationBuilder) WithName(name string) *RecommendationBuilder {
	b.rec.Name = name
	return b
}

// WithPrice sets the current price from a decimal string.
func (b *RecommendationBuilder) WithPrice(price string) *RecommendationBuilder {
	b.rec.CurrentPrice = decimal.RequireFromString(price)
	return b
}

// WithExpectedReturn sets the expected return percent from a decimal string.
func (b *RecommendationBuilder) WithExpectedReturn(ret string) *RecommendationBuilder {
	b.rec.ExpectedReturn = decimal.RequireFromString(ret)
	return b
}

// WithConfidence sets the confidence percent from a decimal string.
func (b *RecommendationBuilder) WithConfidence(conf string) *RecommendationBuilder {
	b.rec.Confidence = decimal.RequireFromString(conf)
	return b
}

// WithAllocation sets the allocation percent from a decimal string.
func (b *RecommendationBuilder) WithAllocation(alloc string) *RecommendationBuilder {
	b.rec.Allocation = decimal.RequireFromString(alloc)
	return b
}

// AtPosition sets the catalog position used when inserting.
func (b *RecommendationBuilder) AtPosition(pos int) *RecommendationBuilder {
	b.position = pos
	return b
}

// Build returns the recommendation without touching a database.
func (b *RecommendationBuilder) Build() model.Recommendation {
	return b.rec
}

// Insert stores the recommendation in the database and returns it.
func (b *RecommendationBuilder) Insert(t *testing.T, db *sql.DB) model.Recommendation {
	t.Helper()

	query := `
		INSERT INTO recommendation (id, position, symbol, name, current_price, expected_return, confidence, allocation, horizon, rationale)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.rec.ID,
		b.position,
		b.rec.Symbol,
		b.rec.Name,
		b.rec.CurrentPrice.String(),
		b.rec.ExpectedReturn.String(),
		b.rec.Confidence.String(),
		b.rec.Allocation.String(),
		b.rec.Horizon,
		b.rec.Rationale,
	)
	if err != nil {
		t.Fatalf("Failed to create recommendation: %v", err)
	}

	return b.rec
}

// DefaultRecommendations returns a copy of the built-in catalog.
func DefaultRecommendations() []model.Recommendation {
	return service.DefaultCatalog()
}
