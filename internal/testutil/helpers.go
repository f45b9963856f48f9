package testutil

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/CryptoShield-Backend/internal/config"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
	"github.com/ndewijer/CryptoShield-Backend/internal/repository"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
)

var symbolCounter atomic.Int64

// TestAllocationConfig returns the production default allocation settings.
func TestAllocationConfig() config.AllocationConfig {
	return config.AllocationConfig{
		Source:               config.SourceStatic,
		CapitalMin:           10000,
		CapitalMax:           1000000,
		CapitalDefault:       50000,
		CapitalStep:          5000,
		StopLossPercent:      decimal.NewFromInt(2),
		PositionLimitPercent: decimal.NewFromInt(20),
		USDRate:              decimal.NewFromInt(830),
		MarketAverageReturn:  decimal.RequireFromString("-0.46"),
	}
}

// TestConfig returns a full configuration suitable for router tests.
func TestConfig() *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{Host: "localhost", Port: "0", Addr: "localhost:0"},
		CORS:       config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Logging:    config.LoggingConfig{Level: "disabled", Format: "json"},
		Allocation: TestAllocationConfig(),
	}
}

// NewTestAllocationService creates an AllocationService over the built-in static catalog.
func NewTestAllocationService(t *testing.T) *service.AllocationService {
	t.Helper()
	return NewTestAllocationServiceWithSource(t, service.NewStaticRecommendationSource(nil))
}

// NewTestAllocationServiceWithRecommendations creates an AllocationService over recs.
func NewTestAllocationServiceWithRecommendations(t *testing.T, recs []model.Recommendation) *service.AllocationService {
	t.Helper()
	return NewTestAllocationServiceWithSource(t, service.NewStaticRecommendationSource(recs))
}

// NewTestAllocationServiceWithSource creates an AllocationService over an arbitrary source.
func NewTestAllocationServiceWithSource(t *testing.T, source service.RecommendationSource) *service.AllocationService {
	t.Helper()
	return service.NewAllocationService(source, TestAllocationConfig(), zerolog.Nop())
}

// NewTestAllocationServiceWithDB creates an AllocationService backed by the sqlite repository.
func NewTestAllocationServiceWithDB(t *testing.T, db *sql.DB) *service.AllocationService {
	t.Helper()
	return NewTestAllocationServiceWithSource(t, repository.NewRecommendationRepository(db))
}

// NewTestSystemService creates a SystemService reporting the static source.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db, config.SourceStatic)
}

// MakeID returns a new random UUID string.
func MakeID() string {
	return uuid.New().String()
}

// MakeSymbol returns a unique trading pair symbol with the given prefix.
func MakeSymbol(prefix string) string {
	return fmt.Sprintf("%s%d/USDT", prefix, symbolCounter.Add(1))
}
