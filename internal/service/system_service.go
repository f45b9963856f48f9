package service

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/ndewijer/CryptoShield-Backend/internal/config"
	"github.com/ndewijer/CryptoShield-Backend/internal/database"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
	"github.com/ndewijer/CryptoShield-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db     *sql.DB
	source string
}

// NewSystemService creates a new SystemService. db may be nil when the static
// recommendation source is used and no database is opened.
func NewSystemService(db *sql.DB, source string) *SystemService {
	return &SystemService{
		db:     db,
		source: source,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	if s.db == nil {
		return nil
	}
	return database.HealthCheck(s.db)
}

// DatabaseStatus reports "connected", "disconnected" or "not configured".
func (s *SystemService) DatabaseStatus() string {
	if s.db == nil {
		return "not configured"
	}
	if err := s.CheckHealth(); err != nil {
		return "disconnected"
	}
	return "connected"
}

// CheckVersion returns the application version, the applied migration version
// and the enabled features.
func (s *SystemService) CheckVersion(ctx context.Context) (model.VersionInfo, error) {
	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  "n/a",
		Source:     s.source,
		Features: map[string]bool{
			"usd_conversion":    true,
			"market_comparison": true,
			"sqlite_catalog":    s.source == config.SourceSQLite,
		},
	}

	if s.db != nil {
		v, err := database.Version(ctx, s.db)
		if err != nil {
			return model.VersionInfo{}, err
		}
		info.DbVersion = strconv.FormatInt(v, 10)
	}

	return info, nil
}
