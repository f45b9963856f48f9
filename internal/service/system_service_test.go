package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/CryptoShield-Backend/internal/config"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
	"github.com/ndewijer/CryptoShield-Backend/internal/testutil"
)

func TestSystemService(t *testing.T) {
	t.Run("reports migration version from database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewSystemService(db, config.SourceSQLite)

		info, err := svc.CheckVersion(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "2", info.DbVersion)
		assert.Equal(t, config.SourceSQLite, info.Source)
		assert.True(t, info.Features["sqlite_catalog"])
		assert.Equal(t, "connected", svc.DatabaseStatus())
	})

	t.Run("works without a database", func(t *testing.T) {
		svc := service.NewSystemService(nil, config.SourceStatic)

		assert.NoError(t, svc.CheckHealth())
		assert.Equal(t, "not configured", svc.DatabaseStatus())

		info, err := svc.CheckVersion(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "n/a", info.DbVersion)
		assert.False(t, info.Features["sqlite_catalog"])
	})

	t.Run("reports closed database as unhealthy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewSystemService(db, config.SourceSQLite)
		db.Close()

		assert.Error(t, svc.CheckHealth())
		assert.Equal(t, "disconnected", svc.DatabaseStatus())
	})

	t.Run("reports version from concurrent requests", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewSystemService(db, config.SourceSQLite)

		var wg sync.WaitGroup
		versions := make([]string, 8)
		errs := make([]error, 8)
		for i := range versions {
			wg.Add(1)
			go func() {
				defer wg.Done()
				info, err := svc.CheckVersion(context.Background())
				versions[i], errs[i] = info.DbVersion, err
			}()
		}
		wg.Wait()

		for i := range versions {
			require.NoError(t, errs[i])
			assert.Equal(t, "2", versions[i])
		}
	})
}
