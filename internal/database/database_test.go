package database_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/CryptoShield-Backend/internal/database"
	"github.com/ndewijer/CryptoShield-Backend/internal/testutil"
)

func TestMigrate(t *testing.T) {
	t.Run("applies schema and seed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM recommendation`).Scan(&count))
		assert.Equal(t, 3, count)
	})

	t.Run("is idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		require.NoError(t, database.Migrate(context.Background(), db, zerolog.Nop()))

		v, err := database.Version(context.Background(), db)
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)
	})
}

func TestVersion(t *testing.T) {
	t.Run("concurrent reads return the same version", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		g, ctx := errgroup.WithContext(context.Background())
		versions := make([]int64, 8)
		for i := range versions {
			g.Go(func() error {
				v, err := database.Version(ctx, db)
				versions[i] = v
				return err
			})
		}
		require.NoError(t, g.Wait())

		for _, v := range versions {
			assert.Equal(t, int64(2), v)
		}
	})

	t.Run("fails on an unmigrated database", func(t *testing.T) {
		db, err := sql.Open("sqlite", ":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		db.SetMaxOpenConns(1)

		_, err = database.Version(context.Background(), db)
		assert.Error(t, err)
	})
}
