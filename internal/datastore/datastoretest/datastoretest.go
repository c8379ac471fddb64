// Package datastoretest opens migrated in-memory databases for tests.
package datastoretest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"partnerhub/internal/datastore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// NewDB returns a private in-memory database with every table created. A single
// connection is kept open so the database lives until the test ends.
func NewDB(t testing.TB) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		db.Close()
	})

	require.NoError(t, datastore.Migrate(context.Background(), db))
	return db
}
