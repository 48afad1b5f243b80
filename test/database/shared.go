package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/pkg/database"
	"github.com/aurora-sre/aurora/test/util"
)

// SharedTestDB creates a single PostgreSQL schema shared by multiple test
// replicas. Each replica gets its own connection pool via NewClient, but all
// pools point at the same schema, enabling cross-replica tests that exercise
// NOTIFY/LISTEN event delivery.
type SharedTestDB struct {
	connStrWithSchema string
	baseConnStr       string
	schemaName        string
}

// NewSharedTestDB creates the shared schema, builds the tables once, and
// registers t.Cleanup to drop the schema.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	baseConnStr := util.GetBaseConnectionString(t)
	schemaName := util.GenerateSchemaName(t)

	db, err := stdsql.Open("pgx", baseConnStr)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	_ = db.Close()

	connStrWithSchema := util.AddSearchPathToConnString(baseConnStr, schemaName)
	setupDB, err := stdsql.Open("pgx", connStrWithSchema)
	require.NoError(t, err)
	drv := entsql.OpenDB(dialect.Postgres, setupDB)
	setupClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, setupClient.Schema.Create(ctx))
	require.NoError(t, setupClient.Close())

	t.Cleanup(func() {
		db, err := stdsql.Open("pgx", baseConnStr)
		if err != nil {
			t.Logf("Warning: failed to reconnect for schema drop: %v", err)
			return
		}
		defer db.Close()
		if _, err := db.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schemaName, err)
		}
	})

	return &SharedTestDB{
		connStrWithSchema: connStrWithSchema,
		baseConnStr:       baseConnStr,
		schemaName:        schemaName,
	}
}

// ConnString returns the schema-scoped connection string, e.g. for the
// notify listener's dedicated connection.
func (s *SharedTestDB) ConnString() string {
	return s.connStrWithSchema
}

// NewClient opens an independent pool onto the shared schema.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, err := stdsql.Open("pgx", s.connStrWithSchema)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})

	return database.NewClientFromEnt(entClient, entClient, db, db)
}
