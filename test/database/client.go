package database

import (
	"testing"

	"github.com/aurora-sre/aurora/pkg/database"
	"github.com/aurora-sre/aurora/test/util"
)

// NewTestClient creates a test database client backed by a per-test schema.
// In CI (when CI_DATABASE_URL is set) it connects to the external PostgreSQL
// service container; locally it uses a shared testcontainer. Both logical
// pools of the production client are served by the same test pool: tests
// exercise service semantics, while the RLS policies themselves live in the
// SQL migrations and require the dedicated app role.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, entClient, db, db)
}
