package database

import (
	"context"
	"fmt"

	"github.com/aurora-sre/aurora/ent"
)

// tenantSettingSQL pins the tenant identity for the current transaction.
// set_config with is_local=true scopes the setting to the transaction, so a
// pooled connection never leaks one tenant's identity into another tenant's
// statements. Every RLS policy filters on
// current_setting('app.current_user_id', true); with the setting absent the
// policies match nothing, so unscoped statements on the app role fail closed.
const tenantSettingSQL = "SELECT set_config('app.current_user_id', $1, true)"

// WithTenant runs fn inside a transaction whose tenant identity is pinned to
// userID. All reads and writes through tx are RLS-filtered to that tenant.
// The transaction commits when fn returns nil and rolls back otherwise.
func WithTenant(ctx context.Context, client *ent.Client, userID string, fn func(tx *ent.Tx) error) error {
	if userID == "" {
		return fmt.Errorf("tenant transaction requires a user id")
	}

	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tenant transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, tenantSettingSQL, userID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("set tenant identity: %w", err)
	}

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tenant transaction: %w", err)
	}
	return nil
}
