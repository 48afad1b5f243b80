package database

import (
	"context"
	stdsql "database/sql"
	"time"
)

// HealthStatus reports database reachability and pool statistics.
type HealthStatus struct {
	Reachable   bool          `json:"reachable"`
	Latency     time.Duration `json:"latency_ms"`
	OpenConns   int           `json:"open_conns"`
	InUseConns  int           `json:"in_use_conns"`
	IdleConns   int           `json:"idle_conns"`
	Error       string        `json:"error,omitempty"`
}

// Health pings the database and returns pool stats.
func Health(ctx context.Context, db *stdsql.DB) HealthStatus {
	start := time.Now()
	err := db.PingContext(ctx)
	stats := db.Stats()

	status := HealthStatus{
		Reachable:  err == nil,
		Latency:    time.Since(start),
		OpenConns:  stats.OpenConnections,
		InUseConns: stats.InUse,
		IdleConns:  stats.Idle,
	}
	if err != nil {
		status.Error = err.Error()
	}
	return status
}
