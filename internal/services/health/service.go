package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service. A nil database means the
// process runs on in-memory storage and the check is skipped.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status reports process liveness and, when configured, database
// reachability.
func (s *Service) Status(ctx context.Context) map[string]any {
	status := map[string]any{"ok": true}
	if s.DB == nil {
		status["database"] = "memory"
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		status["ok"] = false
		status["database"] = "unreachable"
		return status
	}
	status["database"] = "ok"
	return status
}
