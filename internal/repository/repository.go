package repository

import (
	"context"
	"time"

	"github.com/rmachado/logkeep/internal/model"
)

// DiagRepository persists the process diagnostic trail. It is optional:
// when no diagnostics database is configured the trail only reaches
// stdout/stderr.
type DiagRepository interface {
	SaveRecord(ctx context.Context, record model.DiagRecord) error
	CreatePartition(ctx context.Context, month time.Time) error
	Close() error
}
