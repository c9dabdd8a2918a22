package store

import (
	"context"

	"github.com/rmachado/logkeep/internal/model"
)

// Store owns the log files under the base directory. A zero-value level
// passed to Read means no level filter.
type Store interface {
	Append(ctx context.Context, fileName string, entry model.LogEntry) error
	Read(ctx context.Context, fileName string, maxEntries int, level model.LogLevel) ([]model.LogEntry, error)
	Close() error
}
