package mirror

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rmachado/logkeep/internal/logger"
	"github.com/rmachado/logkeep/internal/model"
)

// Record is the structured shape the collector consumes.
type Record struct {
	ID        uuid.UUID         `json:"id"`
	Level     string            `json:"level"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Source    string            `json:"source"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// Sink delivers one record to the external collector.
type Sink interface {
	Forward(ctx context.Context, record Record) error
	Close() error
}

// Forwarder is the surface the write path sees: hand off an entry and move
// on. The outcome of delivery is never observed by the caller.
type Forwarder interface {
	Dispatch(entry model.LogEntry)
}

// Dispatcher forwards accepted writes to a sink, at most once, without ever
// delaying or failing the write that triggered it. Delivery errors and
// panics are absorbed at the goroutine boundary and only reach the
// diagnostic trail.
type Dispatcher struct {
	sink    Sink
	source  string
	tags    map[string]string
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(sink Sink, source string, tags map[string]string, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		sink:    sink,
		source:  source,
		tags:    tags,
		timeout: timeout,
	}
}

func (d *Dispatcher) Dispatch(entry model.LogEntry) {
	record := Record{
		ID:        uuid.New(),
		Level:     string(entry.Level),
		Message:   entry.Message,
		Timestamp: entry.Timestamp,
		Source:    d.source,
		Fields:    d.tags,
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("mirror dispatch panic: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sink.Forward(ctx, record); err != nil {
			logger.Errorf("failed to mirror entry to collector: %v", err)
		}
	}()
}

// Close waits for in-flight dispatches, bounded by ctx, then closes the
// sink.
func (d *Dispatcher) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Error("timed out waiting for in-flight mirror dispatches")
	}

	return d.sink.Close()
}
