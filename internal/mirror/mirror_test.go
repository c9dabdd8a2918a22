package mirror_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rmachado/logkeep/internal/mirror"
	"github.com/rmachado/logkeep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingSink struct {
	mu      sync.Mutex
	records []mirror.Record
	err     error
	panics  bool
	closed  bool
}

func (s *capturingSink) Forward(ctx context.Context, record mirror.Record) error {
	if s.panics {
		panic("sink exploded")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return s.err
}

func (s *capturingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *capturingSink) captured() []mirror.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mirror.Record(nil), s.records...)
}

func testEntry() model.LogEntry {
	return model.LogEntry{
		Timestamp: "2024-07-01T10:00:00Z",
		Level:     model.LogLevelError,
		Message:   "disk full",
	}
}

func TestDispatcher_ForwardsRecord(t *testing.T) {
	sink := &capturingSink{}
	tags := map[string]string{"project": "agents", "env": "prod"}
	d := mirror.NewDispatcher(sink, "logkeep", tags, time.Second)

	d.Dispatch(testEntry())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	records := sink.captured()
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0].Level)
	assert.Equal(t, "disk full", records[0].Message)
	assert.Equal(t, "2024-07-01T10:00:00Z", records[0].Timestamp)
	assert.Equal(t, "logkeep", records[0].Source)
	assert.Equal(t, tags, records[0].Fields)
	assert.NotEqual(t, records[0].ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.True(t, sink.closed)
}

func TestDispatcher_SinkErrorNeverSurfaces(t *testing.T) {
	sink := &capturingSink{err: errors.New("collector unreachable")}
	d := mirror.NewDispatcher(sink, "logkeep", nil, time.Second)

	assert.NotPanics(t, func() {
		d.Dispatch(testEntry())
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, d.Close(ctx))
}

func TestDispatcher_SinkPanicIsContained(t *testing.T) {
	sink := &capturingSink{panics: true}
	d := mirror.NewDispatcher(sink, "logkeep", nil, time.Second)

	assert.NotPanics(t, func() {
		d.Dispatch(testEntry())
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, d.Close(ctx))
}

func TestDispatcher_CloseWaitsForInFlight(t *testing.T) {
	sink := &capturingSink{}
	d := mirror.NewDispatcher(sink, "logkeep", nil, time.Second)

	for i := 0; i < 20; i++ {
		d.Dispatch(testEntry())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Len(t, sink.captured(), 20)
}
