package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rmachado/logkeep/internal/model"
	"github.com/rmachado/logkeep/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*store.FileStore, string) {
	dir := t.TempDir()
	fs, err := store.NewFileStore(dir)
	require.NoError(t, err)
	return fs, dir
}

func readLines(t *testing.T, path string) []string {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestNewFileStore_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	_, err := store.NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_Append(t *testing.T) {
	fs, dir := setupTestStore(t)
	ctx := context.Background()

	entry := model.LogEntry{
		Timestamp: "2024-07-01T10:00:00Z",
		Level:     model.LogLevelInfo,
		Message:   "service started",
	}
	require.NoError(t, fs.Append(ctx, "svc.log", entry))

	lines := readLines(t, filepath.Join(dir, "svc.log"))
	require.Len(t, lines, 1)
	assert.Equal(t, "[2024-07-01T10:00:00Z] [INFO] service started", lines[0])

	require.NoError(t, fs.Append(ctx, "svc.log", entry))
	lines = readLines(t, filepath.Join(dir, "svc.log"))
	assert.Len(t, lines, 2)
}

func TestFileStore_Append_DefaultFile(t *testing.T) {
	fs, dir := setupTestStore(t)

	entry := model.LogEntry{
		Timestamp: "2024-07-01T10:00:00Z",
		Level:     model.LogLevelInfo,
		Message:   "hello",
	}
	require.NoError(t, fs.Append(context.Background(), "", entry))

	_, err := os.Stat(filepath.Join(dir, "app.log"))
	assert.NoError(t, err)
}

func TestFileStore_Append_RejectsTraversal(t *testing.T) {
	fs, _ := setupTestStore(t)

	entry := model.LogEntry{
		Timestamp: "2024-07-01T10:00:00Z",
		Level:     model.LogLevelInfo,
		Message:   "hello",
	}

	for _, name := range []string{"../escape.log", "sub/escape.log", ".."} {
		err := fs.Append(context.Background(), name, entry)
		assert.ErrorIs(t, err, model.ErrInvalidLogName, "name %q", name)
	}
}

func TestFileStore_Read_MissingFile(t *testing.T) {
	fs, _ := setupTestStore(t)

	entries, err := fs.Read(context.Background(), "absent.log", 10, "")
	assert.ErrorIs(t, err, model.ErrLogNotFound)
	assert.Contains(t, err.Error(), "absent.log")
	assert.Empty(t, entries)
}

func TestFileStore_Read_TailSemantics(t *testing.T) {
	fs, _ := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		entry := model.LogEntry{
			Timestamp: fmt.Sprintf("2024-07-01T10:00:0%dZ", i),
			Level:     model.LogLevelInfo,
			Message:   fmt.Sprintf("event %d", i),
		}
		require.NoError(t, fs.Append(ctx, "svc.log", entry))
	}

	entries, err := fs.Read(ctx, "svc.log", 3, "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "event 2", entries[0].Message)
	assert.Equal(t, "event 3", entries[1].Message)
	assert.Equal(t, "event 4", entries[2].Message)
}

func TestFileStore_Read_LevelFilterMatchesFieldNotBody(t *testing.T) {
	fs, _ := setupTestStore(t)
	ctx := context.Background()

	entries := []model.LogEntry{
		{Timestamp: "2024-07-01T10:00:00Z", Level: model.LogLevelInfo, Message: "upstream reported [ERROR] in payload"},
		{Timestamp: "2024-07-01T10:00:01Z", Level: model.LogLevelError, Message: "disk full"},
		{Timestamp: "2024-07-01T10:00:02Z", Level: model.LogLevelWarn, Message: "slow response"},
	}
	for _, entry := range entries {
		require.NoError(t, fs.Append(ctx, "svc.log", entry))
	}

	filtered, err := fs.Read(ctx, "svc.log", 10, model.LogLevelError)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "disk full", filtered[0].Message)
}

func TestFileStore_Read_SkipsBlankLines(t *testing.T) {
	fs, dir := setupTestStore(t)

	content := "[2024-07-01T10:00:00Z] [INFO] first\n\n\n[2024-07-01T10:00:01Z] [INFO] second\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svc.log"), []byte(content), 0o644))

	entries, err := fs.Read(context.Background(), "svc.log", 10, "")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFileStore_Read_EmptyFilteredSet(t *testing.T) {
	fs, _ := setupTestStore(t)
	ctx := context.Background()

	entry := model.LogEntry{
		Timestamp: "2024-07-01T10:00:00Z",
		Level:     model.LogLevelInfo,
		Message:   "all good",
	}
	require.NoError(t, fs.Append(ctx, "svc.log", entry))

	entries, err := fs.Read(ctx, "svc.log", 10, model.LogLevelError)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_ConcurrentAppends(t *testing.T) {
	fs, dir := setupTestStore(t)
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := model.LogEntry{
				Timestamp: "2024-07-01T10:00:00Z",
				Level:     model.LogLevelInfo,
				Message:   fmt.Sprintf("concurrent event %d", i),
			}
			assert.NoError(t, fs.Append(ctx, "svc.log", entry))
		}(i)
	}
	wg.Wait()

	lines := readLines(t, filepath.Join(dir, "svc.log"))
	require.Len(t, lines, writers)
	for _, line := range lines {
		_, ok := model.ParseLine(line)
		assert.True(t, ok, "corrupted line: %q", line)
	}
}
