package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rmachado/logkeep/internal/commons"
	"github.com/rmachado/logkeep/internal/model"
)

// FileStore keeps one append-only text file per log name under baseDir.
// Appends to the same file are serialized with a per-path mutex so
// concurrent writers never interleave partial lines.
type FileStore struct {
	baseDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", baseDir, err)
	}

	return &FileStore{
		baseDir: baseDir,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileStore) resolve(fileName string) (string, error) {
	if fileName == "" {
		fileName = commons.DefaultLogFile
	}
	if err := model.ValidateLogName(fileName); err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, fileName), nil
}

func (s *FileStore) pathLock(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[path] = lock
	}
	return lock
}

func (s *FileStore) Append(ctx context.Context, fileName string, entry model.LogEntry) error {
	path, err := s.resolve(fileName)
	if err != nil {
		return err
	}

	lock := s.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", fileName, err)
	}
	defer f.Close()

	// One Write call per line: the whole line is visible or none of it is.
	if _, err := f.Write([]byte(entry.Line() + "\n")); err != nil {
		return fmt.Errorf("failed to append to log file %s: %w", fileName, err)
	}

	return nil
}

func (s *FileStore) Read(ctx context.Context, fileName string, maxEntries int, level model.LogLevel) ([]model.LogEntry, error) {
	path, err := s.resolve(fileName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", model.ErrLogNotFound, filepath.Base(path))
		}
		return nil, fmt.Errorf("failed to read log file %s: %w", fileName, err)
	}

	var entries []model.LogEntry
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, parsed := model.ParseLine(line)
		// Filter on the parsed level field, not whole-line containment, so
		// a message body mentioning "[ERROR]" never matches the filter.
		if level != "" && (!parsed || entry.Level != level) {
			continue
		}
		entries = append(entries, entry)
	}

	if maxEntries > 0 && len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	return entries, nil
}

func (s *FileStore) Close() error {
	return nil
}
