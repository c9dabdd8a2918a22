package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rmachado/logkeep/internal/commons"
	"github.com/rmachado/logkeep/internal/mirror"
	"github.com/rmachado/logkeep/internal/model"
	"github.com/rmachado/logkeep/internal/store"
)

// LogService validates requests, applies defaults, and drives the store.
// The mirror is handed each accepted entry after the local append succeeds;
// its outcome is never awaited.
type LogService struct {
	store  store.Store
	mirror mirror.Forwarder
}

func NewLogService(store store.Store, mirror mirror.Forwarder) *LogService {
	return &LogService{
		store:  store,
		mirror: mirror,
	}
}

func (s *LogService) Write(ctx context.Context, params WriteParams) (WriteResult, error) {
	entry, fileName, err := s.validateWrite(params)
	if err != nil {
		return WriteResult{}, err
	}

	if err := s.store.Append(ctx, fileName, entry); err != nil {
		return WriteResult{}, fmt.Errorf("failed to write log entry: %w", err)
	}

	if s.mirror != nil {
		s.mirror.Dispatch(entry)
	}

	return WriteResult{
		File: fileName,
		Line: entry.Line(),
	}, nil
}

func (s *LogService) validateWrite(params WriteParams) (model.LogEntry, string, error) {
	vErr := model.NewValidationError()

	if params.Message == "" {
		vErr.Add("message", model.ErrEmptyMessage.Error())
	}

	level := model.LogLevelInfo
	if params.Level != "" {
		parsed, err := model.ParseLevel(params.Level)
		if err != nil {
			vErr.Add("level", fmt.Sprintf("must be one of INFO, WARN, ERROR, DEBUG, got %q", params.Level))
		} else {
			level = parsed
		}
	}

	timestamp := params.Timestamp
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
	} else if err := model.ValidateTimestamp(timestamp); err != nil {
		vErr.Add("timestamp", fmt.Sprintf("must be RFC 3339, got %q", params.Timestamp))
	}

	fileName := params.LogFile
	if fileName == "" {
		fileName = commons.DefaultLogFile
	} else if err := model.ValidateLogName(fileName); err != nil {
		vErr.Add("logFile", fmt.Sprintf("must be a plain file name without path elements, got %q", params.LogFile))
	}

	if vErr.HasErrors() {
		return model.LogEntry{}, "", vErr
	}

	return model.LogEntry{
		Timestamp: timestamp,
		Level:     level,
		Message:   params.Message,
	}, fileName, nil
}

func (s *LogService) Read(ctx context.Context, params ReadParams) (ReadResult, error) {
	vErr := model.NewValidationError()

	maxEntries := params.MaxEntries
	if maxEntries == 0 {
		maxEntries = commons.DefaultMaxEntries
	} else if maxEntries < 0 {
		vErr.Add("maxEntries", fmt.Sprintf("must be a positive integer, got %d", params.MaxEntries))
	}

	var level model.LogLevel
	if params.Level != "" {
		parsed, err := model.ParseLevel(params.Level)
		if err != nil {
			vErr.Add("level", fmt.Sprintf("must be one of INFO, WARN, ERROR, DEBUG, got %q", params.Level))
		} else {
			level = parsed
		}
	}

	fileName := params.LogFile
	if fileName == "" {
		fileName = commons.DefaultLogFile
	} else if err := model.ValidateLogName(fileName); err != nil {
		vErr.Add("logFile", fmt.Sprintf("must be a plain file name without path elements, got %q", params.LogFile))
	}

	if vErr.HasErrors() {
		return ReadResult{}, vErr
	}

	entries, err := s.store.Read(ctx, fileName, maxEntries, level)
	if err != nil {
		return ReadResult{}, err
	}

	return ReadResult{
		File:    fileName,
		Entries: entries,
	}, nil
}
