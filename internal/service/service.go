package service

import (
	"context"

	"github.com/rmachado/logkeep/internal/model"
)

type WriteParams struct {
	Level     string
	Message   string
	Timestamp string
	LogFile   string
}

type WriteResult struct {
	File string
	Line string
}

type ReadParams struct {
	LogFile    string
	MaxEntries int
	Level      string
}

type ReadResult struct {
	File    string
	Entries []model.LogEntry
}

type LogServiceInterface interface {
	Write(ctx context.Context, params WriteParams) (WriteResult, error)
	Read(ctx context.Context, params ReadParams) (ReadResult, error)
}
