package model

import (
	"time"

	"github.com/google/uuid"
)

// DiagRecord is one entry of the process's own diagnostic trail, distinct
// from the log entries the server stores on behalf of callers.
type DiagRecord struct {
	ID        uuid.UUID `json:"id"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}
