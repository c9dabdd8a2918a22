package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rmachado/logkeep/internal/model"
	"github.com/rmachado/logkeep/internal/repository"
)

var (
	InfoLogger          *log.Logger
	ErrorLogger         *log.Logger
	recordChan          chan model.DiagRecord
	diagRepo            repository.DiagRepository
	loggerBufferSize    = 1000
	LoggerSleepDuration = 100 * time.Millisecond
)

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	recordChan = make(chan model.DiagRecord, loggerBufferSize)
}

// InitLogger wires the optional persistence backend. A nil repo keeps the
// diagnostic trail on stdout/stderr only.
func InitLogger(repo repository.DiagRepository) {
	diagRepo = repo
	if diagRepo != nil {
		go processRecords()
	}
}

func processRecords() {
	for record := range recordChan {
		if err := diagRepo.SaveRecord(context.Background(), record); err != nil {
			ErrorLogger.Printf("failed to save diagnostic record: %v", err)
		}
	}
}

func logAsync(level model.LogLevel, message string) {
	if level == model.LogLevelInfo {
		InfoLogger.Println(message)
	} else {
		ErrorLogger.Println(message)
	}

	if diagRepo == nil {
		return
	}

	record := model.DiagRecord{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
		Source:    "application",
	}

	select {
	case recordChan <- record:
	default:
		ErrorLogger.Printf("diagnostic channel full. Dropping record: %v", record)
	}
}

func Info(v ...interface{}) {
	logAsync(model.LogLevelInfo, fmt.Sprint(v...))
}

func Infof(format string, v ...interface{}) {
	logAsync(model.LogLevelInfo, fmt.Sprintf(format, v...))
}

func Error(v ...interface{}) {
	logAsync(model.LogLevelError, fmt.Sprint(v...))
}

func Errorf(format string, v ...interface{}) {
	logAsync(model.LogLevelError, fmt.Sprintf(format, v...))
}

// Shutdown drains buffered records and closes the repository. It is a no-op
// beyond channel closure when no repository was configured.
func Shutdown(ctx context.Context) error {
	close(recordChan)

	if diagRepo == nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if len(recordChan) == 0 {
				return diagRepo.Close()
			}
			time.Sleep(LoggerSleepDuration)
		}
	}
}
