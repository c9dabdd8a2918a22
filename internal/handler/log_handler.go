package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rmachado/logkeep/internal/commons"
	"github.com/rmachado/logkeep/internal/model"
	"github.com/rmachado/logkeep/internal/service"
)

type LogHandler struct {
	logService service.LogServiceInterface
}

func NewLogHandler(logService service.LogServiceInterface) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

func (h *LogHandler) WriteLog(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Level     string `json:"level"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
		LogFile   string `json:"logFile"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		commons.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.logService.Write(r.Context(), service.WriteParams{
		Level:     body.Level,
		Message:   body.Message,
		Timestamp: body.Timestamp,
		LogFile:   body.LogFile,
	})
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			commons.RespondWithFieldErrors(w, http.StatusBadRequest, "validation failed", vErr.Fields)
			return
		}
		commons.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	commons.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": fmt.Sprintf("appended to %s: %s", result.File, result.Line),
	})
}

func (h *LogHandler) ReadLogs(w http.ResponseWriter, r *http.Request) {
	params := service.ReadParams{
		LogFile: r.URL.Query().Get("logFile"),
		Level:   r.URL.Query().Get("level"),
	}

	if maxStr := r.URL.Query().Get("maxEntries"); maxStr != "" {
		max, err := strconv.Atoi(maxStr)
		if err != nil {
			commons.RespondWithFieldErrors(w, http.StatusBadRequest, "validation failed", map[string]string{
				"maxEntries": fmt.Sprintf("must be a positive integer, got %q", maxStr),
			})
			return
		}
		params.MaxEntries = max
	}

	result, err := h.logService.Read(r.Context(), params)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			commons.RespondWithFieldErrors(w, http.StatusBadRequest, "validation failed", vErr.Fields)
			return
		}
		if errors.Is(err, model.ErrLogNotFound) {
			commons.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		commons.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	lines := make([]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		lines = append(lines, entry.Line())
	}

	if len(lines) == 0 {
		commons.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"entries": lines,
			"message": "no entries found",
		})
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"entries": lines,
		"count":   len(lines),
	})
}
