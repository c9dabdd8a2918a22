package commons

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rmachado/logkeep/internal/logger"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	if code > 499 {
		logger.Errorf("responding with %d error: %s", code, msg)
	}
	type errorResponse struct {
		Error string `json:"error"`
	}
	RespondWithJSON(w, code, errorResponse{
		Error: msg,
	})
}

// RespondWithFieldErrors reports a validation failure with per-field detail
// so the caller sees every offending field, not just the first.
func RespondWithFieldErrors(w http.ResponseWriter, code int, msg string, fields map[string]string) {
	type fieldErrorResponse struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	RespondWithJSON(w, code, fieldErrorResponse{
		Error:  msg,
		Fields: fields,
	})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	dat, err := json.Marshal(payload)
	if err != nil {
		log.Printf("error marshalling JSON: %s", err)
		w.WriteHeader(500)
		return
	}
	w.WriteHeader(code)
	w.Write(dat)
}
