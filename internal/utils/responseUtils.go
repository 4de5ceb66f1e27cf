package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// RespondWithJSON writes payload as a JSON response with the given status.
func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// SendJSONError writes an error response in the {"detail": ...} envelope the
// frontend expects.
func SendJSONError(w http.ResponseWriter, message string, status int) {
	RespondWithJSON(w, status, map[string]string{"detail": message})
}
