package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/seedpass/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// GenerateRequest is the JSON body for the generate endpoint. Length 0 selects
// the configured default length.
type GenerateRequest struct {
	SeedText string `json:"seed_text"`
	Length   int    `json:"length"`
}

// PasswordResponse is the JSON representation of a stored password.
type PasswordResponse struct {
	SeedText  string `json:"seed_text"`
	Password  string `json:"password"`
	CreatedAt string `json:"created_at"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Time    string `json:"time"`
}

// toPasswordResponse converts a domain PasswordRecord to its JSON representation.
// created_at keeps the stored local-time layout.
func toPasswordResponse(rec model.PasswordRecord) PasswordResponse {
	return PasswordResponse{
		SeedText:  rec.SeedText,
		Password:  rec.Password,
		CreatedAt: rec.FormattedCreatedAt(),
	}
}
