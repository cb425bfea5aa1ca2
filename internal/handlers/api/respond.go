package api

import (
	"encoding/json"
	"log"
	"net/http"

	apperrors "github.com/darkdepths/darkdepths/internal/errors"
)

// envelope is the response shape the client expects on every endpoint
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, envelope{Status: "success", Data: data})
}

func respondMessage(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, envelope{Status: "success", Message: message, Data: data})
}

// respondError maps the error taxonomy onto HTTP statuses. Internal details
// never leave the process; they go to the log instead.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)

	switch code {
	case apperrors.CodeValidation, apperrors.CodeInvalidArgument,
		apperrors.CodePreconditionFailed, apperrors.CodeBlockedPath,
		apperrors.CodeAlreadyExists:
		writeJSON(w, http.StatusBadRequest, envelope{Status: "error", Message: err.Error()})
	case apperrors.CodeNotFound:
		writeJSON(w, http.StatusNotFound, envelope{Status: "error", Message: err.Error()})
	default:
		log.Printf("Internal error on %s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, envelope{
			Status:  "error",
			Message: "Internal server error",
		})
	}
}

// decodeBody parses a JSON request body into dst
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.InvalidArgument("invalid JSON body")
	}
	return nil
}
