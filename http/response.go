package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sanhariharan/invesplannner/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// decodeJSON enforces a JSON content type and decodes the body into v. It
// writes the error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeError(w, r, http.StatusUnsupportedMediaType, errors.New("Content-Type must be application/json"))
		return false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("error decoding request body")
		writeError(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return false
	}
	return true
}

// encodeFailureBody is sent when the response value itself cannot be encoded,
// e.g. a non-finite float.
const encodeFailureBody = `{"error":"internal server error"}` + "\n"

// writeJSON encodes into a buffer first so a failed encode never sends a
// partial 200.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	logger := zerolog.Ctx(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error().Err(err).Msg("error encoding response")
		buf.Reset()
		buf.WriteString(encodeFailureBody)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: verr.Error(), Field: verr.Field})
		return
	}

	zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	writeError(w, r, http.StatusInternalServerError, errors.New("internal server error"))
}
