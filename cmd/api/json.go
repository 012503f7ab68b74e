package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &response.ErrorResponse{Error: message})
}

// writeStoreError maps the store taxonomy onto HTTP statuses. Anything it
// does not recognize is an infrastructure failure.
func writeStoreError(w http.ResponseWriter, err error) error {
	var validationErr *store.ValidationError
	var notFoundErr *store.NotFoundError
	var conflictErr *store.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return writeJSONError(w, http.StatusBadRequest, validationErr.Msg)
	case errors.As(err, &notFoundErr):
		return writeJSONError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		return writeJSONError(w, http.StatusConflict, conflictErr.Error())
	default:
		return writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	return dec.Decode(data)
}
