package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// formValues returns a multi-value form field, accepting both the plain
// name and the "name[]" spelling the legacy pages submit.
func formValues(r *http.Request, name string) []string {
	if vals, ok := r.Form[name+"[]"]; ok {
		return vals
	}
	return r.Form[name]
}

func formValue(r *http.Request, name string) string {
	return r.FormValue(name)
}

// idParam parses the {id} route parameter. A malformed id is a caller
// error, not a lookup failure.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
