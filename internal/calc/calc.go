// Package calc holds the HTTP plumbing shared by every calculator handler.
package calc

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Pulse/internal/health/measure"
)

var ErrUnknownCalculator = errors.New("unknown calculator")

// Serve decodes a JSON input, runs fn on it and writes the JSON result.
func Serve[I, R any](w http.ResponseWriter, r *http.Request, name string, fn func(I) (R, error)) {
	var input I
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := fn(input)
	if err != nil {
		WriteError(w, name, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// WriteError maps validation failures to 400 with the offending field,
// unknown calculators to 404 and everything else to 500.
func WriteError(w http.ResponseWriter, name string, err error) {
	var ve measure.ValidationError
	if errors.As(err, &ve) {
		WriteJSON(w, http.StatusBadRequest, map[string]measure.ValidationError{"error": ve})
		return
	}
	if errors.Is(err, ErrUnknownCalculator) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Printf("%s: %v", name, err)
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}
