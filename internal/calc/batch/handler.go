package batch

import (
	"encoding/json"
	"net/http"

	"Pulse/internal/calc"
)

type Handler struct {
	Workers int
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(r.Context(), input, h.Workers)
	if err != nil {
		calc.WriteError(w, "batch", err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
