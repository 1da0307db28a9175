package lastresult

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"Pulse/internal/calc"
	"Pulse/internal/calc/catalog"
)

type Handler struct {
	Store *Store
}

// Last recomputes the most recent successful result for the calculator in
// the path from the input kept in its cookie.
func (h *Handler) Last(w http.ResponseWriter, r *http.Request) {
	entry, err := catalog.Lookup(mux.Vars(r)["calc"])
	if err != nil {
		calc.WriteError(w, "last", err)
		return
	}
	input, err := h.Store.Load(r, entry.Name)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "No stored result", http.StatusNotFound)
		return
	}
	if err != nil {
		calc.WriteError(w, "last", err)
		return
	}
	res, err := entry.Run(input)
	if err != nil {
		calc.WriteError(w, entry.Name, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
