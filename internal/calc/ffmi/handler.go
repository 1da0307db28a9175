package ffmi

import (
	"net/http"

	"Pulse/internal/calc"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	calc.Serve(w, r, "ffmi", Calculate)
}
