package recommend

import (
	"net/http"

	"Pulse/internal/calc"
)

type Handler struct{}

func (h *Handler) Load(w http.ResponseWriter, r *http.Request) {
	calc.Serve(w, r, "recommend", WorkingLoad)
}
