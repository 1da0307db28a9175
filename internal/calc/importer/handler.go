package importer

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"Pulse/internal/calc"
	"Pulse/internal/calc/batch"
)

const maxUpload = 10 << 20

type Handler struct {
	Workers int
}

type ImportResult struct {
	Count   int          `json:"count"`
	Results batch.Result `json:"results"`
}

// Import accepts a multipart "file" field. The response is a workbook unless
// ?format=json is given.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["calc"]
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	sheet, err := Read(file)
	if err != nil {
		calc.WriteError(w, "import", err)
		return
	}
	res, err := Process(r.Context(), name, sheet, h.Workers)
	if err != nil {
		calc.WriteError(w, "import", err)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		calc.WriteJSON(w, http.StatusOK, ImportResult{Count: len(res.Results), Results: res})
		return
	}
	var buf bytes.Buffer
	if err := Write(&buf, sheet, res); err != nil {
		calc.WriteError(w, "import", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Calculator+"-results.xlsx"))
	w.Write(buf.Bytes())
}
