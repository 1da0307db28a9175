package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/text/language"

	"Pulse/internal/calc"
	"Pulse/internal/calc/catalog"
	"Pulse/internal/health/measure"
)

type Input struct {
	Calculator string          `json:"calculator"`
	Input      json.RawMessage `json:"input"`
	Title      string          `json:"title"`
	Subject    string          `json:"subject"`
	Author     string          `json:"author"`
	Lang       string          `json:"lang"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	lang := language.English
	if input.Lang != "" {
		tag, err := language.Parse(input.Lang)
		if err != nil {
			calc.WriteError(w, "report", measure.Invalid("lang", "unknown language %q", input.Lang))
			return
		}
		lang = tag
	}
	res, err := catalog.Run(input.Calculator, input.Input)
	if err != nil {
		calc.WriteError(w, "report", err)
		return
	}

	var buf bytes.Buffer
	err = Render(&buf, res.Summary(), Options{
		Title:   input.Title,
		Subject: input.Subject,
		Author:  input.Author,
		Lang:    lang,
	})
	if err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Summary().Calculator+"-report.pdf"))
	w.Write(buf.Bytes())
}
