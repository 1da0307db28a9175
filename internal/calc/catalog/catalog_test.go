package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Pulse/internal/calc"
	"Pulse/internal/health/measure"
)

func TestExamplesRun(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			require.False(t, seen[e.Name], "duplicate entry")
			seen[e.Name] = true

			res, err := e.Run(e.Example)
			require.NoError(t, err)
			s := res.Summary()
			assert.Equal(t, e.Name, s.Calculator)
			assert.NotEmpty(t, s.Title)
			assert.NotEmpty(t, s.Primary.Results)
			assert.NotEmpty(t, s.Narrative)
			assert.NotEmpty(t, s.Recommendations)
		})
	}
}

func TestExamplesThroughHandlers(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.Handler(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(e.Example)))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup(" BMI ")
	require.NoError(t, err)
	assert.Equal(t, "bmi", e.Name)

	_, err = Lookup("tarot")
	assert.ErrorIs(t, err, calc.ErrUnknownCalculator)
}

func TestRunDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"empty", "", "input"},
		{"malformed", "{", "input"},
		{"wrong type", `{"weight":"heavy","height":180}`, "weight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run("bsa", json.RawMessage(tt.raw))
			var ve measure.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestRunIsDeterministic(t *testing.T) {
	for _, e := range All() {
		a, err := e.Run(e.Example)
		require.NoError(t, err)
		b, err := e.Run(e.Example)
		require.NoError(t, err)
		assert.Equal(t, a, b, e.Name)
	}
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []struct {
		Name    string          `json:"name"`
		Example json.RawMessage `json:"example"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, len(All()))
	assert.Equal(t, "onerm", got[0].Name)
	for _, e := range got {
		assert.True(t, json.Valid(e.Example), e.Name)
	}
}
