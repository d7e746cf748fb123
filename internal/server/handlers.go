package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/0Shafa/education-dashboard/internal/dashboard"
	"github.com/0Shafa/education-dashboard/internal/dataset"
)

// Meta describes the dataset so the page can populate its controls: the
// selectable countries and indicators, the year bounds, and the default
// display window.
type Meta struct {
	Title       string   `json:"title"`
	Shape       string   `json:"shape"`
	Rows        int      `json:"rows"`
	Countries   []string `json:"countries"`
	Indicators  []string `json:"indicators"`
	YearMin     int      `json:"yearMin"`
	YearMax     int      `json:"yearMax"`
	DefaultFrom int      `json:"defaultFrom"`
	DefaultTo   int      `json:"defaultTo"`
}

func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	shape, err := dataset.Validate(s.table)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	bounds, err := dataset.YearBounds(s.table, shape)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	win := dataset.DefaultWindow(bounds)
	writeJSON(w, http.StatusOK, Meta{
		Title:       pageTitle,
		Shape:       shape.String(),
		Rows:        s.table.NumRows(),
		Countries:   dataset.Countries(s.table),
		Indicators:  dataset.Indicators(s.table),
		YearMin:     bounds.From,
		YearMax:     bounds.To,
		DefaultFrom: win.From,
		DefaultTo:   win.To,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	shape, err := dataset.Validate(s.table)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	bounds, err := dataset.YearBounds(s.table, shape)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	win := dataset.DefaultWindow(bounds)

	q := r.URL.Query()
	country := q.Get("country")
	if country == "" {
		if cs := dataset.Countries(s.table); len(cs) > 0 {
			country = cs[0]
		}
	}
	indicator := q.Get("indicator")
	if indicator == "" {
		if is := dataset.Indicators(s.table); len(is) > 0 {
			indicator = is[0]
		}
	}
	sel := dataset.Selection{
		Country:   country,
		Indicator: indicator,
		Years: dataset.YearRange{
			From: intParam(q.Get("from"), win.From),
			To:   intParam(q.Get("to"), win.To),
		},
	}

	res, err := dashboard.Render(s.table, sel)
	if err != nil {
		var se *dataset.SchemaError
		if errors.As(err, &se) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// intParam parses a query value, falling back to def when absent or invalid.
func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
