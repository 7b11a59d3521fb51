package importer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type jsonProject struct {
	Name      string `json:"name"`
	Budget    any    `json:"budget"`
	Status    string `json:"status"`
	Province  string `json:"province"`
	City      string `json:"city"`
	Latitude  any    `json:"latitude"`
	Longitude any    `json:"longitude"`
}

// ParseJSONRecords accepts either a top-level array of projects or an object
// with a "projects" array. Any other well-formed JSON yields zero records.
func ParseJSONRecords(b []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(b)
	if !json.Valid(trimmed) {
		return nil, &ParseError{msg: "invalid JSON"}
	}

	// The input is known to be well-formed at this point, so an unmarshal
	// failure means the shape does not match; that yields zero records
	// rather than an error.
	var elems []jsonProject
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			elems = nil
		}
	case len(trimmed) > 0 && trimmed[0] == '{':
		var wrapper struct {
			Projects []jsonProject `json:"projects"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err == nil {
			elems = wrapper.Projects
		}
	}

	records := make([]Record, 0, len(elems))
	for _, e := range elems {
		rec := Record{
			Name:      e.Name,
			Status:    e.Status,
			Province:  e.Province,
			City:      e.City,
			Latitude:  coerceFloat(e.Latitude),
			Longitude: coerceFloat(e.Longitude),
		}
		rec.Budget, rec.HasBudget = coerceBudget(e.Budget)
		records = append(records, rec)
	}
	return records, nil
}

// coerceBudget reports whether the field was present at all; a present but
// non-numeric value becomes NaN so the validator rejects it downstream.
func coerceBudget(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return math.NaN(), true
		}
		return f, true
	default:
		return math.NaN(), true
	}
}

func coerceFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
