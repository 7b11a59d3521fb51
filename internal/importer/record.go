package importer

// Record is a candidate project extracted from an uploaded file but not yet
// validated. Both parsers produce this shape so the pipeline is
// format-agnostic.
type Record struct {
	Name     string
	Status   string
	Province string
	City     string

	// Budget is NaN when the source value did not parse as a number.
	// HasBudget is false when the source omitted the field entirely.
	Budget    float64
	HasBudget bool

	// Coordinates are stored as given; no range validation is performed.
	Latitude  float64
	Longitude float64
}

// ParseError reports input that could not be decoded at all, as opposed to
// records that decoded but failed validation.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }
