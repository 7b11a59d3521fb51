package importer

import (
	"math"
	"strings"

	"github.com/buildtrack/construction-api/internal/projects"
)

// ValidateRecord runs every check and returns all violations; an empty slice
// means the record is valid. Latitude and longitude are not range-checked.
func ValidateRecord(r Record) []string {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}

	switch {
	case !r.HasBudget:
		errs = append(errs, "budget is required")
	case math.IsNaN(r.Budget):
		errs = append(errs, "budget must be a number")
	case r.Budget <= 0:
		errs = append(errs, "budget must be greater than zero")
	}

	if !projects.ValidStatus(r.Status) {
		errs = append(errs, "status must be one of: "+strings.Join(projects.Statuses, ", "))
	}

	if !projects.ValidProvince(r.Province) {
		errs = append(errs, "province must be a valid province")
	}

	if strings.TrimSpace(r.City) == "" {
		errs = append(errs, "city is required")
	}

	return errs
}
