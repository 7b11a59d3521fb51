package projects

// Statuses is the closed set of project statuses accepted on any write path.
var Statuses = []string{"planning", "in-progress", "completed", "on-hold"}

// Provinces is the closed set of provinces. Matching is literal and
// case-sensitive.
var Provinces = []string{
	"Alberta",
	"British Columbia",
	"Manitoba",
	"New Brunswick",
	"Newfoundland and Labrador",
	"Nova Scotia",
	"Ontario",
	"Prince Edward Island",
	"Quebec",
	"Saskatchewan",
}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func ValidProvince(p string) bool {
	for _, v := range Provinces {
		if p == v {
			return true
		}
	}
	return false
}
