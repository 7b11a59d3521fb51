package importer

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"
)

type xmlProject struct {
	Name      string `xml:"name"`
	Budget    string `xml:"budget"`
	Status    string `xml:"status"`
	Province  string `xml:"province"`
	City      string `xml:"city"`
	Latitude  string `xml:"latitude"`
	Longitude string `xml:"longitude"`
}

type xmlProjects struct {
	XMLName  xml.Name     `xml:"projects"`
	Projects []xmlProject `xml:"project"`
}

// ParseXMLRecords decodes a <projects><project>...</project></projects>
// document. A single child still yields a one-element slice.
func ParseXMLRecords(b []byte) ([]Record, error) {
	var doc xmlProjects
	if err := xml.Unmarshal(b, &doc); err != nil {
		return nil, &ParseError{msg: "invalid XML: " + err.Error()}
	}

	records := make([]Record, 0, len(doc.Projects))
	for _, e := range doc.Projects {
		rec := Record{
			Name:      e.Name,
			Status:    e.Status,
			Province:  e.Province,
			City:      e.City,
			Latitude:  xmlFloat(e.Latitude),
			Longitude: xmlFloat(e.Longitude),
		}
		if budget := strings.TrimSpace(e.Budget); budget != "" {
			rec.HasBudget = true
			f, err := strconv.ParseFloat(budget, 64)
			if err != nil {
				rec.Budget = math.NaN()
			} else {
				rec.Budget = f
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func xmlFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
