package importer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/buildtrack/construction-api/internal/profanity"
	"github.com/buildtrack/construction-api/internal/projects"
)

// MaxUploadSize caps import uploads at 5MB.
const MaxUploadSize = 5 << 20

var (
	ErrUnsupportedFormat = errors.New("unsupported file format: only .json and .xml files are accepted")
	ErrNoRecords         = errors.New("no valid projects found in file")
)

// ProjectCreator is the slice of the projects repository the pipeline needs.
type ProjectCreator interface {
	Create(ctx context.Context, in projects.NewProject) (projects.Project, error)
}

type ImportedProject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type FailedRecord struct {
	Identifier string   `json:"identifier"`
	Errors     []string `json:"errors"`
}

type Summary struct {
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Imported   []ImportedProject `json:"-"`
	Rejected   []FailedRecord    `json:"-"`
}

type Pipeline struct {
	creator ProjectCreator
	filter  profanity.Filter
}

func NewPipeline(creator ProjectCreator, filter profanity.Filter) *Pipeline {
	return &Pipeline{creator: creator, filter: filter}
}

// Run parses the upload by filename extension, validates each record, and
// inserts the valid ones one at a time in input order. A bad record or a
// failed insert is folded into the summary and never aborts the batch.
func (p *Pipeline) Run(ctx context.Context, filename string, data []byte) (*Summary, error) {
	var records []Record
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		records, err = ParseJSONRecords(data)
	case ".xml":
		records, err = ParseXMLRecords(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	sum := &Summary{
		Imported: make([]ImportedProject, 0, len(records)),
		Rejected: make([]FailedRecord, 0),
	}

	for _, rec := range records {
		sum.Total++

		if errs := ValidateRecord(rec); len(errs) > 0 {
			sum.Rejected = append(sum.Rejected, FailedRecord{
				Identifier: identifierFor(rec),
				Errors:     errs,
			})
			continue
		}

		created, err := p.creator.Create(ctx, projects.NewProject{
			Name:      p.filter.Clean(strings.TrimSpace(rec.Name)),
			Budget:    rec.Budget,
			Status:    rec.Status,
			Province:  rec.Province,
			City:      strings.TrimSpace(rec.City),
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
		})
		if err != nil {
			sum.Rejected = append(sum.Rejected, FailedRecord{
				Identifier: identifierFor(rec),
				Errors:     []string{err.Error()},
			})
			continue
		}

		sum.Imported = append(sum.Imported, ImportedProject{ID: created.ID, Name: created.Name})
	}

	sum.Successful = len(sum.Imported)
	sum.Failed = len(sum.Rejected)
	return sum, nil
}

func identifierFor(r Record) string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return "Unknown"
}
