package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/buildtrack/construction-api/internal/profanity"
	"github.com/buildtrack/construction-api/internal/projects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCreator records inserts and can be told to fail for specific names.
type fakeCreator struct {
	nextID  int64
	created []projects.NewProject
	failOn  map[string]error
}

func (f *fakeCreator) Create(_ context.Context, in projects.NewProject) (projects.Project, error) {
	if err, ok := f.failOn[in.Name]; ok {
		return projects.Project{}, err
	}
	f.nextID++
	f.created = append(f.created, in)
	return projects.Project{
		ID:       f.nextID,
		Name:     in.Name,
		Budget:   in.Budget,
		Status:   in.Status,
		Province: in.Province,
		City:     in.City,
	}, nil
}

func TestPipelineUnsupportedExtension(t *testing.T) {
	p := NewPipeline(&fakeCreator{}, profanity.Noop{})

	_, err := p.Run(context.Background(), "projects.csv", []byte("a,b,c"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPipelineEmptyBatch(t *testing.T) {
	p := NewPipeline(&fakeCreator{}, profanity.Noop{})

	_, err := p.Run(context.Background(), "projects.json", []byte(`{"other":"shape"}`))
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestPipelinePartialFailure(t *testing.T) {
	creator := &fakeCreator{}
	p := NewPipeline(creator, profanity.Noop{})

	payload := `{"projects":[
{"name":"First","budget":100,"status":"planning","province":"Ontario","city":"Ottawa"},
{"name":"Second","budget":200,"status":"planning","province":"Atlantis","city":"Ottawa"},
{"name":"Third","budget":300,"status":"completed","province":"Quebec","city":"Montreal"}
]}`

	sum, err := p.Run(context.Background(), "projects.json", []byte(payload))
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Successful)
	assert.Equal(t, 1, sum.Failed)

	require.Len(t, sum.Rejected, 1)
	assert.Equal(t, "Second", sum.Rejected[0].Identifier)
	require.Len(t, sum.Rejected[0].Errors, 1)
	assert.Contains(t, sum.Rejected[0].Errors[0], "province")

	require.Len(t, sum.Imported, 2)
	assert.Equal(t, "First", sum.Imported[0].Name)
	assert.Equal(t, "Third", sum.Imported[1].Name)
}

func TestPipelineInsertFailureIsFoldedIntoSummary(t *testing.T) {
	creator := &fakeCreator{failOn: map[string]error{"Doomed": errors.New("connection reset")}}
	p := NewPipeline(creator, profanity.Noop{})

	payload := `[
{"name":"Doomed","budget":100,"status":"planning","province":"Ontario","city":"Ottawa"},
{"name":"Fine","budget":100,"status":"planning","province":"Ontario","city":"Ottawa"}
]`

	sum, err := p.Run(context.Background(), "projects.json", []byte(payload))
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Successful)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, "Doomed", sum.Rejected[0].Identifier)
	assert.Equal(t, []string{"connection reset"}, sum.Rejected[0].Errors)
}

func TestPipelineUnnamedRecordReportedAsUnknown(t *testing.T) {
	p := NewPipeline(&fakeCreator{}, profanity.Noop{})

	payload := `[{"budget":100,"status":"planning","province":"Ontario","city":"Ottawa"},
{"name":"Named","budget":100,"status":"planning","province":"Ontario","city":"Ottawa"}]`

	sum, err := p.Run(context.Background(), "projects.json", []byte(payload))
	require.NoError(t, err)

	require.Len(t, sum.Rejected, 1)
	assert.Equal(t, "Unknown", sum.Rejected[0].Identifier)
}

type maskingFilter struct{}

func (maskingFilter) Clean(s string) string {
	if s == "cursed bridge" {
		return "****** bridge"
	}
	return s
}

func TestPipelineFiltersNamesBeforeInsert(t *testing.T) {
	creator := &fakeCreator{}
	p := NewPipeline(creator, maskingFilter{})

	payload := `[{"name":"cursed bridge","budget":100,"status":"planning","province":"Ontario","city":"Ottawa"}]`

	sum, err := p.Run(context.Background(), "projects.json", []byte(payload))
	require.NoError(t, err)

	require.Len(t, creator.created, 1)
	assert.Equal(t, "****** bridge", creator.created[0].Name)
	assert.Equal(t, "****** bridge", sum.Imported[0].Name)
}

func TestPipelineXMLInput(t *testing.T) {
	creator := &fakeCreator{}
	p := NewPipeline(creator, profanity.Noop{})

	payload := `<projects><project><name>Span</name><budget>500</budget><status>on-hold</status><province>Manitoba</province><city>Winnipeg</city></project></projects>`

	sum, err := p.Run(context.Background(), "projects.XML", []byte(payload))
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Successful)
	assert.Equal(t, "Span", creator.created[0].Name)
}
