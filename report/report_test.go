package report_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/internal/fixture"
	"github.com/viant/refd/location"
	"github.com/viant/refd/project"
	"github.com/viant/refd/report"
	"gopkg.in/yaml.v3"
)

var root = filepath.Join(string(filepath.Separator), "src")

func dangers() []*location.LabeledSet {
	b := fixture.New()
	a := b.Class("A")
	am := b.Method(a, "m", "void")
	bc := b.Class("B")
	b.Extends(bc, a)
	bm := b.Method(bc, "m", "void")
	b.Override(bm, am)
	b.Source(bm, filepath.Join(root, "app", "B.java"), 40, 12)
	cc := b.Class("C")
	b.Extends(cc, a)
	cm := b.Method(cc, "m", "void")
	b.Override(cm, am)
	d := b.Class("D")
	b.Extends(d, a)
	return []*location.LabeledSet{
		location.NewMethodSet(b.G, graph.NewSet(bm, cm)).Label("LostSpecification.Method"),
		location.NewClassSet(b.G, graph.NewSet(d)).Label("MissingSuperImplementation.Class"),
	}
}

func newReport(t *testing.T) *report.Report {
	result, err := report.New("RemoveMethod(A.m())", dangers(), report.WithRunID("run-1"), report.WithProject(&project.Project{RootPath: root}))
	require.NoError(t, err)
	return result
}

func TestNew(t *testing.T) {
	actual := newReport(t)
	expected := `
- rule: LostSpecification.Method
  message: LostSpecification - Method
  name: m
  path: app/B.java
  offset: 40
  length: 12
- rule: LostSpecification.Method
  message: LostSpecification - Method
  name: m
- rule: MissingSuperImplementation.Class
  message: MissingSuperImplementation - Class
  name: D
`
	var expectedFindings []*report.Finding
	require.NoError(t, yaml.Unmarshal([]byte(expected), &expectedFindings))

	ids := map[string]bool{}
	for _, finding := range actual.Findings {
		assert.Len(t, finding.ID, 16)
		ids[finding.ID] = true
	}
	assert.Len(t, ids, 3, "finding ids are distinct")

	again := newReport(t)
	for i, finding := range again.Findings {
		assert.Equal(t, actual.Findings[i].ID, finding.ID, "finding ids are stable")
		finding.ID = ""
	}
	assert.Equal(t, expectedFindings, again.Findings)
	assert.Equal(t, []string{"LostSpecification.Method", "MissingSuperImplementation.Class"}, actual.Rules())
	assert.Equal(t, "run-1", actual.RunID)
}

func TestNew_RunID(t *testing.T) {
	first, err := report.New("r", nil)
	require.NoError(t, err)
	second, err := report.New("r", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestReport_Write(t *testing.T) {
	var testCases = []struct {
		description string
		format      string
		dangers     []*location.LabeledSet
		expected    string
	}{
		{
			description: "text",
			format:      report.FormatText,
			dangers:     dangers(),
			expected: `RemoveMethod(A.m())
  LostSpecification - Method: m (app/B.java@40:12)
  LostSpecification - Method: m
  MissingSuperImplementation - Class: D
`,
		},
		{
			description: "default format",
			format:      "",
			expected: `RemoveMethod(A.m())
no dangers
`,
		},
		{
			description: "yaml",
			format:      "YAML",
			expected: `runId: run-1
refactoring: RemoveMethod(A.m())
findings: []
`,
		},
	}
	for _, testCase := range testCases {
		r, err := report.New("RemoveMethod(A.m())", testCase.dangers, report.WithRunID("run-1"), report.WithProject(&project.Project{RootPath: root}))
		require.NoError(t, err, testCase.description)
		buffer := &bytes.Buffer{}
		require.NoError(t, r.Write(buffer, testCase.format), testCase.description)
		assert.Equal(t, testCase.expected, buffer.String(), testCase.description)
	}
}

func TestReport_WriteUnsupported(t *testing.T) {
	err := newReport(t).Write(&bytes.Buffer{}, "html")
	assert.EqualError(t, err, "unsupported report format: html")
}

func TestReport_SARIF(t *testing.T) {
	buffer := &bytes.Buffer{}
	require.NoError(t, newReport(t).Write(buffer, report.FormatSARIF))

	var document struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							CharOffset int `json:"charOffset"`
							CharLength int `json:"charLength"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &document))
	assert.Equal(t, "2.1.0", document.Version)
	require.Len(t, document.Runs, 1)
	run := document.Runs[0]
	assert.Equal(t, "refd", run.Tool.Driver.Name)
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, "LostSpecification.Method", run.Tool.Driver.Rules[0].ID)
	require.Len(t, run.Results, 3)
	assert.Equal(t, "warning", run.Results[0].Level)
	require.Len(t, run.Results[0].Locations, 1)
	assert.Equal(t, "app/B.java", run.Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 40, run.Results[0].Locations[0].PhysicalLocation.Region.CharOffset)
	assert.Equal(t, 12, run.Results[0].Locations[0].PhysicalLocation.Region.CharLength)
	assert.Empty(t, run.Results[1].Locations)
	assert.Equal(t, "MissingSuperImplementation.Class", run.Results[2].RuleID)
}
