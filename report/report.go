// Package report turns labeled dangers into findings and renders them as text, YAML or SARIF
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
	"github.com/viant/refd/project"
	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatText  = "text"
	FormatYAML  = "yaml"
	FormatSARIF = "sarif"
)

// Finding is one dangerous location
type Finding struct {
	ID      string `yaml:"id" json:"id"`
	Rule    string `yaml:"rule" json:"rule"`
	Message string `yaml:"message" json:"message"`
	Name    string `yaml:"name" json:"name"`
	Path    string `yaml:"path,omitempty" json:"path,omitempty"`
	Offset  int    `yaml:"offset,omitempty" json:"offset,omitempty"`
	Length  int    `yaml:"length,omitempty" json:"length,omitempty"`
}

// Report collects the findings of one analysis run
type Report struct {
	RunID       string     `yaml:"runId" json:"runId"`
	Refactoring string     `yaml:"refactoring" json:"refactoring"`
	Findings    []*Finding `yaml:"findings" json:"findings"`
	project     *project.Project
}

// Option configures a report
type Option func(*Report)

// WithRunID overrides the generated run identifier
func WithRunID(id string) Option {
	return func(r *Report) {
		r.RunID = id
	}
}

// WithProject reports source paths relative to the project root
func WithProject(p *project.Project) Option {
	return func(r *Report) {
		r.project = p
	}
}

// New creates a report for the dangers of a refactoring
func New(refactoring string, dangers []*location.LabeledSet, opts ...Option) (*Report, error) {
	result := &Report{RunID: uuid.New().String(), Refactoring: refactoring}
	for _, opt := range opts {
		opt(result)
	}
	var err error
	for _, danger := range dangers {
		message := danger.Message()
		danger.Mark(func(label, name string, source *graph.Source) {
			if err != nil {
				return
			}
			finding := &Finding{Rule: label, Message: message, Name: name}
			if source != nil {
				finding.Path = result.project.Relative(source.Path)
				finding.Offset = source.Offset
				finding.Length = source.Length
			}
			if finding.ID, err = identity(finding); err == nil {
				result.Findings = append(result.Findings, finding)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to report %v: %w", danger.Label, err)
		}
	}
	return result, nil
}

// identity is stable across runs for the same rule and location
func identity(finding *Finding) (string, error) {
	key := fmt.Sprintf("%v|%v|%v|%d|%d", finding.Rule, finding.Name, finding.Path, finding.Offset, finding.Length)
	sum, err := graph.Hash([]byte(key))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// Rules returns distinct finding rules in first seen order
func (r *Report) Rules() []string {
	var result []string
	seen := map[string]bool{}
	for _, finding := range r.Findings {
		if seen[finding.Rule] {
			continue
		}
		seen[finding.Rule] = true
		result = append(result, finding.Rule)
	}
	return result
}

// Write renders the report in the given format
func (r *Report) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return r.writeText(w)
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatSARIF:
		return r.writeSARIF(w)
	}
	return fmt.Errorf("unsupported report format: %v", format)
}

func (r *Report) writeText(w io.Writer) error {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "%v\n", r.Refactoring)
	if len(r.Findings) == 0 {
		builder.WriteString("no dangers\n")
	}
	for _, finding := range r.Findings {
		fmt.Fprintf(builder, "  %v: %v", finding.Message, finding.Name)
		if finding.Path != "" {
			fmt.Fprintf(builder, " (%v@%d:%d)", finding.Path, finding.Offset, finding.Length)
		}
		builder.WriteByte('\n')
	}
	_, err := io.WriteString(w, builder.String())
	return err
}
