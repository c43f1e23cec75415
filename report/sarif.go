package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	toolName = "refd"
	toolURI  = "https://github.com/viant/refd"
)

func (r *Report) writeSARIF(w io.Writer) error {
	document, err := r.SARIF()
	if err != nil {
		return err
	}
	return document.PrettyWrite(w)
}

// SARIF converts the report into a SARIF 2.1.0 document with one run
func (r *Report) SARIF() (*sarif.Report, error) {
	document, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}
	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	for _, finding := range r.Findings {
		run.AddRule(finding.Rule).
			WithDescription(finding.Message).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "warning"})

		result := sarif.NewRuleResult(finding.Rule).
			WithMessage(sarif.NewTextMessage(fmt.Sprintf("%v: %v (%v)", finding.Message, finding.Name, r.Refactoring))).
			WithLevel("warning")
		if finding.Path != "" {
			region := sarif.NewRegion().WithCharOffset(finding.Offset).WithCharLength(finding.Length)
			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(finding.Path)).
					WithRegion(region),
			)
			result.WithLocations([]*sarif.Location{location})
		}
		run.AddResult(result)
	}
	document.AddRun(run)
	return document, nil
}
