// Package sarif converts bulk_extractor scanner findings into SARIF reports
// consumable by downstream analysis tooling.
package sarif

import (
	"fmt"
	"os"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/berggren/turbinia/internal/bulkextractor"
)

const (
	toolName           = "bulk_extractor"
	toolInformationURI = "https://github.com/simsong/bulk_extractor"
)

// FromFindings builds a SARIF report with one result per scanner finding.
func FromFindings(findings []bulkextractor.Finding) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	for _, finding := range findings {
		rule := run.AddRule(fmt.Sprintf("bulk-extractor/%s", finding.Name)).
			WithDescription(fmt.Sprintf("Features reported by the %s scanner", finding.Name))

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(fmt.Sprintf("%s.txt", finding.Name))),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(fmt.Sprintf("%s: %d features extracted", finding.Name, finding.Count))).
			WithLevel("note").
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	report.AddRun(run)

	return report, nil
}

// WriteFile writes the report to outputPath as pretty printed JSON.
func WriteFile(report *sarif.Report, outputPath string) error {
	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := report.PrettyWrite(file); err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	return nil
}
