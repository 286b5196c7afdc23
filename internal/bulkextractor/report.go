package bulkextractor

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/berggren/turbinia/pkg/shared/text"
)

const (
	// ReportFileName is the structured report bulk_extractor writes into its
	// output directory.
	ReportFileName = "report.xml"

	// MissingReportText is returned for both the report and the summary when
	// the tool ran but produced no report file.
	MissingReportText = "Execution successful, but the report is not available."
)

// Finding is one scanner's result count as reported by bulk_extractor.
type Finding struct {
	Name  string
	Count int
}

// Parser reads a bulk_extractor output directory and renders its report.
// Missing fields are tolerated: extraction stops at the first absent field
// and the findings collected up to that point are kept.
type Parser struct {
	logger hclog.Logger
}

// NewParser creates a Parser that emits diagnostics to the given logger.
func NewParser(logger hclog.Logger) *Parser {
	return &Parser{logger: logger}
}

// document mirrors the subset of the bulk_extractor report consumed here.
// Pointer fields distinguish absent elements from empty ones.
type document struct {
	Creator      creator       `xml:"creator"`
	Report       runReport     `xml:"report"`
	FeatureFiles *featureFiles `xml:"feature_files"`
}

type creator struct {
	Program              *string              `xml:"program"`
	Version              *string              `xml:"version"`
	ExecutionEnvironment executionEnvironment `xml:"execution_environment"`
}

type executionEnvironment struct {
	CommandLine *string `xml:"command_line"`
	StartTime   *string `xml:"start_time"`
}

type runReport struct {
	ElapsedSeconds *string `xml:"elapsed_seconds"`
}

type featureFiles struct {
	Files []featureFile `xml:"feature_file"`
}

type featureFile struct {
	Name  *string `xml:"name"`
	Count *string `xml:"count"`
}

func loadDocument(reportPath string) (*document, error) {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %q: %w", reportPath, err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse report %q: %w", reportPath, err)
	}
	return &doc, nil
}

// Summarize renders the report found in outputDir into a findings report and
// a one line status summary. An absent report file is a normal outcome and
// yields a fixed placeholder pair. An unparseable report file is an error.
func (p *Parser) Summarize(outputDir string) (string, string, error) {
	reportPath := filepath.Join(outputDir, ReportFileName)
	if _, err := os.Stat(reportPath); os.IsNotExist(err) {
		return MissingReportText, MissingReportText, nil
	}

	doc, err := loadDocument(reportPath)
	if err != nil {
		return "", "", err
	}

	findings := []string{
		text.Heading4("Bulk Extractor Results"),
		text.Heading5("Run Summary"),
	}

	total := 0
	metadata, complete := p.metadataFindings(doc)
	findings = append(findings, metadata...)
	if complete {
		scannerLines, featureTotal := p.scannerFindings(doc)
		findings = append(findings, scannerLines...)
		total = featureTotal
	}

	summary := fmt.Sprintf("%d artifacts have been extracted.", total)
	return strings.Join(findings, "\n"), summary, nil
}

// Findings returns the per-scanner result counts from the report in
// outputDir. Unlike Summarize, a missing report file is an error here.
func (p *Parser) Findings(outputDir string) ([]Finding, error) {
	doc, err := loadDocument(filepath.Join(outputDir, ReportFileName))
	if err != nil {
		return nil, err
	}
	return p.collectFindings(doc), nil
}

// metadataFindings extracts the run metadata lines in their fixed order.
// The first absent field stops extraction: the lines gathered so far are
// returned with complete set to false.
func (p *Parser) metadataFindings(doc *document) ([]string, bool) {
	var lines []string

	program := doc.Creator.Program
	version := doc.Creator.Version
	if program == nil || version == nil {
		p.reportFieldMissing("creator program or version")
		return lines, false
	}
	lines = append(lines, text.Bullet(fmt.Sprintf("Program: %s - %s", *program, *version)))

	commandLine := doc.Creator.ExecutionEnvironment.CommandLine
	if commandLine == nil {
		p.reportFieldMissing("command line")
		return lines, false
	}
	lines = append(lines, text.Bullet(fmt.Sprintf("Command Line: %s", *commandLine)))

	startTime := doc.Creator.ExecutionEnvironment.StartTime
	if startTime == nil {
		p.reportFieldMissing("start time")
		return lines, false
	}
	lines = append(lines, text.Bullet(fmt.Sprintf("Start Time: %s", *startTime)))

	elapsed := doc.Report.ElapsedSeconds
	if elapsed == nil {
		p.reportFieldMissing("elapsed seconds")
		return lines, false
	}
	lines = append(lines, text.Bullet(fmt.Sprintf("Elapsed Time: %s", *elapsed)))

	return lines, true
}

// scannerFindings renders the scanner result section and accumulates the
// total feature count.
func (p *Parser) scannerFindings(doc *document) ([]string, int) {
	if doc.FeatureFiles == nil || len(doc.FeatureFiles.Files) == 0 {
		return []string{text.Heading5("There are no findings to report.")}, 0
	}

	lines := []string{text.Heading5("Scanner Results")}
	total := 0
	for _, finding := range p.collectFindings(doc) {
		lines = append(lines, text.Bullet(fmt.Sprintf("%s:%d", finding.Name, finding.Count)))
		total += finding.Count
	}
	return lines, total
}

// collectFindings walks the feature_file records, validating each record's
// shape. A malformed record stops the walk, keeping the records collected
// before it.
func (p *Parser) collectFindings(doc *document) []Finding {
	if doc.FeatureFiles == nil {
		return nil
	}

	var findings []Finding
	for _, record := range doc.FeatureFiles.Files {
		if record.Name == nil || record.Count == nil {
			p.reportFieldMissing("feature_file name or count")
			break
		}
		count, err := strconv.Atoi(strings.TrimSpace(*record.Count))
		if err != nil {
			p.logger.Warn("Error parsing feature from report, stopping extraction",
				"name", *record.Name, "count", *record.Count)
			break
		}
		findings = append(findings, Finding{Name: *record.Name, Count: count})
	}
	return findings
}

func (p *Parser) reportFieldMissing(field string) {
	p.logger.Warn("Report field is missing, stopping extraction", "field", field)
}
