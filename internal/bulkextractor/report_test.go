package bulkextractor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReport = `<dfxml>
  <creator>
    <program>bulk_extractor</program>
    <version>1.6.0</version>
    <execution_environment>
      <command_line>bulk_extractor in -o out</command_line>
      <start_time>2020-01-01T00:00:00Z</start_time>
    </execution_environment>
  </creator>
  <report>
    <elapsed_seconds>42</elapsed_seconds>
  </report>
  <feature_files>
    <feature_file><name>email</name><count>5</count></feature_file>
    <feature_file><name>url</name><count>10</count></feature_file>
  </feature_files>
</dfxml>`

const noElapsedReport = `<dfxml>
  <creator>
    <program>bulk_extractor</program>
    <version>1.6.0</version>
    <execution_environment>
      <command_line>bulk_extractor in -o out</command_line>
      <start_time>2020-01-01T00:00:00Z</start_time>
    </execution_environment>
  </creator>
  <report>
  </report>
  <feature_files>
    <feature_file><name>email</name><count>5</count></feature_file>
  </feature_files>
</dfxml>`

const noFeaturesReport = `<dfxml>
  <creator>
    <program>bulk_extractor</program>
    <version>1.6.0</version>
    <execution_environment>
      <command_line>bulk_extractor in -o out</command_line>
      <start_time>2020-01-01T00:00:00Z</start_time>
    </execution_environment>
  </creator>
  <report>
    <elapsed_seconds>42</elapsed_seconds>
  </report>
</dfxml>`

const emptyFeaturesReport = `<dfxml>
  <creator>
    <program>bulk_extractor</program>
    <version>1.6.0</version>
    <execution_environment>
      <command_line>bulk_extractor in -o out</command_line>
      <start_time>2020-01-01T00:00:00Z</start_time>
    </execution_environment>
  </creator>
  <report>
    <elapsed_seconds>42</elapsed_seconds>
  </report>
  <feature_files></feature_files>
</dfxml>`

const malformedRecordReport = `<dfxml>
  <creator>
    <program>bulk_extractor</program>
    <version>1.6.0</version>
    <execution_environment>
      <command_line>bulk_extractor in -o out</command_line>
      <start_time>2020-01-01T00:00:00Z</start_time>
    </execution_environment>
  </creator>
  <report>
    <elapsed_seconds>42</elapsed_seconds>
  </report>
  <feature_files>
    <feature_file><name>email</name><count>5</count></feature_file>
    <feature_file><name>url</name></feature_file>
    <feature_file><name>ccn</name><count>7</count></feature_file>
  </feature_files>
</dfxml>`

func writeReport(t *testing.T, content string) string {
	t.Helper()
	outputDir := t.TempDir()
	err := os.WriteFile(filepath.Join(outputDir, ReportFileName), []byte(content), 0644)
	require.NoError(t, err)
	return outputDir
}

func newTestParser() (*Parser, *bytes.Buffer) {
	var logBuffer bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Output:      &logBuffer,
		Level:       hclog.Warn,
		DisableTime: true,
	})
	return NewParser(logger), &logBuffer
}

func TestSummarizeMissingReport(t *testing.T) {
	parser, _ := newTestParser()

	report, summary, err := parser.Summarize(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, MissingReportText, report)
	assert.Equal(t, MissingReportText, summary)
}

func TestSummarizeFullReport(t *testing.T) {
	parser, logBuffer := newTestParser()
	outputDir := writeReport(t, fullReport)

	report, summary, err := parser.Summarize(outputDir)
	require.NoError(t, err)

	assert.Equal(t, "15 artifacts have been extracted.", summary)
	expected := strings.Join([]string{
		"#### Bulk Extractor Results",
		"##### Run Summary",
		"* Program: bulk_extractor - 1.6.0",
		"* Command Line: bulk_extractor in -o out",
		"* Start Time: 2020-01-01T00:00:00Z",
		"* Elapsed Time: 42",
		"##### Scanner Results",
		"* email:5",
		"* url:10",
	}, "\n")
	assert.Equal(t, expected, report)
	assert.Empty(t, logBuffer.String())
}

func TestSummarizeNoScannerSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"absent feature_files section", noFeaturesReport},
		{"empty feature_files section", emptyFeaturesReport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, _ := newTestParser()
			outputDir := writeReport(t, tt.content)

			report, summary, err := parser.Summarize(outputDir)
			require.NoError(t, err)

			assert.Equal(t, "0 artifacts have been extracted.", summary)
			assert.Contains(t, report, "##### There are no findings to report.")
			assert.NotContains(t, report, "##### Scanner Results")
		})
	}
}

func TestSummarizePartialMetadata(t *testing.T) {
	parser, logBuffer := newTestParser()
	outputDir := writeReport(t, noElapsedReport)

	report, summary, err := parser.Summarize(outputDir)
	require.NoError(t, err)

	// Extraction stops at the missing elapsed_seconds field: the findings
	// recorded before it are kept and nothing further is attempted.
	assert.Contains(t, report, "* Program: bulk_extractor - 1.6.0")
	assert.Contains(t, report, "* Command Line: bulk_extractor in -o out")
	assert.Contains(t, report, "* Start Time: 2020-01-01T00:00:00Z")
	assert.NotContains(t, report, "Elapsed Time")
	assert.NotContains(t, report, "email")
	assert.Equal(t, "0 artifacts have been extracted.", summary)
	assert.Contains(t, logBuffer.String(), "elapsed seconds")
}

func TestSummarizeMalformedFeatureRecord(t *testing.T) {
	parser, logBuffer := newTestParser()
	outputDir := writeReport(t, malformedRecordReport)

	report, summary, err := parser.Summarize(outputDir)
	require.NoError(t, err)

	// The walk stops at the record missing its count; the prefix is kept.
	assert.Contains(t, report, "* email:5")
	assert.NotContains(t, report, "url")
	assert.NotContains(t, report, "ccn")
	assert.Equal(t, "5 artifacts have been extracted.", summary)
	assert.Contains(t, logBuffer.String(), "feature_file")
}

func TestSummarizeUnparseableReport(t *testing.T) {
	parser, _ := newTestParser()
	outputDir := writeReport(t, "this is not xml <<<")

	_, _, err := parser.Summarize(outputDir)
	assert.Error(t, err)
}

func TestSummarizeIdempotent(t *testing.T) {
	parser, _ := newTestParser()
	outputDir := writeReport(t, fullReport)

	report1, summary1, err := parser.Summarize(outputDir)
	require.NoError(t, err)
	report2, summary2, err := parser.Summarize(outputDir)
	require.NoError(t, err)

	assert.Equal(t, report1, report2)
	assert.Equal(t, summary1, summary2)
}

func TestFindings(t *testing.T) {
	parser, _ := newTestParser()
	outputDir := writeReport(t, fullReport)

	findings, err := parser.Findings(outputDir)
	require.NoError(t, err)
	assert.Equal(t, []Finding{
		{Name: "email", Count: 5},
		{Name: "url", Count: 10},
	}, findings)
}

func TestFindingsMissingReport(t *testing.T) {
	parser, _ := newTestParser()

	_, err := parser.Findings(t.TempDir())
	assert.Error(t, err)
}
