// Package bulkextractor runs the bulk_extractor feature extraction tool
// against a piece of evidence and turns its report into task results.
package bulkextractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/berggren/turbinia/internal/evidence"
	"github.com/berggren/turbinia/internal/task"
)

// TaskName identifies the task in results and logs.
const TaskName = "BulkExtractorTask"

// Task generates bulk_extractor output from input evidence.
type Task struct {
	*task.Task

	binary         string
	additionalArgs []string
	parser         *Parser
}

// New creates a bulk_extractor task. outputDir is the task-owned root the
// tool output directory is derived under.
func New(binary, outputDir string, additionalArgs []string, logger hclog.Logger) *Task {
	return &Task{
		Task:           task.New(TaskName, outputDir, logger),
		binary:         binary,
		additionalArgs: additionalArgs,
		parser:         NewParser(logger),
	}
}

// Run executes bulk_extractor against the evidence and finalizes the result.
// The result is closed exactly once on every path; the returned value is the
// same result the caller passed in.
func (t *Task) Run(ev *evidence.Evidence, res *task.Result) *task.Result {
	if res.Closed() {
		t.Logger().Error("refusing to run with an already closed result", "task", t.Name)
		return res
	}
	if err := ev.Validate(); err != nil {
		res.Close(false, err.Error())
		return res
	}

	// The output evidence gets its path before the tool is invoked so it can
	// be registered and retained regardless of later parse outcome.
	outputEvidence := evidence.NewBulkExtractorOutput()
	outputPath := filepath.Join(t.OutputDir, filepath.Base(ev.LocalPath))
	outputEvidence.LocalPath = outputPath

	cmdline := t.commandLine(ev.LocalPath, outputPath)
	res.Log(fmt.Sprintf("Running Bulk Extractor as [%s]", cmdline))
	if err := t.Execute(cmdline, res, outputEvidence); err != nil {
		res.Close(false, err.Error())
		return res
	}

	report, summary, err := t.parser.Summarize(outputPath)
	if err != nil {
		res.Close(false, err.Error())
		return res
	}
	outputEvidence.TextData = report
	res.ReportData = report

	if err := outputEvidence.Compress(); err != nil {
		res.Close(false, err.Error())
		return res
	}

	res.Close(true, summary)
	return res
}

// commandLine builds the tool invocation for the given input and output.
func (t *Task) commandLine(inputPath, outputPath string) string {
	parts := []string{t.binary}
	parts = append(parts, t.additionalArgs...)
	parts = append(parts, inputPath, "-o", outputPath)
	return strings.Join(parts, " ")
}
