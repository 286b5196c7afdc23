// Package task provides the base type and result lifecycle shared by the
// worker tasks that wrap external tools.
package task

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/berggren/turbinia/internal/evidence"
	"github.com/berggren/turbinia/pkg/shared/errors"
)

// Task carries the identity and output location shared by worker tasks.
type Task struct {
	ID   string
	Name string

	// OutputDir is the task-owned root under which output artifacts are
	// written.
	OutputDir string

	logger hclog.Logger
}

// New creates a Task with a fresh ID.
func New(name, outputDir string, logger hclog.Logger) *Task {
	return &Task{
		ID:        uuid.New().String(),
		Name:      name,
		OutputDir: outputDir,
		logger:    logger,
	}
}

// Logger returns the task logger.
func (t *Task) Logger() hclog.Logger {
	return t.logger
}

// NewResult creates the result accumulator for a run of this task.
func (t *Task) NewResult() *Result {
	return NewResult(t)
}

// Execute runs the given command line through a shell, blocking until the
// process exits. Stdout and stderr are streamed into the task logger and
// captured for error reporting. On success every entry of newEvidence is
// registered with the result so the artifacts are retained regardless of
// what later processing does.
func (t *Task) Execute(cmdline string, res *Result, newEvidence ...*evidence.Evidence) error {
	cmd := exec.Command("sh", "-c", cmdline)
	t.logger.Debug("debug info", "cmd", cmd.Args)

	var stdBuffer bytes.Buffer
	mw := io.MultiWriter(t.logger.StandardWriter(&hclog.StandardLoggerOptions{
		InferLevels: true,
	}), &stdBuffer)

	cmd.Stdout = mw
	cmd.Stderr = mw

	if err := cmd.Run(); err != nil {
		t.logger.Error("command execution error", "cmd", cmdline, "error", err)
		return errors.NewExecutionError(cmdline, err, stdBuffer.String())
	}

	for _, ev := range newEvidence {
		res.AddEvidence(ev)
	}
	res.Log("Execution of [" + cmdline + "] succeeded")
	return nil
}
