package task

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/berggren/turbinia/internal/evidence"
	"github.com/berggren/turbinia/pkg/shared/errors"
)

// Result accumulates the outcome of a single task run. It is owned by the
// caller and finalized exactly once through Close.
type Result struct {
	TaskID   string    `json:"task_id"`
	TaskName string    `json:"task_name"`
	Start    time.Time `json:"start_time"`

	// RunTime is recorded when the result is closed.
	RunTime time.Duration `json:"run_time"`

	// ReportData holds the full rendered report for the task.
	ReportData string `json:"report_data"`

	Successful bool   `json:"successful"`
	Status     string `json:"status"`

	// Evidence collects the artifacts produced by the task. Registered
	// evidence is retained even when the task later fails.
	Evidence []*evidence.Evidence `json:"evidence"`

	// RunLog keeps the per-run log lines for operators.
	RunLog []string `json:"run_log"`

	logger hclog.Logger
	closed bool
}

// NewResult creates a Result for the given task.
func NewResult(t *Task) *Result {
	return &Result{
		TaskID:   t.ID,
		TaskName: t.Name,
		Start:    time.Now().UTC(),
		logger:   t.logger,
	}
}

// Log records a message in the run log and forwards it to the task logger.
func (r *Result) Log(message string) {
	r.RunLog = append(r.RunLog, message)
	if r.logger != nil {
		r.logger.Info(message, "task", r.TaskName, "id", r.TaskID)
	}
}

// AddEvidence registers a newly produced evidence artifact with the result.
func (r *Result) AddEvidence(ev *evidence.Evidence) {
	r.Evidence = append(r.Evidence, ev)
}

// Closed reports whether the result has been finalized.
func (r *Result) Closed() bool {
	return r.closed
}

// Close finalizes the result with the given outcome. Closing an already
// closed result is an error.
func (r *Result) Close(success bool, status string) error {
	if r.closed {
		return errors.NewClosedResultError(r.TaskName)
	}
	r.closed = true
	r.Successful = success
	r.Status = status
	r.RunTime = time.Since(r.Start)

	if r.logger != nil {
		if success {
			r.logger.Info("task completed", "task", r.TaskName, "id", r.TaskID, "status", status)
		} else {
			r.logger.Error("task failed", "task", r.TaskName, "id", r.TaskID, "status", status)
		}
	}
	return nil
}
