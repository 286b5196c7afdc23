package errors

import (
	"fmt"
)

// ExecutionError represents a failed external tool invocation, storing the
// command line and any captured output for the operator.
type ExecutionError struct {
	Command string
	Output  string
	Err     error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("execution of %q failed: %v. Output: %s", e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("execution of %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying process error.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewExecutionError creates a new ExecutionError instance.
func NewExecutionError(command string, err error, output string) *ExecutionError {
	return &ExecutionError{
		Command: command,
		Output:  output,
		Err:     err,
	}
}

// ClosedResultError indicates a task result was finalized more than once.
type ClosedResultError struct {
	TaskName string
}

func (e *ClosedResultError) Error() string {
	return fmt.Sprintf("result for task %q is already closed", e.TaskName)
}

// NewClosedResultError creates a new ClosedResultError instance.
func NewClosedResultError(taskName string) error {
	return &ClosedResultError{TaskName: taskName}
}
