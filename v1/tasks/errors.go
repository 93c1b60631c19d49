package tasks

import "errors"

// CodeFeatureNotEnabled is the error code the service attaches to a task
// that failed because the mutation needs an experimental feature that is
// currently disabled (e.g. fragment configs without multimodal).
const CodeFeatureNotEnabled = "feature_not_enabled"

// Common task errors.
var (
	// ErrWaitTimeout is returned when WaitForTask's budget elapses before
	// the task reaches a terminal state. The task may still complete later;
	// the tracker never cancels it.
	ErrWaitTimeout = errors.New("tasks: timed out waiting for task")

	// ErrTaskFailed is wrapped by Task.Err for tasks that reached the
	// failed state.
	ErrTaskFailed = errors.New("tasks: task failed")

	// ErrTaskCanceled is returned by Task.Err for tasks that were canceled.
	ErrTaskCanceled = errors.New("tasks: task canceled")

	// ErrFeatureNotEnabled is wrapped by Task.Err when a task failed
	// because a required experimental feature is disabled on the server.
	ErrFeatureNotEnabled = errors.New("tasks: required experimental feature not enabled")

	// ErrEmptyCancelQuery is returned by CancelTasks when no filter is set.
	ErrEmptyCancelQuery = errors.New("tasks: cancel query needs at least one filter")
)

// IsWaitTimeout checks if the error is a polling timeout.
func IsWaitTimeout(err error) bool {
	return errors.Is(err, ErrWaitTimeout)
}

// IsFeatureNotEnabled checks if the error is a feature gating failure.
func IsFeatureNotEnabled(err error) bool {
	return errors.Is(err, ErrFeatureNotEnabled)
}
