package tasks

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of an asynchronous task.
type Status string

// Task lifecycle states. A task starts as enqueued, moves to processing,
// and ends in exactly one of the terminal states; once terminal it never
// changes again.
const (
	StatusEnqueued   Status = "enqueued"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
	StatusCanceled   Status = "canceled"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// Error is the structured cause embedded in a failed task.
type Error struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
	Link    string `json:"link"`
}

// TaskInfo is the acknowledgement the service returns when it enqueues a
// mutation. Only the UID and the initial status are known at this point.
type TaskInfo struct {
	TaskUID    int64     `json:"taskUid"`
	IndexUID   string    `json:"indexUid"`
	Status     Status    `json:"status"`
	Type       string    `json:"type"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

// Task is the full server-side record of an asynchronous mutation.
type Task struct {
	UID        int64                  `json:"uid"`
	IndexUID   string                 `json:"indexUid"`
	Status     Status                 `json:"status"`
	Type       string                 `json:"type"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Error      *Error                 `json:"error,omitempty"`
	CanceledBy int64                  `json:"canceledBy,omitempty"`
	Duration   string                 `json:"duration,omitempty"`
	EnqueuedAt time.Time              `json:"enqueuedAt"`
	StartedAt  time.Time              `json:"startedAt,omitempty"`
	FinishedAt time.Time              `json:"finishedAt,omitempty"`
}

// Failed reports whether the task reached the failed state.
func (t *Task) Failed() bool {
	return t.Status == StatusFailed
}

// Err converts a terminal task into an error the caller can inspect with
// errors.Is. It returns nil for succeeded and non-terminal tasks.
//
// WaitForTask deliberately RETURNS failed and canceled tasks instead of
// raising them; callers that want an error call Err:
//
//	task, err := tracker.WaitForTask(ctx, info.TaskUID)
//	if err != nil {
//	    return err // polling itself failed
//	}
//	if err := task.Err(); err != nil {
//	    return err // the mutation failed server-side
//	}
func (t *Task) Err() error {
	switch t.Status {
	case StatusFailed:
		if t.Error != nil && t.Error.Code == CodeFeatureNotEnabled {
			return fmt.Errorf("%w: %s", ErrFeatureNotEnabled, t.Error.Message)
		}
		if t.Error != nil {
			return fmt.Errorf("%w: %s: %s", ErrTaskFailed, t.Error.Code, t.Error.Message)
		}
		return ErrTaskFailed
	case StatusCanceled:
		return ErrTaskCanceled
	}
	return nil
}

// TasksQuery filters task listings.
type TasksQuery struct {
	UIDs      []int64
	IndexUIDs []string
	Statuses  []Status
	Types     []string
	Limit     int64
	From      int64
}

// TasksResults is one page of a task listing.
type TasksResults struct {
	Results []Task `json:"results"`
	Total   int64  `json:"total"`
	Limit   int64  `json:"limit"`
	From    int64  `json:"from"`
	Next    int64  `json:"next"`
}

// CancelTasksQuery selects the tasks an explicit cancelation targets.
// At least one filter must be set; the service refuses to cancel everything.
type CancelTasksQuery struct {
	UIDs      []int64
	IndexUIDs []string
	Statuses  []Status
	Types     []string
}
