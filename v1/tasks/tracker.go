package tasks

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/lunasearch/std/v1/observability"
	"github.com/lunasearch/std/v1/transport"
)

// Default polling parameters for WaitForTask.
const (
	DefaultWaitTimeout  = 5 * time.Second
	DefaultPollInterval = 50 * time.Millisecond

	// maxConsecutiveTransportFailures bounds how many times in a row the
	// status endpoint may be unreachable before WaitForTask gives up.
	maxConsecutiveTransportFailures = 3

	// maxConcurrentWaits bounds the fan-out of WaitForTasks.
	maxConcurrentWaits = 8
)

// Tracker polls the service's task endpoints until asynchronous mutations
// reach a terminal state. It only ever reads tasks; the mutation itself is
// owned by whoever enqueued it.
type Tracker struct {
	http     *transport.Client
	observer observability.Observer
}

// NewTracker constructs a Tracker on top of a transport client.
func NewTracker(http *transport.Client) *Tracker {
	return &Tracker{http: http}
}

// WithObserver attaches an operation observer and returns the same tracker
// for chaining.
func (tr *Tracker) WithObserver(observer observability.Observer) *Tracker {
	tr.observer = observer
	return tr
}

// GetTask fetches the current state of a single task.
func (tr *Tracker) GetTask(ctx context.Context, taskUID int64) (*Task, error) {
	var task Task
	if err := tr.http.Get(ctx, fmt.Sprintf("/tasks/%d", taskUID), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTasks lists tasks matching the query, newest first.
func (tr *Tracker) GetTasks(ctx context.Context, query *TasksQuery) (*TasksResults, error) {
	path := "/tasks"
	if query != nil {
		if encoded := query.encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	var results TasksResults
	if err := tr.http.Get(ctx, path, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// WaitOption adjusts the polling behavior of WaitForTask.
type WaitOption func(*waitConfig)

type waitConfig struct {
	timeout      time.Duration
	pollInterval time.Duration
}

// WithWaitTimeout bounds the total wall-clock time WaitForTask may spend.
func WithWaitTimeout(d time.Duration) WaitOption {
	return func(cfg *waitConfig) {
		cfg.timeout = d
	}
}

// WithPollInterval sets the initial delay between polls. The delay grows
// under backoff but never exceeds five times this value.
func WithPollInterval(d time.Duration) WaitOption {
	return func(cfg *waitConfig) {
		cfg.pollInterval = d
	}
}

// WaitForTask polls the task until it reaches a terminal state and returns
// the terminal Task.
//
// Failed and canceled tasks are returned, not raised: the caller decides
// whether a server-side failure is an error (use Task.Err). WaitForTask
// itself fails only when polling cannot produce a terminal task:
//   - ErrWaitTimeout when the budget elapses first (the task keeps running
//     server-side; the tracker never cancels it)
//   - the transport error when the status endpoint stays unreachable for
//     more than a bounded number of consecutive polls
//
// Repeated calls with the same UID are safe and return the same terminal
// result once reached.
func (tr *Tracker) WaitForTask(ctx context.Context, taskUID int64, opts ...WaitOption) (task *Task, err error) {
	cfg := waitConfig{
		timeout:      DefaultWaitTimeout,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	defer func() {
		tr.observeOperation("wait_for_task", strconv.FormatInt(taskUID, 10), time.Since(start), err)
	}()

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.pollInterval
	bo.MaxInterval = 5 * cfg.pollInterval
	bo.MaxElapsedTime = cfg.timeout
	bo.Reset()

	transportFailures := 0

	for {
		task, err := tr.GetTask(ctx, taskUID)
		switch {
		case err == nil:
			transportFailures = 0
			if task.Status.Terminal() {
				return task, nil
			}
		case transport.IsTransportError(err) && ctx.Err() == nil:
			transportFailures++
			if transportFailures >= maxConsecutiveTransportFailures {
				return nil, fmt.Errorf("tasks: status endpoint unreachable: %w", err)
			}
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
			return nil, fmt.Errorf("%w: task %d after %s", ErrWaitTimeout, taskUID, cfg.timeout)
		default:
			return nil, err
		}

		next := bo.NextBackOff()
		if next == backoff.Stop {
			return nil, fmt.Errorf("%w: task %d after %s", ErrWaitTimeout, taskUID, cfg.timeout)
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: task %d after %s", ErrWaitTimeout, taskUID, cfg.timeout)
			}
			return nil, ctx.Err()
		case <-time.After(next):
		}
	}
}

// WaitForTasks waits for several tasks concurrently and returns the terminal
// tasks in the same order as the given UIDs. The wait options apply to each
// task individually. The first polling failure cancels the remaining waits.
func (tr *Tracker) WaitForTasks(ctx context.Context, taskUIDs []int64, opts ...WaitOption) ([]*Task, error) {
	results := make([]*Task, len(taskUIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWaits)

	for i, uid := range taskUIDs {
		g.Go(func() error {
			task, err := tr.WaitForTask(ctx, uid, opts...)
			if err != nil {
				return err
			}
			results[i] = task
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CancelTasks asks the service to cancel the tasks selected by the query.
// Cancelation is itself asynchronous: the returned TaskInfo tracks the
// cancelation task. WaitForTask never cancels implicitly; this is the
// explicit path.
func (tr *Tracker) CancelTasks(ctx context.Context, query *CancelTasksQuery) (*TaskInfo, error) {
	if query == nil || query.empty() {
		return nil, ErrEmptyCancelQuery
	}

	var info TaskInfo
	path := "/tasks/cancel?" + query.encode()
	if err := tr.http.Post(ctx, path, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (q *CancelTasksQuery) empty() bool {
	return len(q.UIDs) == 0 && len(q.IndexUIDs) == 0 && len(q.Statuses) == 0 && len(q.Types) == 0
}

func (q *CancelTasksQuery) encode() string {
	values := url.Values{}
	addInt64List(values, "uids", q.UIDs)
	addStringList(values, "indexUids", q.IndexUIDs)
	addStatusList(values, "statuses", q.Statuses)
	addStringList(values, "types", q.Types)
	return values.Encode()
}

func (q *TasksQuery) encode() string {
	values := url.Values{}
	addInt64List(values, "uids", q.UIDs)
	addStringList(values, "indexUids", q.IndexUIDs)
	addStatusList(values, "statuses", q.Statuses)
	addStringList(values, "types", q.Types)
	if q.Limit > 0 {
		values.Set("limit", strconv.FormatInt(q.Limit, 10))
	}
	if q.From > 0 {
		values.Set("from", strconv.FormatInt(q.From, 10))
	}
	return values.Encode()
}

func addInt64List(values url.Values, key string, list []int64) {
	if len(list) == 0 {
		return
	}
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = strconv.FormatInt(v, 10)
	}
	values.Set(key, strings.Join(parts, ","))
}

func addStringList(values url.Values, key string, list []string) {
	if len(list) == 0 {
		return
	}
	values.Set(key, strings.Join(list, ","))
}

func addStatusList(values url.Values, key string, list []Status) {
	if len(list) == 0 {
		return
	}
	parts := make([]string, len(list))
	for i, s := range list {
		parts[i] = string(s)
	}
	values.Set(key, strings.Join(parts, ","))
}

// observeOperation notifies the observer about a tracker operation if one is
// configured.
func (tr *Tracker) observeOperation(operation, resource string, duration time.Duration, err error) {
	if tr == nil || tr.observer == nil {
		return
	}

	tr.observer.ObserveOperation(observability.OperationContext{
		Component: "tasks",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
	})
}
