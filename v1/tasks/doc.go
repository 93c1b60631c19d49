// Package tasks tracks the asynchronous tasks the search service enqueues
// for every mutation.
//
// A mutating call (settings update, document addition, index creation)
// returns a TaskInfo acknowledgement immediately; the actual work happens
// later. Tracker.WaitForTask polls the task status endpoint with backoff
// until the task reaches a terminal state:
//
//	info, err := idx.UpdateEmbedders(ctx, cfgs)
//	if err != nil {
//	    return err
//	}
//
//	task, err := tracker.WaitForTask(ctx, info.TaskUID)
//	if err != nil {
//	    return err // polling failed (timeout, unreachable endpoint)
//	}
//	if err := task.Err(); err != nil {
//	    return err // the mutation itself failed server-side
//	}
//
// Failed and canceled tasks are returned as values, never raised: only the
// caller knows whether a failed settings task is fatal or expected (feature
// gating probes expect it). A wait that times out returns ErrWaitTimeout and
// leaves the task running server-side; explicit cancelation goes through
// CancelTasks.
package tasks
