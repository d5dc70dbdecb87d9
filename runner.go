package partitioner

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mreithub/go-faster/faster"
	"github.com/mreithub/go-index-partitioner/sink"
	"github.com/sirupsen/logrus"
)

// Request -- a named index pattern with its (possibly open) date range
type Request struct {
	Name    string
	Pattern string
	Since   Date
	Until   Date
}

// Runner -- periodically resolves all registered requests and passes the results on to a sink
//
// Open ranges depend on the current date, so their patterns change over time.
type Runner struct {
	partitioner *Partitioner
	sink        sink.Sink

	requests    map[string]Request
	requestLock sync.Mutex

	ctx      context.Context
	cancelFn context.CancelFunc

	// why the background loop stopped (nil if it was cancelled)
	err     error
	errLock sync.Mutex

	OnError func(r *Runner, err error) error
}

// check if our internal context has expired
func (r *Runner) Done() <-chan struct{} { return r.ctx.Done() }

// Err -- the error that stopped the background loop (set before Done() is closed)
func (r *Runner) Err() error {
	r.errLock.Lock()
	defer r.errLock.Unlock()
	return r.err
}

// Add -- registers (or replaces) a request, fails if it can't be resolved
func (r *Runner) Add(req Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: request name is required", ErrUsage)
	}
	if _, err := r.partitioner.Resolve(req.Pattern, req.Since, req.Until); err != nil {
		return fmt.Errorf("invalid request %q: %w", req.Name, err)
	}

	r.requestLock.Lock()
	defer r.requestLock.Unlock()
	r.requests[req.Name] = req
	return nil
}

func (r *Runner) Remove(name string) {
	r.requestLock.Lock()
	defer r.requestLock.Unlock()
	delete(r.requests, name)
}

// returns the registered requests (ordered by name)
func (r *Runner) listRequests() []Request {
	r.requestLock.Lock()
	defer r.requestLock.Unlock()
	var rc = make([]Request, 0, len(r.requests))
	for _, req := range r.requests {
		rc = append(rc, req)
	}
	sort.Slice(rc, func(i, j int) bool { return rc[i].Name < rc[j].Name })
	return rc
}

func (r *Runner) filterError(err error) error {
	var onError = r.OnError
	if err != nil && onError != nil {
		return onError(r, err)
	}
	return err
}

// RunOnce -- resolves every request and emits the results (aborts on the first error)
func (r *Runner) RunOnce() error {
	defer faster.TrackFn().Done()

	for _, req := range r.listRequests() {
		var patterns, err = r.partitioner.Resolve(req.Pattern, req.Since, req.Until)
		if err != nil {
			return fmt.Errorf("failed to resolve request %q: %w", req.Name, err)
		}
		if err = r.sink.Emit(req.Name, patterns); err != nil {
			return fmt.Errorf("failed to emit request %q: %w", req.Name, err)
		}
		r.partitioner.log.WithFields(logrus.Fields{
			"request":  req.Name,
			"patterns": len(patterns),
		}).Debug("request resolved")
	}
	return nil
}

func (r *Runner) run(interval time.Duration) {
	defer r.cancelFn()

	var ticker = time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := r.filterError(r.RunOnce()); err != nil {
				r.partitioner.log.WithError(err).Error("runner stopped")
				r.errLock.Lock()
				r.err = err
				r.errLock.Unlock()
				return
			}
		case <-r.ctx.Done():
			return
		}
	}
}

// Start -- runs once right away and then every interval (in a goroutine) until the context is cancelled
//
// If the initial run fails (and OnError doesn't swallow the error), no goroutine is started.
func (r *Runner) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: runner interval must be positive, got %v", ErrInvalidConfig, interval)
	}
	if err := r.filterError(r.RunOnce()); err != nil {
		return err
	}

	go r.run(interval)
	return nil
}

// Stop -- cancels the runner's context
func (r *Runner) Stop() { r.cancelFn() }

func NewRunner(ctx context.Context, p *Partitioner, s sink.Sink) *Runner {
	var rc = Runner{
		partitioner: p,
		sink:        s,
		requests:    make(map[string]Request),
	}
	rc.ctx, rc.cancelFn = context.WithCancel(ctx)
	return &rc
}
