// Package poller implements the client side of payment confirmation: after
// checkout detects a payment, a task polls the charge-status endpoint until
// the download link shows up or a deadline passes.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultInterval = 2 * time.Second
	DefaultDeadline = 30 * time.Second
)

type State string

const (
	StateIdle      State = "idle"
	StateAwaiting  State = "awaiting-confirmation"
	StateConfirmed State = "confirmed"
	StateTimedOut  State = "timed-out"
)

type StatusResult struct {
	Status      string
	DownloadURL string
}

// StatusClient queries the charge status endpoint for one charge.
type StatusClient interface {
	ChargeStatus(ctx context.Context, chargeID string) (*StatusResult, error)
}

var ErrAlreadyStarted = errors.New("poll task already started")

// Task is a cancellable polling loop for a single charge. It polls once
// immediately, then on every interval tick, and gives up at the deadline.
// Stop is the explicit cancellation handle; it is safe to call at any time.
type Task struct {
	client   StatusClient
	logger   *zap.SugaredLogger
	chargeID string
	interval time.Duration
	deadline time.Duration

	mu      sync.Mutex
	state   State
	result  *StatusResult
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewTask(client StatusClient, logger *zap.SugaredLogger, chargeID string, interval, deadline time.Duration) *Task {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if deadline <= 0 {
		deadline = DefaultDeadline
	}
	return &Task{
		client:   client,
		logger:   logger,
		chargeID: chargeID,
		interval: interval,
		deadline: deadline,
		state:    StateIdle,
		done:     make(chan struct{}),
	}
}

// Start begins polling. It returns immediately; observe completion through
// Done and Result. Starting twice is an error.
func (t *Task) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return ErrAlreadyStarted
	}
	t.started = true
	t.state = StateAwaiting

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.mu.Unlock()

	go t.run(ctx)
	return nil
}

// Stop cancels the loop. A task that has already reached a terminal state
// keeps it.
func (t *Task) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done is closed once the loop has exited, whatever the reason.
func (t *Task) Done() <-chan struct{} { return t.done }

// Result reports the current state and, once confirmed, the final status
// payload carrying the download URL.
func (t *Task) Result() (State, *StatusResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state, t.result
}

func (t *Task) run(ctx context.Context) {
	defer close(t.done)
	defer t.cancel()

	expire := time.NewTimer(t.deadline)
	defer expire.Stop()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	// First poll happens before any tick.
	if t.poll(ctx) {
		return
	}

	for {
		select {
		case <-ticker.C:
			if t.poll(ctx) {
				return
			}
		case <-expire.C:
			t.finish(StateTimedOut, nil)
			return
		case <-ctx.Done():
			return
		}
	}
}

// poll does one status query; true means the task reached a terminal state.
func (t *Task) poll(ctx context.Context) bool {
	res, err := t.client.ChargeStatus(ctx, t.chargeID)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		// Transient failures stay silent to the buyer; keep trying
		// until the deadline.
		t.logger.Warnw("charge status poll failed", "charge_id", t.chargeID, "error", err.Error())
		return false
	}
	if res.DownloadURL == "" {
		return false
	}
	t.finish(StateConfirmed, res)
	return true
}

func (t *Task) finish(state State, res *StatusResult) {
	t.mu.Lock()
	t.state = state
	t.result = res
	t.mu.Unlock()
}
