package poller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type statusFunc func(ctx context.Context, chargeID string) (*StatusResult, error)

func (f statusFunc) ChargeStatus(ctx context.Context, chargeID string) (*StatusResult, error) {
	return f(ctx, chargeID)
}

func nopLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func TestTaskPollsImmediately(t *testing.T) {
	var calls int32
	client := statusFunc(func(ctx context.Context, chargeID string) (*StatusResult, error) {
		atomic.AddInt32(&calls, 1)
		return &StatusResult{Status: "pending", DownloadURL: "https://dl/1"}, nil
	})

	task := NewTask(client, nopLogger(), "ch_1", time.Hour, time.Hour)
	if err := task.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not finish on the immediate poll")
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one poll before any tick, got %d", got)
	}
	state, res := task.Result()
	if state != StateConfirmed {
		t.Fatalf("expected confirmed, got %s", state)
	}
	if res == nil || res.DownloadURL != "https://dl/1" {
		t.Fatalf("expected result with download url, got %+v", res)
	}
}

func TestTaskConfirmsOnLaterTick(t *testing.T) {
	var calls int32
	client := statusFunc(func(ctx context.Context, chargeID string) (*StatusResult, error) {
		if atomic.AddInt32(&calls, 1) < 3 {
			return &StatusResult{Status: "unknown"}, nil
		}
		return &StatusResult{Status: "pending", DownloadURL: "https://dl/1"}, nil
	})

	task := NewTask(client, nopLogger(), "ch_1", 10*time.Millisecond, time.Second)
	if err := task.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not confirm")
	}

	if state, _ := task.Result(); state != StateConfirmed {
		t.Fatalf("expected confirmed, got %s", state)
	}
	if got := atomic.LoadInt32(&calls); got < 3 {
		t.Fatalf("expected at least 3 polls, got %d", got)
	}
}

func TestTaskTimesOut(t *testing.T) {
	client := statusFunc(func(ctx context.Context, chargeID string) (*StatusResult, error) {
		return &StatusResult{Status: "unknown"}, nil
	})

	task := NewTask(client, nopLogger(), "ch_1", 10*time.Millisecond, 50*time.Millisecond)
	start := time.Now()
	if err := task.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task never gave up")
	}

	if state, _ := task.Result(); state != StateTimedOut {
		t.Fatalf("expected timed-out, got %s", state)
	}
	// Deadline plus at most one interval tick of slack.
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond+10*time.Millisecond+200*time.Millisecond {
		t.Fatalf("timeout took too long: %v", elapsed)
	}
}

func TestTaskKeepsPollingThroughErrors(t *testing.T) {
	var calls int32
	client := statusFunc(func(ctx context.Context, chargeID string) (*StatusResult, error) {
		if atomic.AddInt32(&calls, 1) < 3 {
			return nil, errors.New("boom")
		}
		return &StatusResult{Status: "pending", DownloadURL: "https://dl/1"}, nil
	})

	task := NewTask(client, nopLogger(), "ch_1", 10*time.Millisecond, time.Second)
	if err := task.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not survive transient poll failures")
	}
	if state, _ := task.Result(); state != StateConfirmed {
		t.Fatalf("expected confirmed, got %s", state)
	}
}

func TestTaskStop(t *testing.T) {
	client := statusFunc(func(ctx context.Context, chargeID string) (*StatusResult, error) {
		return &StatusResult{Status: "unknown"}, nil
	})

	task := NewTask(client, nopLogger(), "ch_1", 10*time.Millisecond, time.Hour)
	if err := task.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	task.Stop()

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("stop did not cancel the loop")
	}

	if state, _ := task.Result(); state == StateConfirmed {
		t.Fatal("cancelled task must not report confirmed")
	}
}

func TestTaskStartTwice(t *testing.T) {
	client := statusFunc(func(ctx context.Context, chargeID string) (*StatusResult, error) {
		return &StatusResult{Status: "unknown"}, nil
	})

	task := NewTask(client, nopLogger(), "ch_1", 10*time.Millisecond, time.Hour)
	if err := task.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer task.Stop()

	if err := task.Start(context.Background()); err != ErrAlreadyStarted {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}
}

func TestClientChargeStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/store/payments/charge-status" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("chargeId") != "ch_1" {
			t.Fatalf("missing chargeId param")
		}
		w.Write([]byte(`{"status":"pending","downloadUrl":"https://dl/1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.ChargeStatus(context.Background(), "ch_1")
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != "pending" || res.DownloadURL != "https://dl/1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
