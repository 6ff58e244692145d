package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/abbababa/careers/internal/model"
	"github.com/abbababa/careers/internal/retry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Scheduler ---

func TestRun_CancelReturnsPromptly(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler("0 2 */14 * *", func(context.Context) error {
		calls.Add(1)
		return nil
	}, false, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error on cancel, got: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not return within 2s after cancel")
	}
	if c := calls.Load(); c != 0 {
		t.Errorf("expected no runs before the first cron tick, got %d", c)
	}
}

func TestRun_RunNowRunsOnce(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := NewScheduler("0 2 */14 * *", func(context.Context) error {
		ran <- struct{}{}
		return nil
	}, true, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("immediate run did not happen")
	}
}

func TestRun_InvalidSpec(t *testing.T) {
	s := NewScheduler("not a cron", func(context.Context) error { return nil }, false, discardLogger())
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestRun_CronTicksAndErrorsDoNotStopLoop(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler("* * * * * *", func(context.Context) error {
		calls.Add(1)
		return errors.New("refresh failed")
	}, false, discardLogger())
	s.newCron = func() *cron.Cron { return cron.New(cron.WithSeconds()) }

	ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
	defer cancel()
	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c := calls.Load(); c < 2 {
		t.Errorf("expected at least 2 ticks, got %d", c)
	}
}

func TestTrigger_OverlappingRunsCollapse(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})
	s := NewScheduler("0 2 * * *", func(context.Context) error {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return nil
	}, false, discardLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Trigger(context.Background())
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Trigger(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if c := calls.Load(); c != 1 {
		t.Errorf("expected overlapping triggers to share one run, got %d", c)
	}
}

func TestCronForDays(t *testing.T) {
	spec, err := CronForDays(14)
	if err != nil {
		t.Fatalf("CronForDays: %v", err)
	}
	if spec != "0 2 */14 * *" {
		t.Errorf("spec = %q", spec)
	}
	for _, bad := range []int{0, -1, 32} {
		if _, err := CronForDays(bad); err == nil {
			t.Errorf("CronForDays(%d) should fail", bad)
		}
	}
}

func TestNextRuns(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	runs, err := NextRuns("0 2 */14 * *", from, 3)
	if err != nil {
		t.Fatalf("NextRuns: %v", err)
	}
	want := []time.Time{
		time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 2, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 29, 2, 0, 0, 0, time.UTC),
	}
	for i := range want {
		if !runs[i].Equal(want[i]) {
			t.Errorf("run %d = %v, want %v", i, runs[i], want[i])
		}
	}
}

// --- QStash ---

func TestQStashRegister(t *testing.T) {
	var gotPath, gotAuth, gotCron string
	var gotBody triggerBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCron = r.Header.Get("Upstash-Cron")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"scheduleId":"scd_123"}`))
	}))
	defer srv.Close()

	c := NewQStashClient(srv.URL+"/v2/schedules", "tok", srv.Client(), retry.New(1, time.Millisecond, discardLogger()), discardLogger())
	id, err := c.Register(context.Background(), "https://careers.abbababa.com/api/refresh", "0 2 */14 * *", 14)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id != "scd_123" {
		t.Errorf("id = %q", id)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotCron != "0 2 */14 * *" {
		t.Errorf("Upstash-Cron = %q", gotCron)
	}
	if gotPath != "/v2/schedules/https:/careers.abbababa.com/api/refresh" && gotPath != "/v2/schedules/https://careers.abbababa.com/api/refresh" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.Trigger != "scheduled-refresh" || gotBody.Days != 14 {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestQStashRegister_MissingToken(t *testing.T) {
	c := NewQStashClient("https://qstash.upstash.io/v2/schedules", "", http.DefaultClient, retry.New(0, 0, discardLogger()), discardLogger())
	_, err := c.Register(context.Background(), "https://x/api/refresh", "0 2 * * *", 1)
	if !model.IsKind(err, model.KindUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestQStashRegister_Unauthorized(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	c := NewQStashClient(srv.URL, "bad", srv.Client(), retry.New(2, time.Millisecond, discardLogger()), discardLogger())
	_, err := c.Register(context.Background(), "https://x/api/refresh", "0 2 * * *", 1)
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if c := calls.Load(); c != 1 {
		t.Errorf("401 must not be retried, got %d calls", c)
	}
}
