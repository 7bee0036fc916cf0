package watcher

import (
	"context"
	"testing"
	"time"
)

func TestNewTriggerVariants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "default", raw: DefaultSchedule},
		{name: "duration", raw: "10m"},
		{name: "compound duration", raw: "2h30m"},
		{name: "cron", raw: "*/10 * * * *"},
		{name: "cron descriptor", raw: "@hourly"},
		{name: "cron every", raw: "@every 55m"},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "not-a-schedule", wantErr: true},
		{name: "zero interval", raw: "0s", wantErr: true},
		{name: "negative interval", raw: "-5m", wantErr: true},
		{name: "bad cron", raw: "99 99 * * *", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr, err := NewTrigger(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewTrigger(%q) expected error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTrigger(%q) error: %v", tt.raw, err)
			}
			if tr.String() != tt.raw {
				t.Fatalf("String() = %q, want %q", tr.String(), tt.raw)
			}
		})
	}
}

func TestTriggerWaitElapses(t *testing.T) {
	t.Parallel()
	tr, err := NewTrigger("10ms")
	if err != nil {
		t.Fatalf("NewTrigger: %v", err)
	}
	if err := tr.Wait(context.Background()); err != nil {
		t.Fatalf("Wait error: %v", err)
	}
}

func TestTriggerWaitHonorsCancellation(t *testing.T) {
	t.Parallel()
	tr, err := NewTrigger("1h")
	if err != nil {
		t.Fatalf("NewTrigger: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Wait(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected context error from cancelled Wait")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}
