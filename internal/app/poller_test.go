package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/folio/internal/logtail"
	"github.com/five82/folio/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // 32s capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestRefresh_Success(t *testing.T) {
	store := state.NewStore("test")
	load := func(context.Context) ([]logtail.Entry, error) {
		return []logtail.Entry{{Line: 1, Message: "hello"}}, nil
	}

	if err := refresh(context.Background(), store, load, zerolog.Nop()); err != nil {
		t.Fatalf("refresh returned %v", err)
	}
	snap := store.Snapshot()
	if !snap.HasData || len(snap.Entries) != 1 {
		t.Fatalf("snapshot = %+v, want one entry", snap)
	}
}

func TestRefresh_FailureRecordedInStore(t *testing.T) {
	store := state.NewStore("test")
	boom := errors.New("boom")
	load := func(context.Context) ([]logtail.Entry, error) { return nil, boom }

	if err := refresh(context.Background(), store, load, zerolog.Nop()); !errors.Is(err, boom) {
		t.Fatalf("refresh err = %v, want %v", err, boom)
	}
	snap := store.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if !errors.Is(snap.LastError, boom) {
		t.Fatalf("LastError = %v, want %v", snap.LastError, boom)
	}
}

func TestRefresh_CancelledContextNotRecorded(t *testing.T) {
	store := state.NewStore("test")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := refresh(ctx, store, FileLoader("/nonexistent", 0), zerolog.Nop())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("refresh err = %v, want context.Canceled", err)
	}
	if got := store.Snapshot().ConsecutiveFailures; got != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", got)
	}
}

func TestFileLoader_ReadsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	data := "2024-01-02 03:04:05 INFO first\n2024-01-02 03:04:06 WARN second\n2024-01-02 03:04:07 ERROR third\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	entries, err := FileLoader(path, 2)(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Message != "second" || entries[1].Message != "third" {
		t.Fatalf("messages = %q, %q; want second, third", entries[0].Message, entries[1].Message)
	}
}

func TestStartPoller_UpdatesStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := state.NewStore("test")
	calls := make(chan struct{}, 8)
	load := func(context.Context) ([]logtail.Entry, error) {
		select {
		case calls <- struct{}{}:
		default:
		}
		return []logtail.Entry{{Line: 1}}, nil
	}

	StartPoller(ctx, store, load, 5*time.Millisecond, zerolog.Nop())

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("poller never called load")
	}

	deadline := time.Now().Add(2 * time.Second)
	for store.Version() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("store was never updated")
		}
		time.Sleep(time.Millisecond)
	}
}
