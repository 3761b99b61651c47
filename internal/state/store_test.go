package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/folio/internal/logtail"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	s := NewStore("/var/log/app.log")

	entries := []logtail.Entry{{Line: 1, Message: "a"}, {Line: 2, Message: "b"}}

	before := time.Now()
	s.Update(entries, nil)

	snap := s.Snapshot()
	if !snap.HasData {
		t.Fatal("HasData = false, want true")
	}
	if snap.Source != "/var/log/app.log" {
		t.Fatalf("Source = %q, want /var/log/app.log", snap.Source)
	}
	if len(snap.Entries) != 2 || snap.Entries[0].Message != "a" {
		t.Fatalf("snapshot entries = %#v, want 2 entries", snap.Entries)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Entries[0].Message = "changed"
	if got := s.Snapshot().Entries[0].Message; got != "a" {
		t.Fatalf("Snapshot should clone entries; got %q want a", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	s := NewStore("app.log")

	s.Update([]logtail.Entry{{Line: 1}}, nil)
	version := s.Version()

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.Entries) != 1 {
		t.Fatalf("entries changed on error: got %#v", snap.Entries)
	}
	if s.Version() != version {
		t.Fatalf("Version = %d, want %d after failed update", s.Version(), version)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	s := NewStore("app.log")

	if s.Snapshot().IsFailing() {
		t.Fatal("IsFailing() = true, want false with 0 failures")
	}

	s.Update(nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsFailing() {
		t.Fatalf("after 1 failure: failures=%d failing=%v", snap.ConsecutiveFailures, snap.IsFailing())
	}

	s.Update(nil, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsFailing() {
		t.Fatalf("after 2 failures: failures=%d failing=%v", snap.ConsecutiveFailures, snap.IsFailing())
	}

	s.Update(nil, nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsFailing() {
		t.Fatalf("after success: failures=%d failing=%v", snap.ConsecutiveFailures, snap.IsFailing())
	}
}

func TestSnapshot_Filter(t *testing.T) {
	snap := Snapshot{Entries: []logtail.Entry{
		{Line: 1, Level: logtail.LevelDebug},
		{Line: 2, Level: logtail.LevelWarn},
		{Line: 3},
		{Line: 4, Level: logtail.LevelError},
	}}

	if got := snap.Filter(logtail.LevelUnknown); len(got) != 4 {
		t.Fatalf("Filter(unknown) = %d entries, want 4", len(got))
	}
	got := snap.Filter(logtail.LevelWarn)
	if len(got) != 2 || got[0].Line != 2 || got[1].Line != 4 {
		t.Fatalf("Filter(warn) = %+v, want lines 2 and 4", got)
	}
}
