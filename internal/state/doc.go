// Package state holds the log entries shared between the poller and the UI,
// and performs the page arithmetic the pagination core leaves to its data
// source.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ logtail.Load() │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  page + render  │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	store.Update(entries, nil)
//	→ snapshot.Entries = entries, HasData = true
//	→ LastError cleared, ConsecutiveFailures = 0, version bumped
//
//	store.Update(nil, err)
//	→ previous entries kept
//	→ LastError = err, ConsecutiveFailures++
//
// Snapshot returns deep enough copies that the caller may mutate the entry
// slice freely. Version lets the UI skip work when nothing new was loaded.
//
// # Paging
//
// TotalPages is a ceiling division floored at one page, so an empty log still
// renders a single (empty) page. PageBounds turns a 1-based page into slice
// bounds, clamping pages past the end onto the last page.
package state
