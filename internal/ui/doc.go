// Package ui is Folio's Bubble Tea interface.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────┐
//	│ folio  /var/log/app.log  1,204 entries  Level: ALL   │ header
//	│ h/p/←:Previous page  l/n/→:Next page  ...            │ command bar
//	│ LINE   TIME                LEVEL COMPONENT  MESSAGE  │
//	│ ...one page of entries...                            │ table or detail
//	│ « ‹ 1 … 4 5 [6] 7 8 … 49 › »                         │ navigation bar
//	│ Page 6/49 · 25 per page · 9 buttons                  │ footer
//	└──────────────────────────────────────────────────────┘
//
// # Paging
//
// A pagination.Controller owns the page state. pageSource subscribes to it
// and plays the data-source role: it turns the filtered entry count into a
// page total, resets to the first page when the page size changes, and keeps
// a bubbles paginator in step for slice bounds and the footer indicator.
// navBar maps each display model onto a pool of slots indexed by position
// and records their columns for mouse hit testing.
//
// Controller notifications are synchronous, so the Model drains them right
// after each controller call (applyPageEvents) to reset the row cursor and
// persist the page size.
//
// # Data
//
// The poller in package app writes to state.Store; the Model reads a snapshot
// on every tick and re-pages only when the store version moves.
package ui
