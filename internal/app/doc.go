// Package app is the composition root for the Folio viewer.
//
// # Overview
//
// Run wires configuration, diagnostics, polling, state and the UI together:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> Resolve()          config file + flag overrides
//	       ├─────> logging.New()      zerolog file logger (or Nop)
//	       ├─────> prefs.Load()       theme, items per page
//	       ├─────> state.NewStore()   shared snapshot container
//	       ├─────> refresh()          first load before the UI draws
//	       ├─────> StartPoller()      background reloads
//	       └─────> ui.Run()           TUI (blocks)
//
// # Polling Behavior
//
// The poller re-reads the tail of the log on a timer (default 2 seconds).
// A failed read keeps the last good entries in the store and records the
// error. Each consecutive failure doubles the delay, capped at 30 seconds;
// the first success returns to the base interval.
//
// # Errors
//
// Run returns an error only when the config cannot be parsed or no log file
// is named. An unwritable diagnostics file downgrades to a Nop logger and a
// missing log file shows as an empty log until it appears.
package app
