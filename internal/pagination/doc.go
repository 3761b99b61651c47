// Package pagination builds the display model for a page-navigation bar.
//
// # Overview
//
// Given a current page, a total page count, and a button budget, Build returns
// the ordered sequence of page buttons and ellipsis markers a navigation bar
// should show, for example:
//
//	1 … 4 5 [6] 7 8 … 20
//
// The package is pure integer arithmetic. It has no notion of rendering,
// styling, or input handling; those live in the ui package, which maps each
// Entry onto a reusable button slot.
//
// # Components
//
//   - range.go: Clamp and ClampMaxButtons normalize raw inputs
//   - window.go: CalculateWindow picks the middle run of pages for large page counts
//   - model.go: Entry, DisplayModel, and the Build dispatcher with its case handlers
//   - controller.go: Controller owns a State and emits change notifications
//
// # Dispatch
//
// Build chooses the first matching case:
//
//  1. One page: a single current button.
//  2. All pages fit the budget: one button per page.
//  3. Budget of three: first, a middle page, last.
//  4. Budget of four: first, one page next to the current position, one ellipsis, last.
//  5. General: first, optional left ellipsis, window, optional right ellipsis, last.
//
// # Error Handling
//
// Nothing in this package returns an error. Out-of-range input is corrected in
// place (see Clamp) so a navigation bar can always render a valid state. A
// window whose bounds cross indicates a bug in this package and panics.
//
// # Concurrency
//
// Build and CalculateWindow are pure and safe for concurrent use. Controller
// guards its State with a mutex; observers are notified after the lock is
// released so they may call back into the controller. Notifications are
// queued and delivered in commit order by the outermost caller, so a change
// made from inside an observer reaches every observer after the change that
// triggered it.
package pagination
