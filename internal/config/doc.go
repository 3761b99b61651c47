// Package config loads Folio's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/folio/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or out of range, use defaults
//
// # Example
//
//	log_path = "~/.local/share/myapp/app.log"
//	poll_seconds = 2
//	tail_lines = 10000     # 0 reads the whole file
//	max_buttons = 7        # floored to 3
//	items_per_page = 25    # one of 25, 50, 100, 200
//
//	[logging]
//	level = "info"
//	file = "~/.local/state/folio/folio.log"   # "" disables
//
// # Error Handling
//
// Only I/O failures and TOML syntax errors are returned. Semantic problems are
// silently corrected in the same way the pagination core corrects its input:
// a non-positive poll interval, a negative tail, an unsupported page size, or
// a button budget below three never prevent startup.
//
// Paths beginning with ~ are expanded against the user's home directory and
// made absolute.
package config
