// Package cli defines Folio's cobra commands.
//
// The root command opens the viewer when stdout is a terminal and prints a
// single page otherwise, so `folio app.log | less` still works. The page
// subcommand always prints.
package cli
