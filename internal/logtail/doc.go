// Package logtail reads the tail of a log file and parses it into entries.
//
// # Reading
//
// Read returns the last N lines of a file in one sequential pass using a ring
// buffer of N strings, so memory stays O(N) regardless of file size. A
// non-positive N reads the whole file. A missing file is not an error; it
// yields no lines so a viewer can start before the log exists.
//
// # Parsing
//
// Parse recognizes the common single-line layout
//
//	2025-10-08 21:01:05 INFO [encoder] – starting encoding
//
// with each part optional: a leading timestamp (space or T separated, with
// optional fraction and zone), a level word (optionally bracketed, any of the
// usual spellings), a bracketed component, and a separator before the message.
// Whatever is not recognized stays in Message, so no line is ever rejected.
//
// ParseLines folds indented continuation lines into the preceding entry:
//
//	2025-10-08 21:01:05 INFO [encoder] – starting encoding
//	    - Progress: 50%
//
// becomes one Entry with Details ["Progress: 50%"]. Entry.Line keeps the
// 1-based line number of the record within the tail that was read.
//
// # Filtering
//
// Entry.MatchLevel implements a minimum-severity filter. LevelUnknown means
// "no filter"; entries whose level could not be determined only appear in the
// unfiltered view.
package logtail
