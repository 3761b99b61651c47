package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// EntryKind distinguishes page buttons from ellipsis markers.
type EntryKind int

const (
	KindPage EntryKind = iota
	KindEllipsis
)

// EllipsisLabel is the text shown for skipped pages.
const EllipsisLabel = "…"

// Entry is one slot of a navigation bar.
type Entry struct {
	Kind    EntryKind
	Page    int  // zero for ellipses
	Current bool // always false for ellipses
}

// PageEntry returns a button for page, marked current when page == current.
func PageEntry(page, current int) Entry {
	return Entry{Kind: KindPage, Page: page, Current: page == current}
}

// EllipsisEntry returns a placeholder for skipped pages.
func EllipsisEntry() Entry {
	return Entry{Kind: KindEllipsis}
}

// IsEllipsis reports whether e is a placeholder.
func (e Entry) IsEllipsis() bool {
	return e.Kind == KindEllipsis
}

// Enabled reports whether e is clickable. Every page button is, including
// the current one.
func (e Entry) Enabled() bool {
	return e.Kind == KindPage
}

// Label returns the text a renderer shows on the slot.
func (e Entry) Label() string {
	if e.IsEllipsis() {
		return EllipsisLabel
	}
	return strconv.Itoa(e.Page)
}

// String renders the entry with brackets around the current page.
func (e Entry) String() string {
	if e.Current {
		return "[" + e.Label() + "]"
	}
	return e.Label()
}

// DisplayModel is the ordered content of a navigation bar.
type DisplayModel []Entry

// String joins the entries with single spaces, e.g. "1 … 9 [10] 11 … 20".
func (m DisplayModel) String() string {
	parts := make([]string, len(m))
	for i, e := range m {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Current returns the current page entry and whether one exists.
func (m DisplayModel) Current() (Entry, bool) {
	for _, e := range m {
		if e.Current {
			return e, true
		}
	}
	return Entry{}, false
}

// Build returns the display model for s. Out-of-range fields are corrected
// first, so Build always produces a valid model of at most MaxButtons entries.
func Build(s State) DisplayModel {
	s = s.Normalize()
	current, total, budget := s.CurrentPage, s.TotalPages, s.MaxButtons

	switch {
	case total == 1:
		return buildSinglePage()
	case total <= budget:
		return buildAllPages(current, total)
	case budget == 3:
		return buildThreeButtons(current, total)
	case budget == 4:
		return buildFourButtons(current, total)
	default:
		return buildWindowed(current, total, budget)
	}
}

func buildSinglePage() DisplayModel {
	return DisplayModel{PageEntry(1, 1)}
}

func buildAllPages(current, total int) DisplayModel {
	model := make(DisplayModel, 0, total)
	for page := 1; page <= total; page++ {
		model = append(model, PageEntry(page, current))
	}
	return model
}

// buildThreeButtons shows first, one middle page, and last. The middle page
// follows current but never duplicates an end.
func buildThreeButtons(current, total int) DisplayModel {
	middle := current
	switch current {
	case 1:
		middle = 2
	case total:
		middle = total - 1
	}
	return DisplayModel{
		PageEntry(1, current),
		PageEntry(middle, current),
		PageEntry(total, current),
	}
}

// buildFourButtons shows first and last plus a single page next to one
// ellipsis. Near either end the run hugs that end; otherwise current sits on
// the side with fewer pages to its boundary, preferring the start on ties.
func buildFourButtons(current, total int) DisplayModel {
	first := PageEntry(1, current)
	last := PageEntry(total, current)

	switch {
	case current <= 2:
		return DisplayModel{first, PageEntry(2, current), EllipsisEntry(), last}
	case current >= total-1:
		return DisplayModel{first, EllipsisEntry(), PageEntry(total-1, current), last}
	case current-1 <= total-current:
		return DisplayModel{first, PageEntry(current, current), EllipsisEntry(), last}
	default:
		return DisplayModel{first, EllipsisEntry(), PageEntry(current, current), last}
	}
}

func buildWindowed(current, total, budget int) DisplayModel {
	w := CalculateWindow(current, total, budget)
	if w.Len() == 0 || w.Start < 2 || w.End > total-1 {
		panic(fmt.Sprintf("pagination: invalid window [%d, %d] for page %d of %d", w.Start, w.End, current, total))
	}

	model := make(DisplayModel, 0, w.Len()+4)
	model = append(model, PageEntry(1, current))
	if w.LeftEllipsis {
		model = append(model, EllipsisEntry())
	}
	for page := w.Start; page <= w.End; page++ {
		model = append(model, PageEntry(page, current))
	}
	if w.RightEllipsis {
		model = append(model, EllipsisEntry())
	}
	model = append(model, PageEntry(total, current))
	return model
}
