package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/pagination"
)

// slotKind distinguishes positions in the navigation bar.
type slotKind int

const (
	slotFirst slotKind = iota
	slotPrev
	slotPage
	slotEllipsis
	slotNext
	slotLast
)

// Arrow labels for the affordance slots around the page buttons.
const (
	firstLabel = "«"
	prevLabel  = "‹"
	nextLabel  = "›"
	lastLabel  = "»"
)

// barPadding is the blank column before the first slot.
const barPadding = 1

// navSlot is one reusable position in the navigation bar.
type navSlot struct {
	kind    slotKind
	label   string
	target  int // page a click moves to; zero for ellipses
	enabled bool
	current bool

	// Rendered column span [x0, x1).
	x0, x1 int
}

// navBar maps each pagination view onto a pool of slots indexed by position.
// Slots are overwritten in place on every Sync; the pool only grows.
type navBar struct {
	slots []navSlot
	used  int
}

func newNavBar() *navBar {
	return &navBar{}
}

// Sync loads v into the pool: first and prev arrows, one slot per display
// entry, then next and last arrows.
func (b *navBar) Sync(v pagination.View) {
	cur := v.State.CurrentPage
	b.used = 0

	b.put(slotFirst, firstLabel, 1, v.CanGoBack, false)
	b.put(slotPrev, prevLabel, cur-1, v.CanGoBack, false)
	for _, e := range v.Model {
		if e.IsEllipsis() {
			b.put(slotEllipsis, e.Label(), 0, false, false)
			continue
		}
		b.put(slotPage, e.Label(), e.Page, e.Enabled(), e.Current)
	}
	b.put(slotNext, nextLabel, cur+1, v.CanGoForward, false)
	b.put(slotLast, lastLabel, v.State.TotalPages, v.CanGoForward, false)

	x := barPadding
	for i := range b.used {
		s := &b.slots[i]
		s.x0 = x
		s.x1 = x + lipgloss.Width(s.label) + 2
		x = s.x1 + 1
	}
}

func (b *navBar) put(kind slotKind, label string, target int, enabled, current bool) {
	if b.used == len(b.slots) {
		b.slots = append(b.slots, navSlot{})
	}
	s := &b.slots[b.used]
	s.kind = kind
	s.label = label
	s.target = target
	s.enabled = enabled
	s.current = current
	b.used++
}

// Slots returns the active slots in display order.
func (b *navBar) Slots() []navSlot {
	return b.slots[:b.used]
}

// SlotAt returns the slot under column x.
func (b *navBar) SlotAt(x int) (navSlot, bool) {
	for _, s := range b.Slots() {
		if x >= s.x0 && x < s.x1 {
			return s, true
		}
	}
	return navSlot{}, false
}

// Labels returns the active slot labels, mainly for tests and plain output.
func (b *navBar) Labels() []string {
	out := make([]string, 0, b.used)
	for _, s := range b.Slots() {
		out = append(out, s.label)
	}
	return out
}

// Render draws the bar on the given background.
func (b *navBar) Render(styles Styles, bg BgStyle, width int) string {
	parts := make([]string, 0, b.used)
	for _, s := range b.Slots() {
		parts = append(parts, slotStyle(styles, s).Render(s.label))
	}
	line := bg.Spaces(barPadding) + strings.Join(parts, bg.Space())
	return bg.FillLine(line, width)
}

func slotStyle(styles Styles, s navSlot) lipgloss.Style {
	switch {
	case s.current:
		return styles.CurrentButton
	case s.kind == slotEllipsis:
		return styles.FaintText.Padding(0, 1)
	case !s.enabled:
		return styles.DisabledButton
	case s.kind == slotPage:
		return styles.PageButton
	default:
		return styles.AccentText.Padding(0, 1)
	}
}
