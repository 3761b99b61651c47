package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/logtail"
)

// renderMain renders the full screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	if m.showDetail {
		b.WriteString(m.detail.View())
	} else {
		b.WriteString(m.renderTable())
	}
	b.WriteString("\n")

	b.WriteString(m.renderNavBar())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the status line: source, counts, filter and poll state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("folio", styles.Logo),
		bg.Render(truncateMiddle(m.snapshot.Source, max(m.width/3, 12)), styles.MutedText),
	}

	total := len(m.snapshot.Entries)
	count := m.printer.Sprintf("%d entries", total)
	if len(m.entries) != total {
		count = m.printer.Sprintf("%d of %d entries", len(m.entries), total)
	}
	parts = append(parts,
		bg.Render(count, styles.Text),
		bg.Render("Level:", styles.MutedText)+bg.Space()+bg.Render(levelLabel(m.minLevel), styles.AccentText),
	)

	switch {
	case m.snapshot.LastError != nil:
		msg := "read failed"
		if m.snapshot.IsFailing() {
			msg = fmt.Sprintf("read failing (%d) - retrying", m.snapshot.ConsecutiveFailures)
		}
		parts = append(parts, bg.Render(msg, styles.DangerText))
	case !m.snapshot.HasData:
		parts = append(parts, bg.Render("waiting for log...", styles.WarningText))
	default:
		parts = append(parts, bg.Render("updated "+m.snapshot.LastUpdated.Format("15:04:05"), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints line.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	colon := bg.Sep(":")

	bindings := m.keys.ShortHelp()
	segments := make([]string, 0, len(bindings)+1)
	for _, kb := range bindings {
		h := kb.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderTable renders the column header and the visible rows of the page.
func (m Model) renderTable() string {
	styles := m.theme.Styles()
	cols := m.columns()
	height := m.contentHeight()

	lines := make([]string, 0, height)
	lines = append(lines, styles.FaintText.Bold(true).Render(m.formatRow(cols, "LINE", "TIME", "LEVEL", "COMPONENT", "MESSAGE")))

	page := m.pageEntries()
	if len(page) == 0 {
		empty := "No entries"
		if m.minLevel != logtail.LevelUnknown && len(m.snapshot.Entries) > 0 {
			empty = "No entries at " + levelLabel(m.minLevel)
		}
		lines = append(lines, styles.MutedText.Render(" "+empty))
	}

	end := min(m.offset+m.tableRows(), len(page))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(styles, cols, page[i], i == m.cursor))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(styles Styles, cols columns, e logtail.Entry, selected bool) string {
	ts := e.RawTime
	if !e.Timestamp.IsZero() {
		ts = e.Timestamp.Format(cols.timeLayout)
	}
	msg := e.Message
	if len(e.Details) > 0 {
		msg += fmt.Sprintf(" (+%d)", len(e.Details))
	}

	if selected {
		row := m.formatRow(cols, strconv.Itoa(e.Line), ts, e.Level.String(), e.Component, msg)
		return styles.Selected.Width(m.width).Render(row)
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(styles.FaintText.Render(fit(strconv.Itoa(e.Line), cols.line)))
	b.WriteString(" ")
	b.WriteString(styles.MutedText.Render(fit(ts, cols.time)))
	b.WriteString(" ")
	b.WriteString(styles.LevelStyle(e.Level).Render(fit(e.Level.String(), cols.level)))
	b.WriteString(" ")
	if cols.component > 0 {
		b.WriteString(styles.AccentText.Render(fit(e.Component, cols.component)))
		b.WriteString(" ")
	}
	b.WriteString(styles.Text.Render(truncate(msg, cols.message)))
	return b.String()
}

// formatRow lays out plain cells in the table's column widths.
func (m Model) formatRow(cols columns, line, ts, level, component, msg string) string {
	cells := []string{fit(line, cols.line), fit(ts, cols.time), fit(level, cols.level)}
	if cols.component > 0 {
		cells = append(cells, fit(component, cols.component))
	}
	cells = append(cells, truncate(msg, cols.message))
	return " " + strings.Join(cells, " ")
}

// renderDetail renders the full text of one entry for the detail pane.
func (m Model) renderDetail(e logtail.Entry) string {
	styles := m.theme.Styles()
	label := func(name string) string {
		return styles.MutedText.Render(padRight(name, 11))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", label("Line"), styles.Text.Render(strconv.Itoa(e.Line)))
	if e.RawTime != "" {
		fmt.Fprintf(&b, "%s%s\n", label("Time"), styles.Text.Render(e.RawTime))
	}
	fmt.Fprintf(&b, "%s%s\n", label("Level"), styles.LevelStyle(e.Level).Render(e.Level.String()))
	if e.Component != "" {
		fmt.Fprintf(&b, "%s%s\n", label("Component"), styles.AccentText.Render(e.Component))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(max(m.width-2, 20)).Render(styles.Text.Render(e.Message)))
	b.WriteString("\n")
	for _, d := range e.Details {
		b.WriteString(styles.FaintText.Render(d))
		b.WriteString("\n")
	}
	return b.String()
}

// renderNavBar renders the page buttons.
func (m Model) renderNavBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	return m.source.bar.Render(styles, bg, m.width)
}

// renderFooter renders the jump prompt or the paging summary.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.jumping {
		return " " + m.jump.View()
	}

	st := m.pager.State()
	summary := m.printer.Sprintf("Page %s  ·  %d per page  ·  %d buttons",
		m.source.Indicator(), st.ItemsPerPage, st.MaxButtons)
	if m.showDetail {
		summary += "  ·  esc closes detail"
	}
	return styles.MutedText.Render(" " + summary)
}
