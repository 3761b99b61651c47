package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used:
	// time-of-day only and no component column.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width for a wider component column.
	LayoutWideWidth = 140
)

// Fixed rows around the content area: header, command bar, navigation bar
// and footer.
const chromeRows = 4

// DefaultUIInterval is the default UI refresh interval.
const DefaultUIInterval = time.Second

// contentHeight is the number of rows left for the table or detail pane.
func (m Model) contentHeight() int {
	return max(m.height-chromeRows, 1)
}

// tableRows is the number of entry rows below the column header.
func (m Model) tableRows() int {
	return max(m.contentHeight()-1, 1)
}

// navRow is the screen row of the navigation bar.
func (m Model) navRow() int {
	return m.height - 2
}

type columns struct {
	line, time, level, component, message int
	timeLayout                            string
}

func (m Model) columns() columns {
	c := columns{line: 6, time: 19, level: 5, component: 14, timeLayout: "2006-01-02 15:04:05"}
	switch {
	case m.width < LayoutCompactWidth:
		c.time = 8
		c.timeLayout = "15:04:05"
		c.component = 0
	case m.width >= LayoutWideWidth:
		c.component = 20
	}
	used := c.line + c.time + c.level + c.component + 5 // separators and padding
	c.message = max(m.width-used, 10)
	return c
}
