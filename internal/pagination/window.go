package pagination

// Window is the run of middle pages shown between the always-visible first
// and last pages in the general case.
type Window struct {
	Start int // inclusive, >= 2
	End   int // inclusive, <= total-1

	LeftEllipsis  bool // pages 2..Start-1 are hidden
	RightEllipsis bool // pages End+1..total-1 are hidden
}

// CalculateWindow computes the middle window for a budget above four when the
// pages do not all fit. Callers normally reach it through Build.
//
// The window is first sized for two ellipses and centered on current, then
// shifted to stay inside [2, total-1]. When one ellipsis turns out to be
// unnecessary its slot is given back to the window on the open side.
func CalculateWindow(current, total, maxButtons int) Window {
	current, total = Clamp(current, total)
	maxButtons = ClampMaxButtons(maxButtons)
	lastMiddle := total - 1

	numMiddle := maxButtons - 4
	start := current - numMiddle/2
	end := current + (numMiddle-1)/2

	if start < 2 {
		end += 2 - start
		start = 2
	}
	if end > lastMiddle {
		start -= end - lastMiddle
		end = lastMiddle
	}
	if start < 2 {
		start = 2
	}

	ellipses := 2
	if start == 2 {
		ellipses--
	}
	if end == lastMiddle {
		ellipses--
	}

	switch ellipses {
	case 1:
		numMiddle = maxButtons - 3
		if start == 2 {
			end = min(start+numMiddle-1, lastMiddle)
		} else {
			start = max(end-numMiddle+1, 2)
		}
	case 0:
		start, end = 2, lastMiddle
	}

	return Window{
		Start:         start,
		End:           end,
		LeftEllipsis:  start > 2,
		RightEllipsis: end < lastMiddle,
	}
}

// Len returns the number of pages in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}
