package pagination

import (
	"slices"
	"strconv"
	"strings"
	"sync"
)

// View is what a renderer needs after every state change.
type View struct {
	State State
	Model DisplayModel

	// CanGoBack enables the first/prev affordances.
	CanGoBack bool
	// CanGoForward enables the next/last affordances.
	CanGoForward bool
}

// Observer receives controller notifications. Calls happen after the
// controller lock is released, in commit order. A change made from inside an
// observer is queued and delivered to every observer once the current
// notification has been delivered, so the last View each observer sees always
// matches the controller.
type Observer interface {
	// ViewChanged is called on every state change with the rebuilt model.
	ViewChanged(v View)
	// PageChanged is called when the current page moves.
	PageChanged(page int)
	// ItemsPerPageChanged is called on every page size selection, including
	// reselection of the active size.
	ItemsPerPageChanged(perPage int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnViewChanged         func(View)
	OnPageChanged         func(int)
	OnItemsPerPageChanged func(int)
}

func (f ObserverFuncs) ViewChanged(v View) {
	if f.OnViewChanged != nil {
		f.OnViewChanged(v)
	}
}

func (f ObserverFuncs) PageChanged(page int) {
	if f.OnPageChanged != nil {
		f.OnPageChanged(page)
	}
}

func (f ObserverFuncs) ItemsPerPageChanged(perPage int) {
	if f.OnItemsPerPageChanged != nil {
		f.OnItemsPerPageChanged(perPage)
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithState seeds the controller with s (normalized).
func WithState(s State) Option {
	return func(c *Controller) { c.state = s }
}

// WithMaxButtons sets the initial button budget.
func WithMaxButtons(n int) Option {
	return func(c *Controller) { c.state.MaxButtons = n }
}

// WithItemsPerPage sets the initial page size.
func WithItemsPerPage(n int) Option {
	return func(c *Controller) { c.state.ItemsPerPage = n }
}

// Controller owns a pagination State and rebuilds the DisplayModel on every
// change. It is safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	state     State
	model     DisplayModel
	observers []Observer

	// pending notifications, drained by the one caller that owns delivery.
	pending    []notification
	delivering bool
}

// NewController returns a controller in DefaultState with opts applied.
// Construction does not notify observers.
func NewController(opts ...Option) *Controller {
	c := &Controller{state: DefaultState()}
	for _, opt := range opts {
		opt(c)
	}
	c.state = c.state.Normalize()
	c.model = Build(c.state)
	return c
}

// Subscribe registers o for future notifications.
func (c *Controller) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the current state and model.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// SetPagination stores a new current page and page count, clamped. It reports
// whether anything changed; an unchanged call is a no-op.
func (c *Controller) SetPagination(current, total int) bool {
	current, total = Clamp(current, total)

	c.mu.Lock()
	if current == c.state.CurrentPage && total == c.state.TotalPages {
		c.mu.Unlock()
		return false
	}
	next := c.state
	next.CurrentPage, next.TotalPages = current, total
	c.commitLocked(next, false)
	c.mu.Unlock()

	c.flush()
	return true
}

// SetMaxButtons changes the button budget, floored to MinMaxButtons.
func (c *Controller) SetMaxButtons(maxButtons int) bool {
	maxButtons = ClampMaxButtons(maxButtons)

	c.mu.Lock()
	if maxButtons == c.state.MaxButtons {
		c.mu.Unlock()
		return false
	}
	next := c.state
	next.MaxButtons = maxButtons
	c.commitLocked(next, false)
	c.mu.Unlock()

	c.flush()
	return true
}

// Next advances one page. It does nothing on the last page.
func (c *Controller) Next() bool {
	return c.move(func(s State) int { return s.CurrentPage + 1 })
}

// Prev goes back one page. It does nothing on the first page.
func (c *Controller) Prev() bool {
	return c.move(func(s State) int { return s.CurrentPage - 1 })
}

// First goes to page 1.
func (c *Controller) First() bool {
	return c.move(func(State) int { return 1 })
}

// Last goes to the final page.
func (c *Controller) Last() bool {
	return c.move(func(s State) int { return s.TotalPages })
}

// GoTo moves to page, clamped into [1, total].
func (c *Controller) GoTo(page int) bool {
	return c.move(func(State) int { return page })
}

// JumpTo parses text as a page number and moves there. Text that is not an
// integer is ignored.
func (c *Controller) JumpTo(text string) bool {
	page, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return false
	}
	return c.GoTo(page)
}

// SetItemsPerPage selects a page size from ItemsPerPageOptions. Unsupported
// values are ignored. A supported value is always reported, even when it is
// already active, because the data source must reload either way.
func (c *Controller) SetItemsPerPage(perPage int) bool {
	if !ValidItemsPerPage(perPage) {
		return false
	}

	c.mu.Lock()
	next := c.state
	next.ItemsPerPage = perPage
	c.commitLocked(next, true)
	c.mu.Unlock()

	c.flush()
	return true
}

func (c *Controller) move(target func(State) int) bool {
	c.mu.Lock()
	page, _ := Clamp(target(c.state), c.state.TotalPages)
	if page == c.state.CurrentPage {
		c.mu.Unlock()
		return false
	}
	next := c.state
	next.CurrentPage = page
	c.commitLocked(next, false)
	c.mu.Unlock()

	c.flush()
	return true
}

// notification is captured under the lock and delivered after it is released.
type notification struct {
	view           View
	pageChanged    bool
	perPageChanged bool
	observers      []Observer
}

func (c *Controller) commitLocked(next State, perPageChanged bool) {
	pageChanged := next.CurrentPage != c.state.CurrentPage
	c.state = next
	c.model = Build(next)
	c.pending = append(c.pending, notification{
		view:           c.viewLocked(),
		pageChanged:    pageChanged,
		perPageChanged: perPageChanged,
		observers:      slices.Clone(c.observers),
	})
}

func (c *Controller) viewLocked() View {
	return View{
		State:        c.state,
		Model:        slices.Clone(c.model),
		CanGoBack:    c.state.CurrentPage > 1,
		CanGoForward: c.state.CurrentPage < c.state.TotalPages,
	}
}

// flush delivers queued notifications in order. Only the outermost caller
// delivers; a nested or concurrent caller returns and leaves its notification
// to the goroutine already draining the queue.
func (c *Controller) flush() {
	c.mu.Lock()
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true
	for len(c.pending) > 0 {
		n := c.pending[0]
		c.pending = c.pending[1:]
		c.mu.Unlock()
		n.deliver()
		c.mu.Lock()
	}
	c.pending = nil
	c.delivering = false
	c.mu.Unlock()
}

func (n notification) deliver() {
	for _, o := range n.observers {
		o.ViewChanged(n.view)
		if n.pageChanged {
			o.PageChanged(n.view.State.CurrentPage)
		}
		if n.perPageChanged {
			o.ItemsPerPageChanged(n.view.State.ItemsPerPage)
		}
	}
}
