package ui

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/rs/zerolog"

	"github.com/five82/folio/internal/pagination"
	"github.com/five82/folio/internal/state"
)

// pageSource is the data side of the pagination controller. It owns the item
// count, turns it into a page total, and keeps a bubbles paginator in step
// with the controller for slicing and the compact page indicator.
type pageSource struct {
	ctl    *pagination.Controller
	logger zerolog.Logger
	bar    *navBar

	count int
	pages paginator.Model

	// Set by observer callbacks, cleared by the model once handled.
	pageMoved      bool
	perPageChanged bool
}

func newPageSource(ctl *pagination.Controller, logger zerolog.Logger) *pageSource {
	s := &pageSource{
		ctl:    ctl,
		logger: logger,
		bar:    newNavBar(),
	}
	st := ctl.State()
	s.pages = paginator.New(paginator.WithPerPage(st.ItemsPerPage))
	s.pages.Type = paginator.Arabic
	s.pages.Page = st.CurrentPage - 1
	s.bar.Sync(ctl.View())
	ctl.Subscribe(s)
	return s
}

// ViewChanged implements pagination.Observer.
func (s *pageSource) ViewChanged(v pagination.View) {
	s.bar.Sync(v)
	s.pages.Page = v.State.CurrentPage - 1
	s.pages.PerPage = v.State.ItemsPerPage
	s.pages.TotalPages = v.State.TotalPages
}

// PageChanged implements pagination.Observer.
func (s *pageSource) PageChanged(page int) {
	s.pageMoved = true
	s.logger.Debug().Int("page", page).Msg("page changed")
}

// ItemsPerPageChanged implements pagination.Observer. A new page size always
// reloads from the first page.
func (s *pageSource) ItemsPerPageChanged(perPage int) {
	s.perPageChanged = true
	s.logger.Debug().Int("per_page", perPage).Msg("items per page changed")
	s.ctl.SetPagination(1, state.TotalPages(s.count, perPage))
}

// SetCount updates the item count and the controller's page total. The
// current page is kept when it still exists.
func (s *pageSource) SetCount(count int) {
	s.count = count
	st := s.ctl.State()
	s.ctl.SetPagination(st.CurrentPage, state.TotalPages(count, st.ItemsPerPage))
}

// Reset replaces the item set: a new count, back on the first page.
func (s *pageSource) Reset(count int) {
	s.count = count
	st := s.ctl.State()
	s.ctl.SetPagination(1, state.TotalPages(count, st.ItemsPerPage))
}

// Bounds returns the [start, end) slice of items on the current page.
func (s *pageSource) Bounds() (int, int) {
	start, end := s.pages.GetSliceBounds(s.count)
	return min(start, end), end
}

// Indicator renders the compact "page/total" text.
func (s *pageSource) Indicator() string {
	return s.pages.View()
}

// takeEvents reports and clears the pending observer flags.
func (s *pageSource) takeEvents() (pageMoved, perPageChanged bool) {
	pageMoved, perPageChanged = s.pageMoved, s.perPageChanged
	s.pageMoved, s.perPageChanged = false, false
	return pageMoved, perPageChanged
}
