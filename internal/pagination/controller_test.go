package pagination

import (
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	views    []View
	pages    []int
	perPages []int
}

func (r *recorder) ViewChanged(v View) {
	r.views = append(r.views, v)
}

func (r *recorder) PageChanged(page int) {
	r.pages = append(r.pages, page)
}

func (r *recorder) ItemsPerPageChanged(perPage int) {
	r.perPages = append(r.perPages, perPage)
}

func (r *recorder) lastView(t *testing.T) View {
	t.Helper()
	if len(r.views) == 0 {
		t.Fatal("observer saw no views")
	}
	return r.views[len(r.views)-1]
}

func newRecordedController(t *testing.T, current, total int) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c := NewController(WithState(State{CurrentPage: current, TotalPages: total, MaxButtons: 7, ItemsPerPage: 25}))
	c.Subscribe(rec)
	return c, rec
}

func checkPages(t *testing.T, rec *recorder, want ...int) {
	t.Helper()
	if !slices.Equal(rec.pages, want) {
		t.Fatalf("PageChanged calls = %v, want %v", rec.pages, want)
	}
}

func checkCalled(t *testing.T, name string, got, want bool) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController()
	if got := c.State(); got != DefaultState() {
		t.Fatalf("State() = %+v, want %+v", got, DefaultState())
	}

	v := c.View()
	if got := v.Model.String(); got != "[1]" {
		t.Fatalf("Model = %q, want %q", got, "[1]")
	}
	if v.CanGoBack || v.CanGoForward {
		t.Fatalf("single page view allows navigation: %+v", v)
	}
}

func TestNewController_NormalizesOptions(t *testing.T) {
	c := NewController(WithMaxButtons(1), WithItemsPerPage(30))
	s := c.State()
	if s.MaxButtons != MinMaxButtons {
		t.Errorf("MaxButtons = %d, want %d", s.MaxButtons, MinMaxButtons)
	}
	if s.ItemsPerPage != DefaultItemsPerPage {
		t.Errorf("ItemsPerPage = %d, want %d", s.ItemsPerPage, DefaultItemsPerPage)
	}
}

func TestController_SetPaginationIsIdempotent(t *testing.T) {
	c, rec := newRecordedController(t, 1, 1)

	checkCalled(t, "SetPagination(3, 10)", c.SetPagination(3, 10), true)
	checkCalled(t, "repeated SetPagination(3, 10)", c.SetPagination(3, 10), false)

	if len(rec.views) != 1 {
		t.Fatalf("ViewChanged calls = %d, want 1", len(rec.views))
	}
	if got, want := rec.views[0].Model.String(), "1 2 [3] 4 5 … 10"; got != want {
		t.Fatalf("Model = %q, want %q", got, want)
	}
	checkPages(t, rec, 3)
}

func TestController_SetPaginationClamps(t *testing.T) {
	c, rec := newRecordedController(t, 5, 10)

	checkCalled(t, "SetPagination(99, 0)", c.SetPagination(99, 0), true)
	want := State{CurrentPage: 1, TotalPages: 1, MaxButtons: 7, ItemsPerPage: 25}
	if diff := cmp.Diff(want, c.State()); diff != "" {
		t.Fatalf("State() mismatch (-want +got):\n%s", diff)
	}
	checkPages(t, rec, 1)

	// Clamped input equal to the stored state is a no-op.
	checkCalled(t, "SetPagination(-4, -4)", c.SetPagination(-4, -4), false)
	if len(rec.views) != 1 {
		t.Fatalf("ViewChanged calls = %d, want 1", len(rec.views))
	}
}

func TestController_TotalChangeWithoutPageMove(t *testing.T) {
	c, rec := newRecordedController(t, 2, 10)

	checkCalled(t, "SetPagination(2, 20)", c.SetPagination(2, 20), true)
	if len(rec.views) != 1 {
		t.Fatalf("ViewChanged calls = %d, want 1", len(rec.views))
	}
	checkPages(t, rec)
	if got := c.State().TotalPages; got != 20 {
		t.Fatalf("TotalPages = %d, want 20", got)
	}
}

func TestController_NextPrevStopAtBounds(t *testing.T) {
	c, rec := newRecordedController(t, 1, 3)

	checkCalled(t, "Prev on first page", c.Prev(), false)
	checkCalled(t, "Next", c.Next(), true)
	checkCalled(t, "Next", c.Next(), true)
	checkCalled(t, "Next on last page", c.Next(), false)
	checkCalled(t, "Prev", c.Prev(), true)

	checkPages(t, rec, 2, 3, 2)
	if got := c.State().CurrentPage; got != 2 {
		t.Fatalf("CurrentPage = %d, want 2", got)
	}
}

func TestController_FirstLast(t *testing.T) {
	c, rec := newRecordedController(t, 4, 9)

	checkCalled(t, "Last", c.Last(), true)
	checkCalled(t, "Last on last page", c.Last(), false)
	checkCalled(t, "First", c.First(), true)
	checkCalled(t, "First on first page", c.First(), false)
	checkPages(t, rec, 9, 1)
}

func TestController_JumpTo(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantPage int
		wantEmit bool
	}{
		{"valid", "7", 7, true},
		{"whitespace", "  8 ", 8, true},
		{"past end clamps", "999", 20, true},
		{"zero clamps", "0", 1, true},
		{"negative clamps", "-5", 1, true},
		{"current page", "5", 5, false},
		{"letters", "abc", 5, false},
		{"empty", "", 5, false},
		{"float", "2.5", 5, false},
		{"overflow", "99999999999999999999999", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRecordedController(t, 5, 20)

			checkCalled(t, "JumpTo("+tt.text+")", c.JumpTo(tt.text), tt.wantEmit)
			if got := c.State().CurrentPage; got != tt.wantPage {
				t.Fatalf("CurrentPage = %d, want %d", got, tt.wantPage)
			}
			if tt.wantEmit {
				checkPages(t, rec, tt.wantPage)
			} else if len(rec.views) != 0 || len(rec.pages) != 0 {
				t.Fatalf("ignored input notified observers: views=%d pages=%v", len(rec.views), rec.pages)
			}
		})
	}
}

func TestController_SetMaxButtons(t *testing.T) {
	c, rec := newRecordedController(t, 10, 20)

	checkCalled(t, "SetMaxButtons(5)", c.SetMaxButtons(5), true)
	checkCalled(t, "repeated SetMaxButtons(5)", c.SetMaxButtons(5), false)
	checkCalled(t, "SetMaxButtons(0)", c.SetMaxButtons(0), true)
	checkCalled(t, "SetMaxButtons(2)", c.SetMaxButtons(2), false)

	var got []string
	for _, v := range rec.views {
		got = append(got, v.Model.String())
	}
	if diff := cmp.Diff([]string{"1 … [10] … 20", "1 [10] 20"}, got); diff != "" {
		t.Fatalf("views mismatch (-want +got):\n%s", diff)
	}
	checkPages(t, rec)
}

func TestController_SetItemsPerPageAlwaysReports(t *testing.T) {
	c, rec := newRecordedController(t, 1, 4)

	checkCalled(t, "SetItemsPerPage(25)", c.SetItemsPerPage(25), true)
	checkCalled(t, "repeated SetItemsPerPage(25)", c.SetItemsPerPage(25), true)
	checkCalled(t, "SetItemsPerPage(100)", c.SetItemsPerPage(100), true)
	checkCalled(t, "SetItemsPerPage(30)", c.SetItemsPerPage(30), false)

	if !slices.Equal(rec.perPages, []int{25, 25, 100}) {
		t.Fatalf("ItemsPerPageChanged calls = %v, want [25 25 100]", rec.perPages)
	}
	if got := c.State().ItemsPerPage; got != 100 {
		t.Fatalf("ItemsPerPage = %d, want 100", got)
	}
	checkPages(t, rec)
}

func TestController_ViewAffordances(t *testing.T) {
	c, _ := newRecordedController(t, 1, 3)

	check := func(step string, back, forward bool) {
		t.Helper()
		v := c.View()
		if v.CanGoBack != back || v.CanGoForward != forward {
			t.Fatalf("%s: CanGoBack=%v CanGoForward=%v, want %v %v", step, v.CanGoBack, v.CanGoForward, back, forward)
		}
	}

	check("first page", false, true)
	c.Next()
	check("middle page", true, true)
	c.Last()
	check("last page", true, false)
}

func TestController_ViewIsACopy(t *testing.T) {
	c, _ := newRecordedController(t, 10, 20)

	v := c.View()
	v.Model[0] = EllipsisEntry()
	if got, want := c.View().Model.String(), "1 … 9 [10] 11 … 20"; got != want {
		t.Fatalf("Model = %q after mutating a copy, want %q", got, want)
	}
}

func TestController_ObserverMayCallBack(t *testing.T) {
	c := NewController()
	var seen []int
	c.Subscribe(ObserverFuncs{
		OnItemsPerPageChanged: func(int) {
			// A data source reloads and resets to the first page.
			c.SetPagination(1, 8)
		},
		OnPageChanged: func(page int) { seen = append(seen, page) },
	})

	c.SetPagination(3, 4)
	c.SetItemsPerPage(50)

	want := State{CurrentPage: 1, TotalPages: 8, MaxButtons: 7, ItemsPerPage: 50}
	if diff := cmp.Diff(want, c.State()); diff != "" {
		t.Fatalf("State() mismatch (-want +got):\n%s", diff)
	}
	if !slices.Equal(seen, []int{3, 1}) {
		t.Fatalf("PageChanged calls = %v, want [3 1]", seen)
	}
}

// A change made by one observer must reach observers registered after it, and
// each observer must end on the controller's final view.
func TestController_ReentrantChangeReachesEveryObserver(t *testing.T) {
	c := NewController(WithState(State{CurrentPage: 3, TotalPages: 10, MaxButtons: 7, ItemsPerPage: 25}))

	first := &recorder{}
	reload := ObserverFuncs{
		OnViewChanged: first.ViewChanged,
		OnPageChanged: first.PageChanged,
		OnItemsPerPageChanged: func(perPage int) {
			first.ItemsPerPageChanged(perPage)
			c.SetPagination(1, 3)
		},
	}
	second := &recorder{}
	c.Subscribe(reload)
	c.Subscribe(second)

	checkCalled(t, "SetItemsPerPage(100)", c.SetItemsPerPage(100), true)

	final := c.View()
	if got, want := final.Model.String(), "[1] 2 3"; got != want {
		t.Fatalf("final Model = %q, want %q", got, want)
	}
	for name, rec := range map[string]*recorder{"first": first, "second": second} {
		if diff := cmp.Diff(final, rec.lastView(t)); diff != "" {
			t.Errorf("%s observer's last view is stale (-controller +observer):\n%s", name, diff)
		}
		if len(rec.views) != 2 {
			t.Errorf("%s observer saw %d views, want 2", name, len(rec.views))
		}
		if !slices.Equal(rec.pages, []int{1}) {
			t.Errorf("%s observer PageChanged calls = %v, want [1]", name, rec.pages)
		}
		if !slices.Equal(rec.perPages, []int{100}) {
			t.Errorf("%s observer ItemsPerPageChanged calls = %v, want [100]", name, rec.perPages)
		}
	}

	// Views arrive in commit order: the page size change, then the reload.
	if got := second.views[0].State; got.CurrentPage != 3 || got.ItemsPerPage != 100 {
		t.Fatalf("second observer's first view = %+v, want page 3 at 100 per page", got)
	}
}

func TestController_ConcurrentNavigation(t *testing.T) {
	c := NewController(WithState(State{CurrentPage: 1, TotalPages: 1000}))

	var mu sync.Mutex
	moves := 0
	c.Subscribe(ObserverFuncs{OnPageChanged: func(int) {
		mu.Lock()
		moves++
		mu.Unlock()
	}})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				c.Next()
				v := c.View()
				cur, ok := v.Model.Current()
				if !ok || cur.Page != v.State.CurrentPage {
					t.Errorf("model %s inconsistent with page %d", v.Model, v.State.CurrentPage)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := c.State().CurrentPage; got != 401 {
		t.Fatalf("CurrentPage = %d, want 401", got)
	}
	if moves != 400 {
		t.Fatalf("PageChanged calls = %d, want 400", moves)
	}
}
