package pagination

// Default values for a freshly created State.
const (
	DefaultCurrentPage  = 1
	DefaultTotalPages   = 1
	DefaultMaxButtons   = 7
	DefaultItemsPerPage = 25

	// MinMaxButtons is the smallest button budget: first, current, last.
	MinMaxButtons = 3
)

// ItemsPerPageOptions lists the selectable page sizes in ascending order.
var ItemsPerPageOptions = []int{25, 50, 100, 200}

// State is the complete pagination state owned by a Controller.
type State struct {
	CurrentPage  int
	TotalPages   int
	MaxButtons   int
	ItemsPerPage int
}

// DefaultState returns the state a new navigation bar starts in.
func DefaultState() State {
	return State{
		CurrentPage:  DefaultCurrentPage,
		TotalPages:   DefaultTotalPages,
		MaxButtons:   DefaultMaxButtons,
		ItemsPerPage: DefaultItemsPerPage,
	}
}

// Normalize returns s with every field corrected into its valid range.
// An unsupported ItemsPerPage falls back to DefaultItemsPerPage.
func (s State) Normalize() State {
	s.CurrentPage, s.TotalPages = Clamp(s.CurrentPage, s.TotalPages)
	s.MaxButtons = ClampMaxButtons(s.MaxButtons)
	if !ValidItemsPerPage(s.ItemsPerPage) {
		s.ItemsPerPage = DefaultItemsPerPage
	}
	return s
}

// Clamp floors total to 1 and moves current into [1, total].
func Clamp(current, total int) (int, int) {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	return current, total
}

// ClampMaxButtons floors a button budget to MinMaxButtons.
func ClampMaxButtons(n int) int {
	if n < MinMaxButtons {
		return MinMaxButtons
	}
	return n
}

// ValidItemsPerPage reports whether v is one of ItemsPerPageOptions.
func ValidItemsPerPage(v int) bool {
	for _, opt := range ItemsPerPageOptions {
		if opt == v {
			return true
		}
	}
	return false
}

// NextItemsPerPage returns the option after v, staying on the largest.
// Unsupported values map to the default.
func NextItemsPerPage(v int) int {
	for i, opt := range ItemsPerPageOptions {
		if opt == v {
			if i+1 < len(ItemsPerPageOptions) {
				return ItemsPerPageOptions[i+1]
			}
			return opt
		}
	}
	return DefaultItemsPerPage
}

// PrevItemsPerPage returns the option before v, staying on the smallest.
// Unsupported values map to the default.
func PrevItemsPerPage(v int) int {
	for i, opt := range ItemsPerPageOptions {
		if opt == v {
			if i > 0 {
				return ItemsPerPageOptions[i-1]
			}
			return opt
		}
	}
	return DefaultItemsPerPage
}
