package state

// TotalPages returns how many pages of perPage items count items fill. An
// empty list still has one (empty) page, matching the pagination core.
func TotalPages(count, perPage int) int {
	if perPage <= 0 || count <= 0 {
		return 1
	}
	return (count + perPage - 1) / perPage
}

// PageBounds returns the half-open slice bounds of page (1-based) for count
// items. Pages past the end are clamped to the last page.
func PageBounds(count, page, perPage int) (start, end int) {
	if count <= 0 || perPage <= 0 {
		return 0, 0
	}
	total := TotalPages(count, perPage)
	page = min(max(page, 1), total)
	start = (page - 1) * perPage
	end = min(start+perPage, count)
	return start, end
}
