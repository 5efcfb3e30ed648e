package view

// PageSize is the fixed number of cards per page.
const PageSize = 15

// MaxPage returns the last valid zero-based page for a filtered count.
// Never negative: an empty result set still has page 0.
func MaxPage(filteredCount int) int {
	if filteredCount <= 0 {
		return 0
	}
	return (filteredCount + PageSize - 1) / PageSize - 1
}

// Clamp forces a requested page into [0, maxPage]. Out-of-range requests
// are not an error, they land on the nearest valid page.
func Clamp(page, maxPage int) int {
	if page < 0 {
		return 0
	}
	if page > maxPage {
		return maxPage
	}
	return page
}
