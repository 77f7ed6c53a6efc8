package vvector

// pagesForElements returns the minimum number of pages of perPage slots
// needed to hold count elements.
func pagesForElements(count, perPage int) int {
	if count%perPage == 0 {
		return count / perPage
	}

	return count/perPage + 1
}
