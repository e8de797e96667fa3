// Package roster holds the view state of the employee roster screen:
// pagination, filter chips and row selection. It has no knowledge of
// rendering or storage; callers load the employee list, issue commands and
// read derived values back.
package roster

import "github.com/csg33k/roster-admin/internal/domain"

// PageSizes are the entries-per-page choices offered by the screen.
var PageSizes = []int{4, 25, 50, 100}

// DefaultPageSize is used when no other default is configured.
const DefaultPageSize = 50

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}

// DeriveTotalPages returns ceil(n / size). An empty list has zero pages.
func DeriveTotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// DeriveVisibleSlice returns list[(page-1)*size : page*size], clipped to
// the bounds of list. Out-of-range pages yield an empty slice.
func DeriveVisibleSlice(list []domain.Employee, page, size int) []domain.Employee {
	if page < 1 || size <= 0 {
		return []domain.Employee{}
	}
	start := (page - 1) * size
	if start >= len(list) {
		return []domain.Employee{}
	}
	end := min(start+size, len(list))
	out := make([]domain.Employee, end-start)
	copy(out, list[start:end])
	return out
}
