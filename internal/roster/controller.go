package roster

import (
	"slices"
	"strconv"
	"strings"

	"github.com/csg33k/roster-admin/internal/domain"
)

// FilterKey is the category a filter chip is added under.
type FilterKey string

const (
	FilterNone    FilterKey = "Select"
	FilterTeam    FilterKey = "Team"
	FilterManager FilterKey = "Manager"
)

// FilterKeys lists the choices of the filter select in display order.
var FilterKeys = []FilterKey{FilterNone, FilterTeam, FilterManager}

// ParseFilterKey maps free text onto a FilterKey, falling back to FilterNone.
func ParseFilterKey(s string) FilterKey {
	switch FilterKey(strings.TrimSpace(s)) {
	case FilterTeam:
		return FilterTeam
	case FilterManager:
		return FilterManager
	default:
		return FilterNone
	}
}

// Controller owns the state of one roster screen. It is not safe for
// concurrent use; callers serialize access per screen.
type Controller struct {
	page            int
	pageSize        int
	defaultPageSize int

	filterKey   FilterKey
	filterValue string
	chips       []string

	employees []domain.Employee
	loaded    bool
	selection *Selection
	admin     bool
}

// NewController returns a controller positioned on page 1 with the given
// default page size. Invalid defaults fall back to DefaultPageSize.
func NewController(defaultPageSize int, admin bool) *Controller {
	if !ValidPageSize(defaultPageSize) {
		defaultPageSize = DefaultPageSize
	}
	return &Controller{
		page:            1,
		pageSize:        defaultPageSize,
		defaultPageSize: defaultPageSize,
		filterKey:       FilterNone,
		selection:       NewSelection(),
		admin:           admin,
	}
}

// Load replaces the employee list. Selected ids that are no longer present
// are dropped and the current page is pulled back inside the new range.
func (c *Controller) Load(list []domain.Employee) {
	c.employees = slices.Clone(list)
	c.loaded = true
	c.selection.Retain(domain.IDs(c.employees))
	if total := c.TotalPages(); c.page > total {
		c.page = max(total, 1)
	}
}

// SetPageSize switches to one of PageSizes and returns to page 1.
// Sizes outside PageSizes are ignored.
func (c *Controller) SetPageSize(n int) bool {
	if !ValidPageSize(n) {
		return false
	}
	c.pageSize = n
	c.page = 1
	return true
}

// SetFilter records the draft key and value of the filter bar.
func (c *Controller) SetFilter(key FilterKey, value string) {
	c.filterKey = key
	c.filterValue = value
}

// AddFilter turns the draft filter into a chip.
func (c *Controller) AddFilter() bool {
	return c.AddFilterChip(c.filterKey, c.filterValue)
}

// AddFilterChip appends the chip "key - value" when key is Team or Manager,
// value is not blank and the chip is not already present. The draft value is
// cleared after a chip is added. Chips never narrow the visible slice.
func (c *Controller) AddFilterChip(key FilterKey, value string) bool {
	value = strings.TrimSpace(value)
	if (key != FilterTeam && key != FilterManager) || value == "" {
		return false
	}
	chip := string(key) + " - " + value
	if slices.Contains(c.chips, chip) {
		return false
	}
	c.chips = append(c.chips, chip)
	c.filterKey = key
	c.filterValue = ""
	return true
}

// RemoveFilter removes the chip equal to chip.
func (c *Controller) RemoveFilter(chip string) bool {
	n := len(c.chips)
	c.chips = slices.DeleteFunc(c.chips, func(v string) bool { return v == chip })
	return len(c.chips) != n
}

// Reset clears chips and the filter bar and returns to page 1 with the
// default page size. The selection is kept.
func (c *Controller) Reset() {
	c.chips = nil
	c.filterKey = FilterNone
	c.filterValue = ""
	c.page = 1
	c.pageSize = c.defaultPageSize
}

// GoToPage moves to page n when 1 <= n <= TotalPages.
func (c *Controller) GoToPage(n int) bool {
	if n < 1 || n > c.TotalPages() {
		return false
	}
	c.page = n
	return true
}

// GoToPageInput parses the "go to page" box. Malformed input is ignored.
func (c *Controller) GoToPageInput(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return c.GoToPage(n)
}

// NextPage advances one page unless already on the last page.
func (c *Controller) NextPage() bool {
	if c.page >= c.TotalPages() {
		return false
	}
	c.page++
	return true
}

// PreviousPage goes back one page unless already on the first page.
func (c *Controller) PreviousPage() bool {
	if c.page <= 1 {
		return false
	}
	c.page--
	return true
}

// Toggle flips the selection of one loaded employee. Ids outside the
// loaded list are ignored.
func (c *Controller) Toggle(id string) bool {
	if c.indexOf(id) < 0 {
		return false
	}
	c.selection.Toggle(id)
	return true
}

// SelectAll selects every loaded employee or clears the selection.
func (c *Controller) SelectAll(selected bool) {
	c.selection.SelectAll(domain.IDs(c.employees), selected)
}

// SetAdmin switches the cosmetic admin mode.
func (c *Controller) SetAdmin(admin bool) {
	c.admin = admin
}

// Remove drops the employee with id from the list and the selection.
func (c *Controller) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.employees = slices.Delete(c.employees, i, i+1)
	c.selection.Remove(id)
	if total := c.TotalPages(); c.page > total {
		c.page = max(total, 1)
	}
	return true
}

// Replace swaps in e for the loaded employee with the same ID.
func (c *Controller) Replace(e domain.Employee) bool {
	i := c.indexOf(e.EmpID)
	if i < 0 {
		return false
	}
	c.employees[i] = e
	return true
}

// Append adds employees to the end of a loaded list. Nothing is added when
// the list was never loaded or already holds one of the ids.
func (c *Controller) Append(list ...domain.Employee) bool {
	if !c.loaded {
		return false
	}
	for _, e := range list {
		if c.indexOf(e.EmpID) >= 0 {
			return false
		}
	}
	c.employees = append(c.employees, list...)
	return true
}

// Page is the current 1-based page.
func (c *Controller) Page() int { return c.page }

// PageSize is the current number of rows per page.
func (c *Controller) PageSize() int { return c.pageSize }

// Chips returns the applied filter chips in the order they were added.
func (c *Controller) Chips() []string { return slices.Clone(c.chips) }

func (c *Controller) FilterKey() FilterKey { return c.filterKey }

func (c *Controller) FilterValue() string { return c.filterValue }

func (c *Controller) Admin() bool { return c.admin }

// Selected returns the selected employee ids in selection order.
func (c *Controller) Selected() []string { return c.selection.IDs() }

func (c *Controller) IsSelected(id string) bool { return c.selection.Has(id) }

// TotalPages derives the page count of the loaded list.
func (c *Controller) TotalPages() int {
	return DeriveTotalPages(len(c.employees), c.pageSize)
}

// Visible derives the rows of the current page.
func (c *Controller) Visible() []domain.Employee {
	return DeriveVisibleSlice(c.employees, c.page, c.pageSize)
}

// SelectAllState derives the "select all" checkbox state.
func (c *Controller) SelectAllState() CheckState {
	return c.selection.CheckState(len(c.employees))
}

func (c *Controller) indexOf(id string) int {
	return slices.IndexFunc(c.employees, func(e domain.Employee) bool { return e.EmpID == id })
}
