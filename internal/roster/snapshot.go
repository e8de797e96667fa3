package roster

import "github.com/csg33k/roster-admin/internal/domain"

// Row is one visible table row.
type Row struct {
	domain.Employee
	Selected bool
}

// Snapshot is a read-only copy of everything the roster screen renders.
type Snapshot struct {
	Page        int
	PageSize    int
	TotalPages  int
	Total       int
	Rows        []Row
	Chips       []string
	FilterKey   FilterKey
	FilterValue string
	Admin       bool
	SelectAll   CheckState
	Selected    int
	HasPrevious bool
	HasNext     bool
}

// Snapshot derives the current view.
func (c *Controller) Snapshot() Snapshot {
	visible := c.Visible()
	rows := make([]Row, len(visible))
	for i, e := range visible {
		rows[i] = Row{Employee: e, Selected: c.selection.Has(e.EmpID)}
	}
	total := c.TotalPages()
	return Snapshot{
		Page:        c.page,
		PageSize:    c.pageSize,
		TotalPages:  total,
		Total:       len(c.employees),
		Rows:        rows,
		Chips:       c.Chips(),
		FilterKey:   c.filterKey,
		FilterValue: c.filterValue,
		Admin:       c.admin,
		SelectAll:   c.SelectAllState(),
		Selected:    c.selection.Len(),
		HasPrevious: c.page > 1,
		HasNext:     c.page < total,
	}
}
