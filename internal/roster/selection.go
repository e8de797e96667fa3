package roster

import "slices"

// CheckState is the display state of the "select all" checkbox.
type CheckState int

const (
	Unchecked CheckState = iota
	Indeterminate
	Checked
)

func (s CheckState) String() string {
	switch s {
	case Indeterminate:
		return "indeterminate"
	case Checked:
		return "checked"
	default:
		return "unchecked"
	}
}

// Selection is an insertion-ordered set of employee IDs.
type Selection struct {
	order []string
	index map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{index: make(map[string]struct{})}
}

// Toggle adds id when absent and removes it when present.
func (s *Selection) Toggle(id string) {
	if s.Has(id) {
		s.Remove(id)
		return
	}
	s.add(id)
}

// SelectAll replaces the selection with ids when selected is true and
// clears it otherwise.
func (s *Selection) SelectAll(ids []string, selected bool) {
	s.order = s.order[:0]
	clear(s.index)
	if !selected {
		return
	}
	for _, id := range ids {
		s.add(id)
	}
}

// Remove drops id from the selection. Unknown ids are ignored.
func (s *Selection) Remove(id string) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
}

// Retain drops every id that is not in ids.
func (s *Selection) Retain(ids []string) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	for _, id := range slices.Clone(s.order) {
		if _, ok := keep[id]; !ok {
			s.Remove(id)
		}
	}
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len is the number of selected ids.
func (s *Selection) Len() int {
	return len(s.order)
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	return slices.Clone(s.order)
}

// CheckState derives the "select all" state against a list of total rows.
func (s *Selection) CheckState(total int) CheckState {
	switch n := s.Len(); {
	case n == 0:
		return Unchecked
	case n < total:
		return Indeterminate
	default:
		return Checked
	}
}

func (s *Selection) add(id string) {
	if s.Has(id) {
		return
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}
