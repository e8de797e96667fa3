package service

import (
	"fmt"
	"strings"

	"github.com/csg33k/roster-admin/internal/validation"
)

// RowError reports the add-policy failures of one imported row.
// Row is 1-based and does not count the header.
type RowError struct {
	Row    int
	EmpID  string
	Errors validation.Errors
}

// ImportErrors lists every rejected row of an import.
type ImportErrors []RowError

func (e ImportErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, r := range e {
		parts = append(parts, fmt.Sprintf("row %d (%s): %s", r.Row, r.EmpID, r.Errors.Error()))
	}
	return strings.Join(parts, "; ")
}
