package domain

import "strings"

// DateLayout is the calendar-date format used for hire, termination and
// modification dates.
const DateLayout = "2006-01-02"

// Employee is one roster record. Every attribute is kept as the string the
// admin screen shows and edits.
type Employee struct {
	EmpID         string
	ResourceName  string
	PrjAlign      string
	CoreAlignment string
	CoreTeam      string
	JobTitle      string
	RoleType      string
	Status        string // Active, Inactive, Open (Term from the add dialog)
	BaseLocation  string
	EmailID       string
	HireDate      string
	TermDate      string // empty while still employed
	Vendor        string
	ContactNumber string
	TeamName      string
	ManagerName   string
	SecondaryTeam string
	ModifiedBy    string
	ModifiedAt    string
}

// Patch carries the submitted form values of an edit, keyed by field key.
// Keys that are absent leave the corresponding attribute untouched.
type Patch map[string]string

// Apply returns a copy of e with every known, editable key of p applied.
// The employee ID and the modification timestamp cannot be patched.
func (e Employee) Apply(p Patch) Employee {
	out := e
	for key, value := range p {
		f, ok := FieldByKey(key)
		if !ok || !f.Editable {
			continue
		}
		f.set(&out, value)
	}
	return out
}

// IsTerminated reports whether a termination date has been recorded.
func (e Employee) IsTerminated() bool {
	return strings.TrimSpace(e.TermDate) != ""
}

// IDs returns the employee IDs of list in order.
func IDs(list []Employee) []string {
	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.EmpID)
	}
	return ids
}
