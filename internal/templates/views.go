package templates

import (
	"strings"

	"github.com/csg33k/roster-admin/internal/domain"
	"github.com/csg33k/roster-admin/internal/roster"
	"github.com/csg33k/roster-admin/internal/validation"
)

// RosterView is what the roster fragment renders.
type RosterView struct {
	roster.Snapshot

	// Notice is a one-line message shown above the table, e.g. after an import.
	Notice string
	// CloseModal empties the modal container out of band.
	CloseModal bool
	// GoToPage refills the "go to page" box after a rejected jump.
	GoToPage string
}

func (v RosterView) PageSizes() []int               { return roster.PageSizes }
func (v RosterView) FilterKeys() []roster.FilterKey { return roster.FilterKeys }

// FilterSuggestions feeds the datalist of the filter value input.
func (v RosterView) FilterSuggestions() []string {
	switch v.FilterKey {
	case roster.FilterTeam:
		return domain.TeamNameOptions
	case roster.FilterManager:
		return domain.ManagerOptions
	default:
		return nil
	}
}

// FormField is one labelled control of an employee dialog.
type FormField struct {
	Key      string
	Label    string
	Type     string // text, date, email, tel or select
	Value    string
	Values   []string // repeated text inputs sharing Key
	Options  []string
	Required bool
	ReadOnly bool
	Error    string
}

// Form is the add or edit employee dialog.
type Form struct {
	Title  string
	Action string
	Verb   string // hx-post or hx-put
	Submit string
	Fields []FormField
	Error  string
}

var inputTypes = map[string]string{
	"hire_date":      "date",
	"term_date":      "date",
	"email_id":       "email",
	"contact_number": "tel",
}

var selectOptions = map[string][]string{
	"prj_align":      domain.ProjectOptions,
	"core_alignment": domain.CoreAlignmentOptions,
	"core_team":      domain.CoreTeamOptions,
	"role_type":      domain.RoleTypeOptions,
	"status":         domain.StatusOptions,
	"vendor":         domain.VendorOptions,
	"team_name":      domain.TeamNameOptions,
	"manager_name":   domain.ManagerOptions,
	"secondary_team": domain.SecondaryTeamOptions,
}

var editRequired = map[string]bool{
	"resource_name":  true,
	"email_id":       true,
	"job_title":      true,
	"hire_date":      true,
	"contact_number": true,
}

var addRequired = map[string]bool{
	"emp_id":         true,
	"email_id":       true,
	"contact_number": true,
}

func field(f domain.Field, e domain.Employee, errs validation.Errors) FormField {
	ff := FormField{
		Key:   f.Key,
		Label: f.Label,
		Type:  "text",
		Value: f.Value(e),
		Error: errs[f.Key],
	}
	if t, ok := inputTypes[f.Key]; ok {
		ff.Type = t
	}
	if opts, ok := selectOptions[f.Key]; ok {
		ff.Type = "select"
		ff.Options = withCurrent(opts, ff.Value)
	}
	return ff
}

// EditForm builds the edit dialog for e. The employee ID is shown but
// cannot be changed, and modified_at is stamped on save.
func EditForm(e domain.Employee, errs validation.Errors) Form {
	form := Form{
		Title:  "Edit Employee",
		Action: "/employees/" + pathEscape(e.EmpID),
		Verb:   "hx-put",
		Submit: "Save",
	}
	for _, f := range domain.Fields {
		switch {
		case f.Key == "emp_id":
			ff := field(f, e, errs)
			ff.ReadOnly = true
			form.Fields = append(form.Fields, ff)
		case f.Editable:
			ff := field(f, e, errs)
			ff.Required = editRequired[f.Key]
			form.Fields = append(form.Fields, ff)
		}
	}
	return form
}

// AddForm builds the add dialog. jobTitles are the individual "Job Title /
// Skill Set" rows; at least one empty row is always offered.
func AddForm(e domain.Employee, jobTitles []string, errs validation.Errors, corporateDomain string) Form {
	form := Form{
		Title:  "Add Employee",
		Action: "/employees",
		Verb:   "hx-post",
		Submit: "Add",
	}
	for _, f := range domain.Fields {
		if f.Key == "modified_by" || f.Key == "modified_at" {
			continue
		}
		ff := field(f, e, errs)
		ff.Required = addRequired[f.Key]
		switch f.Key {
		case "status":
			ff.Options = withCurrent(domain.AddStatusOptions, ff.Value)
		case "job_title":
			ff.Label = "Job Title / Skill Set"
			ff.Values = jobTitles
			if len(ff.Values) == 0 {
				ff.Values = []string{""}
			}
		case "email_id":
			ff.Label = "Email (@" + corporateDomain + ")"
		}
		form.Fields = append(form.Fields, ff)
	}
	return form
}

// JoinJobTitles trims the submitted job title rows, drops blank ones and
// joins the rest with ", ".
func JoinJobTitles(rows []string) string {
	kept := make([]string, 0, len(rows))
	for _, r := range rows {
		if r = strings.TrimSpace(r); r != "" {
			kept = append(kept, r)
		}
	}
	return strings.Join(kept, ", ")
}

// ImportView is the add-multiple dialog.
type ImportView struct {
	Error  string
	Rows   []ImportRow
	Header string
}

// ImportRow lists the problems of one rejected row.
type ImportRow struct {
	Row      int
	EmpID    string
	Messages []string
}

// DeleteView is the confirm-delete dialog.
type DeleteView struct {
	EmpID string
	Name  string
}
