package domain

// Field describes one attribute of an Employee: its form key, its column
// label in exports and how to read and write it.
type Field struct {
	Key      string
	Label    string
	Editable bool

	get func(*Employee) string
	set func(*Employee, string)
}

// Value returns the attribute of e described by f.
func (f Field) Value(e Employee) string {
	return f.get(&e)
}

// Set writes value into the attribute of e described by f.
func (f Field) Set(e *Employee, value string) {
	f.set(e, value)
}

// Fields lists every employee attribute in export column order.
var Fields = []Field{
	{Key: "prj_align", Label: "PRJ core alignment", Editable: true,
		get: func(e *Employee) string { return e.PrjAlign }, set: func(e *Employee, v string) { e.PrjAlign = v }},
	{Key: "emp_id", Label: "Employee ID",
		get: func(e *Employee) string { return e.EmpID }, set: func(e *Employee, v string) { e.EmpID = v }},
	{Key: "resource_name", Label: "Name", Editable: true,
		get: func(e *Employee) string { return e.ResourceName }, set: func(e *Employee, v string) { e.ResourceName = v }},
	{Key: "core_alignment", Label: "Core alignment", Editable: true,
		get: func(e *Employee) string { return e.CoreAlignment }, set: func(e *Employee, v string) { e.CoreAlignment = v }},
	{Key: "core_team", Label: "Core Team", Editable: true,
		get: func(e *Employee) string { return e.CoreTeam }, set: func(e *Employee, v string) { e.CoreTeam = v }},
	{Key: "job_title", Label: "Job Title", Editable: true,
		get: func(e *Employee) string { return e.JobTitle }, set: func(e *Employee, v string) { e.JobTitle = v }},
	{Key: "role_type", Label: "Role type", Editable: true,
		get: func(e *Employee) string { return e.RoleType }, set: func(e *Employee, v string) { e.RoleType = v }},
	{Key: "status", Label: "Status", Editable: true,
		get: func(e *Employee) string { return e.Status }, set: func(e *Employee, v string) { e.Status = v }},
	{Key: "base_location", Label: "Location", Editable: true,
		get: func(e *Employee) string { return e.BaseLocation }, set: func(e *Employee, v string) { e.BaseLocation = v }},
	{Key: "email_id", Label: "Email", Editable: true,
		get: func(e *Employee) string { return e.EmailID }, set: func(e *Employee, v string) { e.EmailID = v }},
	{Key: "hire_date", Label: "Hire Date", Editable: true,
		get: func(e *Employee) string { return e.HireDate }, set: func(e *Employee, v string) { e.HireDate = v }},
	{Key: "term_date", Label: "Termination Date", Editable: true,
		get: func(e *Employee) string { return e.TermDate }, set: func(e *Employee, v string) { e.TermDate = v }},
	{Key: "vendor", Label: "Vendor", Editable: true,
		get: func(e *Employee) string { return e.Vendor }, set: func(e *Employee, v string) { e.Vendor = v }},
	{Key: "contact_number", Label: "Contact Number", Editable: true,
		get: func(e *Employee) string { return e.ContactNumber }, set: func(e *Employee, v string) { e.ContactNumber = v }},
	{Key: "team_name", Label: "Team Name", Editable: true,
		get: func(e *Employee) string { return e.TeamName }, set: func(e *Employee, v string) { e.TeamName = v }},
	{Key: "manager_name", Label: "Manager Name", Editable: true,
		get: func(e *Employee) string { return e.ManagerName }, set: func(e *Employee, v string) { e.ManagerName = v }},
	{Key: "secondary_team", Label: "Secondary Team", Editable: true,
		get: func(e *Employee) string { return e.SecondaryTeam }, set: func(e *Employee, v string) { e.SecondaryTeam = v }},
	{Key: "modified_by", Label: "Modified By", Editable: true,
		get: func(e *Employee) string { return e.ModifiedBy }, set: func(e *Employee, v string) { e.ModifiedBy = v }},
	{Key: "modified_at", Label: "Modified at",
		get: func(e *Employee) string { return e.ModifiedAt }, set: func(e *Employee, v string) { e.ModifiedAt = v }},
}

// FieldByKey looks up a field by its form key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Labels returns the export header labels in column order.
func Labels() []string {
	labels := make([]string, len(Fields))
	for i, f := range Fields {
		labels[i] = f.Label
	}
	return labels
}

// Values returns every attribute of e in column order.
func Values(e Employee) []string {
	values := make([]string, len(Fields))
	for i, f := range Fields {
		values[i] = f.get(&e)
	}
	return values
}
