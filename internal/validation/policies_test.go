package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamathecxder/randomail"

	"github.com/csg33k/roster-admin/internal/domain"
	"github.com/csg33k/roster-admin/internal/validation"
)

func validEmployee() domain.Employee {
	return domain.Employee{
		EmpID:         "E2001",
		ResourceName:  "Priya Natarajan",
		JobTitle:      "QA Engineer",
		EmailID:       "priya.natarajan@optum.com",
		HireDate:      "2022-08-01",
		ContactNumber: "5550001111",
	}
}

func TestEditPolicy_Valid(t *testing.T) {
	t.Parallel()

	p := validation.NewEditPolicy()
	assert.Empty(t, p.Validate(validEmployee()))
	assert.Equal(t, "edit", p.Name())
}

func TestEditPolicy_RequiredFields(t *testing.T) {
	t.Parallel()

	p := validation.NewEditPolicy()
	e := validEmployee()
	e.ResourceName = "   "
	e.EmailID = ""
	e.JobTitle = ""
	e.HireDate = ""
	e.ContactNumber = " "

	errs := p.Validate(e)

	assert.Equal(t, validation.Errors{
		"resource_name":  "Name is required",
		"email_id":       "Email is required",
		"job_title":      "Job title is required",
		"hire_date":      "Hire date is required",
		"contact_number": "Contact number is required",
	}, errs)
}

func TestEditPolicy_EmailShape(t *testing.T) {
	t.Parallel()

	p := validation.NewEditPolicy()
	for _, email := range []string{"plainaddress", "a@b", "@nodomain", "user@domain"} {
		e := validEmployee()
		e.EmailID = email
		assert.Equal(t, validation.Errors{"email_id": "Email is invalid"}, p.Validate(e), email)
	}

	e := validEmployee()
	e.EmailID = randomail.GenerateRandomEmail()
	assert.Empty(t, p.Validate(e), "any address shape is accepted on edit: %s", e.EmailID)
}

func TestEditPolicy_ContactNumberOnlyNeedsToBePresent(t *testing.T) {
	t.Parallel()

	e := validEmployee()
	e.ContactNumber = "+1 (555) 010-9999 ext. 7"
	assert.Empty(t, validation.NewEditPolicy().Validate(e))
}

func TestAddPolicy_Valid(t *testing.T) {
	t.Parallel()

	p := validation.NewAddPolicy("")
	assert.Equal(t, validation.DefaultCorporateDomain, p.Domain())
	assert.Equal(t, "add", p.Name())
	assert.Empty(t, p.Validate(validEmployee()))
}

func TestAddPolicy_RejectsForeignDomain(t *testing.T) {
	t.Parallel()

	p := validation.NewAddPolicy("optum.com")
	e := validEmployee()
	e.EmailID = randomail.GenerateRandomEmail()

	errs := p.Validate(e)

	require.Contains(t, errs, "email_id")
	assert.Equal(t, "Email must be an @optum.com address", errs["email_id"])
}

func TestAddPolicy_ContactNumber(t *testing.T) {
	t.Parallel()

	p := validation.NewAddPolicy("optum.com")
	for _, phone := range []string{"", "555000111", "55500011112", "555-000-1111", "555000111a"} {
		e := validEmployee()
		e.ContactNumber = phone
		assert.Equal(t,
			validation.Errors{"contact_number": "Contact number must be exactly 10 digits"},
			p.Validate(e), "phone %q", phone)
	}
}

func TestAddPolicy_EmailEdgeCases(t *testing.T) {
	t.Parallel()

	p := validation.NewAddPolicy("@optum.com")
	assert.Equal(t, "optum.com", p.Domain())

	for _, email := range []string{
		"first last@optum.com",
		"x@y@optum.com",
		"user@optumXcom",
		"user@optum.com.evil.io",
		"@optum.com",
	} {
		e := validEmployee()
		e.EmailID = email
		assert.Contains(t, p.Validate(e), "email_id", email)
	}
}

func TestAddPolicy_RequiresEmployeeID(t *testing.T) {
	t.Parallel()

	e := validEmployee()
	e.EmpID = " "
	assert.Equal(t,
		validation.Errors{"emp_id": "Employee ID is required"},
		validation.NewAddPolicy("optum.com").Validate(e))
}

func TestPoliciesAreIndependent(t *testing.T) {
	t.Parallel()

	// Passes the edit policy but not the add policy.
	e := validEmployee()
	e.EmailID = "someone@example.org"
	e.ContactNumber = "12345"
	assert.Empty(t, validation.NewEditPolicy().Validate(e))
	assert.Len(t, validation.NewAddPolicy("optum.com").Validate(e), 2)

	// Passes the add policy but not the edit policy.
	e = validEmployee()
	e.ResourceName = ""
	e.HireDate = ""
	assert.Empty(t, validation.NewAddPolicy("optum.com").Validate(e))
	assert.Len(t, validation.NewEditPolicy().Validate(e), 2)
}

func TestErrors_Error(t *testing.T) {
	t.Parallel()

	errs := validation.Errors{"b": "second", "a": "first"}
	assert.Equal(t, "a: first; b: second", errs.Error())
}
