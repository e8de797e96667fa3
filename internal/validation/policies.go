package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/csg33k/roster-admin/internal/domain"
)

// DefaultCorporateDomain is the mail domain the add dialog accepts.
const DefaultCorporateDomain = "optum.com"

type editForm struct {
	ResourceName  string `form:"resource_name"  validate:"notblank"`
	EmailID       string `form:"email_id"       validate:"notblank,loose_email"`
	JobTitle      string `form:"job_title"      validate:"notblank"`
	HireDate      string `form:"hire_date"      validate:"required"`
	ContactNumber string `form:"contact_number" validate:"notblank"`
}

var editMessages = map[string]string{
	"resource_name.notblank":  "Name is required",
	"email_id.notblank":       "Email is required",
	"email_id.loose_email":    "Email is invalid",
	"job_title.notblank":      "Job title is required",
	"hire_date.required":      "Hire date is required",
	"contact_number.notblank": "Contact number is required",
}

// EditPolicy is applied when an existing record is saved from the edit
// dialog: name, job title and contact number must be present, the email must
// look like an address and a hire date must be set.
type EditPolicy struct {
	v *validator.Validate
}

func NewEditPolicy() *EditPolicy {
	return &EditPolicy{v: newValidator()}
}

func (p *EditPolicy) Name() string { return "edit" }

func (p *EditPolicy) Validate(e domain.Employee) Errors {
	return collect(p.v.Struct(editForm{
		ResourceName:  e.ResourceName,
		EmailID:       e.EmailID,
		JobTitle:      e.JobTitle,
		HireDate:      e.HireDate,
		ContactNumber: e.ContactNumber,
	}), editMessages)
}

type addForm struct {
	EmpID         string `form:"emp_id"         validate:"notblank"`
	EmailID       string `form:"email_id"       validate:"corporate_email"`
	ContactNumber string `form:"contact_number" validate:"ten_digits"`
}

// AddPolicy gates the add dialogs: a ten digit contact number and an address
// on the corporate domain are required, plus an employee ID to key the
// record by.
type AddPolicy struct {
	v      *validator.Validate
	domain string
	msgs   map[string]string
}

func NewAddPolicy(corporateDomain string) *AddPolicy {
	corporateDomain = strings.TrimPrefix(strings.TrimSpace(corporateDomain), "@")
	if corporateDomain == "" {
		corporateDomain = DefaultCorporateDomain
	}
	re := regexp.MustCompile(`^[^\s@]+@` + regexp.QuoteMeta(corporateDomain) + `$`)

	v := newValidator()
	mustRegister(v, "corporate_email", func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})

	return &AddPolicy{
		v:      v,
		domain: corporateDomain,
		msgs: map[string]string{
			"emp_id.notblank":           "Employee ID is required",
			"email_id.corporate_email":  "Email must be an @" + corporateDomain + " address",
			"contact_number.ten_digits": "Contact number must be exactly 10 digits",
		},
	}
}

func (p *AddPolicy) Name() string { return "add" }

// Domain is the accepted mail domain.
func (p *AddPolicy) Domain() string { return p.domain }

func (p *AddPolicy) Validate(e domain.Employee) Errors {
	return collect(p.v.Struct(addForm{
		EmpID:         e.EmpID,
		EmailID:       e.EmailID,
		ContactNumber: e.ContactNumber,
	}), p.msgs)
}
