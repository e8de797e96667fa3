package handlers

import (
	"net/http"
	"strings"

	"github.com/csg33k/roster-admin/internal/domain"
	"github.com/csg33k/roster-admin/internal/templates"
	"github.com/csg33k/roster-admin/internal/validation"
)

// employeeFromForm reads the add dialog. Job titles may be submitted as
// several inputs and are joined into one value.
func employeeFromForm(r *http.Request) domain.Employee {
	var e domain.Employee
	for _, f := range domain.Fields {
		switch f.Key {
		case "modified_at":
		case "job_title":
			f.Set(&e, templates.JoinJobTitles(r.PostForm[f.Key]))
		default:
			f.Set(&e, r.PostFormValue(f.Key))
		}
	}
	return e
}

// patchFromForm collects the editable fields that were actually submitted.
func patchFromForm(r *http.Request) domain.Patch {
	patch := domain.Patch{}
	for _, f := range domain.Fields {
		if !f.Editable {
			continue
		}
		if vs, ok := r.PostForm[f.Key]; ok && len(vs) > 0 {
			patch[f.Key] = vs[0]
		}
	}
	return patch
}

// messages lists validation messages in column order.
func messages(errs validation.Errors) []string {
	out := make([]string, 0, len(errs))
	for _, f := range domain.Fields {
		if msg, ok := errs[f.Key]; ok {
			out = append(out, msg)
		}
	}
	return out
}

func importView() templates.ImportView {
	return templates.ImportView{Header: strings.Join(domain.Labels(), ",")}
}
