package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/roster-admin/internal/domain"
	"github.com/csg33k/roster-admin/internal/fixtures"
	"github.com/csg33k/roster-admin/internal/roster"
	"github.com/csg33k/roster-admin/internal/templates"
	"github.com/csg33k/roster-admin/internal/validation"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func snapshot(t *testing.T, admin bool, size int, cmds ...func(c *roster.Controller)) roster.Snapshot {
	t.Helper()
	c := roster.NewController(size, admin)
	c.Load(fixtures.Employees())
	for _, cmd := range cmds {
		cmd(c)
	}
	return c.Snapshot()
}

func TestRoster_TableAndPager(t *testing.T) {
	t.Parallel()

	doc := render(t, templates.Roster(templates.RosterView{Snapshot: snapshot(t, false, 4)}))

	assert.Equal(t, 1, doc.Find("section#roster").Length())
	assert.Equal(t, 4, doc.Find("tbody tr.emp-row").Length())
	assert.Equal(t, "EMP001", doc.Find("tbody tr.emp-row").First().AttrOr("data-emp-id", ""))
	assert.Equal(t, "Displaying Page 1 of 3", doc.Find("#page-of").Text())
	assert.Equal(t, "Displaying 4 employees (0 selected)", doc.Find("#displaying").Text())
	assert.Equal(t, "Total records: 12", doc.Find("#total").Text())

	prev := doc.Find(`form[hx-post="/roster/previous"] button`)
	_, disabled := prev.Attr("disabled")
	assert.True(t, disabled, "previous is disabled on the first page")
	next := doc.Find(`form[hx-post="/roster/next"] button`)
	_, disabled = next.Attr("disabled")
	assert.False(t, disabled)

	assert.Equal(t, "4", doc.Find(`select[name="size"] option[selected]`).AttrOr("value", ""))
	assert.Equal(t, 0, doc.Find(`input[type="checkbox"]`).Length(), "no checkboxes outside admin mode")
	assert.Equal(t, 0, doc.Find(`#modal`).Length())
}

func TestRoster_BadgesAndTermDate(t *testing.T) {
	t.Parallel()

	doc := render(t, templates.Roster(templates.RosterView{Snapshot: snapshot(t, false, 50)}))

	row := doc.Find(`tr[data-emp-id="EMP004"]`)
	require.Equal(t, 1, row.Length())
	assert.True(t, row.Find("span.badge.bg-red-100").Length() == 1, "inactive status is red")
	assert.NotEqual(t, "-", strings.TrimSpace(row.Find("td").Eq(11).Text()))

	active := doc.Find(`tr[data-emp-id="EMP001"]`)
	assert.Equal(t, 1, active.Find("span.badge.bg-green-100.text-green-800").Length())
	assert.Equal(t, "-", strings.TrimSpace(active.Find("td").Eq(11).Text()))
	assert.Equal(t, "mailto:"+fixtures.Employees()[0].EmailID, active.Find(`a[href^="mailto:"]`).AttrOr("href", ""))

	open := doc.Find(`tr[data-emp-id="EMP007"]`)
	assert.Equal(t, 1, open.Find("span.badge.bg-yellow-100").Length())
}

func TestRoster_AdminControls(t *testing.T) {
	t.Parallel()

	snap := snapshot(t, true, 4, func(c *roster.Controller) { c.Toggle("EMP002") })
	doc := render(t, templates.Roster(templates.RosterView{Snapshot: snap}))

	all := doc.Find(`input[aria-label="Select all"]`)
	require.Equal(t, 1, all.Length())
	_, indeterminate := all.Attr("data-indeterminate")
	assert.True(t, indeterminate)
	assert.Contains(t, all.AttrOr("hx-vals", ""), `"true"`)

	row := doc.Find(`tr[data-emp-id="EMP002"]`)
	assert.True(t, row.HasClass("selected"))
	_, checked := row.Find(`input[type="checkbox"]`).Attr("checked")
	assert.True(t, checked)
	assert.Equal(t, "/roster/selection/EMP002", row.Find(`input[type="checkbox"]`).AttrOr("hx-post", ""))
	assert.Equal(t, "/employees/EMP002/edit", row.Find("a.btn").First().AttrOr("hx-get", ""))
	assert.Equal(t, "/employees/EMP002/delete", row.Find("a.btn-danger").AttrOr("hx-get", ""))
	assert.Equal(t, "Displaying 4 employees (1 selected)", doc.Find("#displaying").Text())
}

func TestRoster_SelectAllCheckedOffersClear(t *testing.T) {
	t.Parallel()

	snap := snapshot(t, true, 4, func(c *roster.Controller) { c.SelectAll(true) })
	doc := render(t, templates.Roster(templates.RosterView{Snapshot: snap}))

	all := doc.Find(`input[aria-label="Select all"]`)
	_, checked := all.Attr("checked")
	assert.True(t, checked)
	assert.Contains(t, all.AttrOr("hx-vals", ""), `"false"`)
}

func TestRoster_EmptyListAndChips(t *testing.T) {
	t.Parallel()

	c := roster.NewController(roster.DefaultPageSize, false)
	c.AddFilterChip(roster.FilterTeam, "Payments")
	doc := render(t, templates.Roster(templates.RosterView{Snapshot: c.Snapshot(), CloseModal: true}))

	assert.Equal(t, "No employees found", strings.TrimSpace(doc.Find("td.empty").Text()))
	assert.Equal(t, "Team - Payments", doc.Find(`input[name="chip"]`).AttrOr("value", ""))
	assert.Equal(t, "true", doc.Find("#modal").AttrOr("hx-swap-oob", ""))
}

func TestRoster_EscapesIDsInURLs(t *testing.T) {
	t.Parallel()

	c := roster.NewController(4, true)
	c.Load([]domain.Employee{{EmpID: "A/1 b"}})
	doc := render(t, templates.Roster(templates.RosterView{Snapshot: c.Snapshot()}))

	assert.Equal(t, "/roster/selection/A%2F1%20b", doc.Find(`tbody input[type="checkbox"]`).AttrOr("hx-post", ""))
}

func TestPage_WrapsRosterAndModal(t *testing.T) {
	t.Parallel()

	view := templates.RosterView{Snapshot: snapshot(t, false, 4), CloseModal: true}
	modal := templates.DeleteModal(templates.DeleteView{EmpID: "EMP001", Name: "John Smith"})
	doc := render(t, templates.Page(view, modal))

	assert.Equal(t, "Employee Details", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("#roster").Length())
	require.Equal(t, 1, doc.Find("#modal").Length())
	_, oob := doc.Find("#modal").Attr("hx-swap-oob")
	assert.False(t, oob)
	assert.Equal(t,
		"Are you sure you want to delete John Smith? This action cannot be undone.",
		doc.Find("#modal p.confirm").Text())
	assert.Equal(t, "/employees/EMP001", doc.Find(`#modal form`).AttrOr("hx-delete", ""))
}

func TestEmployeeModal_Edit(t *testing.T) {
	t.Parallel()

	e := fixtures.Employees()[0]
	e.Vendor = "Legacy Vendor"
	doc := render(t, templates.EmployeeModal(templates.EditForm(e, validation.Errors{"email_id": "Email is invalid"})))

	form := doc.Find("form")
	assert.Equal(t, "/employees/EMP001", form.AttrOr("hx-put", ""))

	id := doc.Find(`input[name="emp_id"]`)
	_, readonly := id.Attr("readonly")
	assert.True(t, readonly)
	assert.Equal(t, 0, doc.Find(`[name="modified_at"]`).Length())
	assert.Equal(t, "date", doc.Find(`input[name="hire_date"]`).AttrOr("type", ""))
	assert.Equal(t, "tel", doc.Find(`input[name="contact_number"]`).AttrOr("type", ""))
	assert.Equal(t, "Legacy Vendor", doc.Find(`select[name="vendor"] option[selected]`).AttrOr("value", ""))
	assert.Equal(t, "Email is invalid", doc.Find(`[data-field="email_id"] p.error`).Text())
}

func TestEmployeeModal_Add(t *testing.T) {
	t.Parallel()

	form := templates.AddForm(domain.Employee{}, []string{"Go", "SQL"}, nil, "optum.com")
	doc := render(t, templates.EmployeeModal(form))

	assert.Equal(t, "/employees", doc.Find("form").AttrOr("hx-post", ""))
	assert.Equal(t, 2, doc.Find(`input[name="job_title"]`).Length())
	assert.Equal(t, 0, doc.Find(`[name="modified_by"]`).Length())

	var statuses []string
	doc.Find(`select[name="status"] option`).Each(func(_ int, s *goquery.Selection) {
		if v := s.AttrOr("value", ""); v != "" {
			statuses = append(statuses, v)
		}
	})
	assert.Equal(t, domain.AddStatusOptions, statuses)
}

func TestImportModal_ListsRowErrors(t *testing.T) {
	t.Parallel()

	doc := render(t, templates.ImportModal(templates.ImportView{
		Rows: []templates.ImportRow{{Row: 2, EmpID: "E2", Messages: []string{"a", "b"}}},
	}))

	assert.Equal(t, "Row 2 (E2): a; b", doc.Find("ul.import-errors li").Text())
	assert.Equal(t, "multipart/form-data", doc.Find("form").AttrOr("hx-encoding", ""))
}

func TestJoinJobTitles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Go, SQL", templates.JoinJobTitles([]string{" Go ", "", "  ", "SQL"}))
	assert.Equal(t, "", templates.JoinJobTitles(nil))
}
