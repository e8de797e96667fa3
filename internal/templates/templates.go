// Package templates renders the roster screen. Markup lives in html/template
// sources; every entry point is exposed as a templ.Component so handlers
// render fragments and full pages the same way.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

var tmpl = template.Must(template.New("roster-admin").Funcs(template.FuncMap{
	"statusClass":   statusClass,
	"roleTypeClass": roleTypeClass,
	"dash":          dash,
	"pathEscape":    pathEscape,
}).Parse(layoutSrc + rosterSrc + modalSrc))

func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return tmpl.ExecuteTemplate(w, name, data)
	})
}

// Page is the full dashboard. modal may be nil; when set it is rendered
// open, which is how dialogs are served to clients without htmx.
func Page(v RosterView, modal templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := tmpl.ExecuteTemplate(w, "head", nil); err != nil {
			return err
		}
		v.CloseModal = false
		if err := Roster(v).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div id="modal">`); err != nil {
			return err
		}
		if modal != nil {
			if err := modal.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		return tmpl.ExecuteTemplate(w, "foot", nil)
	})
}

// Roster is the swappable #roster fragment: toolbar, filter bar, chips,
// table and pager.
func Roster(v RosterView) templ.Component { return component("roster", v) }

// EmployeeModal is the add or edit dialog.
func EmployeeModal(f Form) templ.Component { return component("form", f) }

// ImportModal is the add-multiple dialog.
func ImportModal(v ImportView) templ.Component { return component("import", v) }

// DeleteModal asks for confirmation before a record is removed.
func DeleteModal(v DeleteView) templ.Component { return component("delete", v) }

const layoutSrc = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Employee Details</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<script src="https://cdn.tailwindcss.com"></script>
<style>
  :root {
    --ink: #0d1117;
    --paper: #f7f5f2;
    --ledger: #e8e0cc;
    --accent: #c0392b;
    --accent2: #2c6e49;
    --brand: #ff612b;
    --muted: #6b5e4e;
    --rule: #b8a898;
  }
  * { box-sizing: border-box; }
  body {
    background: var(--paper);
    color: var(--ink);
    font-family: 'IBM Plex Sans', sans-serif;
    min-height: 100vh;
  }
  .mono { font-family: 'IBM Plex Mono', monospace; }
  .muted { color: var(--muted); }
  .logo {
    display: inline-flex; align-items: center; justify-content: center;
    width: 2.25rem; height: 2.25rem; border-radius: 9999px;
    background: var(--brand); color: white; font-weight: 600;
  }
  .card {
    background: rgba(255,255,255,0.85);
    border: 1px solid var(--ledger);
    border-left: 4px solid var(--ink);
  }
  .field-label {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.6rem;
    font-weight: 600;
    letter-spacing: 0.1em;
    text-transform: uppercase;
    color: var(--muted);
    display: block;
    margin-bottom: 2px;
  }
  input[type=text], input[type=date], input[type=email], input[type=tel],
  input[type=number], input[type=file], select {
    background: white;
    border: 1px solid var(--rule);
    border-bottom: 2px solid var(--ink);
    padding: 6px 8px;
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.85rem;
    width: 100%;
    outline: none;
  }
  input:focus, select:focus { border-bottom-color: var(--brand); }
  input[readonly] { background: var(--ledger); }
  .btn {
    font-family: 'IBM Plex Mono', monospace;
    font-weight: 600;
    font-size: 0.75rem;
    letter-spacing: 0.08em;
    padding: 6px 14px;
    border: 2px solid var(--ink);
    background: white;
    cursor: pointer;
    text-transform: uppercase;
    display: inline-block;
  }
  .btn:disabled { opacity: 0.4; cursor: not-allowed; }
  .btn-primary { background: var(--ink); color: white; }
  .btn-primary:hover { background: var(--brand); border-color: var(--brand); }
  .btn-danger { color: var(--accent); border-color: var(--accent); }
  .btn-danger:hover { background: var(--accent); color: white; }
  .btn-success { background: var(--accent2); color: white; border-color: var(--accent2); }
  .section-header {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.7rem;
    font-weight: 600;
    letter-spacing: 0.18em;
    text-transform: uppercase;
    color: var(--muted);
    border-bottom: 1px solid var(--rule);
    padding-bottom: 4px;
    margin-bottom: 16px;
  }
  .chip {
    display: inline-flex; align-items: center; gap: 6px;
    background: var(--ledger); padding: 2px 10px; border-radius: 9999px;
    font-size: 0.75rem;
  }
  .badge { padding: 2px 8px; border-radius: 9999px; font-size: 0.7rem; font-weight: 500; white-space: nowrap; }
  table.roster { width: 100%; font-size: 0.8rem; border-collapse: collapse; }
  table.roster th {
    text-align: left; white-space: nowrap; padding: 8px;
    font-family: 'IBM Plex Mono', monospace; font-size: 0.65rem;
    text-transform: uppercase; letter-spacing: 0.08em; color: var(--muted);
    border-bottom: 2px solid var(--ink);
  }
  table.roster td { padding: 6px 8px; white-space: nowrap; border-bottom: 1px solid var(--ledger); }
  tr.selected td { background: #fff4ef; }
  .empty { text-align: center; padding: 32px; color: var(--muted); }
  .error { color: var(--accent); font-size: 0.75rem; margin-top: 2px; }
  .has-error input, .has-error select { border-bottom-color: var(--accent); }
  .notice { border-left: 4px solid var(--accent2); background: #edf7f0; padding: 8px 12px; }
  .modal-backdrop {
    position: fixed; inset: 0; background: rgba(13,17,23,0.45);
    display: flex; align-items: flex-start; justify-content: center;
    padding: 48px 16px; overflow-y: auto; z-index: 50;
  }
  .modal { width: 100%; max-width: 56rem; padding: 24px; background: white; }
  .htmx-indicator { opacity: 0; transition: opacity 0.2s; }
  .htmx-request .htmx-indicator { opacity: 1; }
</style>
</head>
<body>
<header class="bg-white border-b" style="border-color: var(--ledger)">
  <div class="max-w-screen-2xl mx-auto px-6 py-3 flex items-center gap-3">
    <span class="logo">O</span>
    <h1 class="text-lg font-semibold">Employee Details</h1>
  </div>
</header>
<main class="max-w-screen-2xl mx-auto px-6 py-6">
{{end}}

{{define "foot"}}
</main>
<script>
  function closeModal() {
    document.getElementById('modal').innerHTML = '';
  }
  function addJobTitle(btn) {
    var box = btn.previousElementSibling;
    var input = document.createElement('input');
    input.type = 'text';
    input.name = box.dataset.repeat;
    box.appendChild(input);
    input.focus();
  }
  function markIndeterminate() {
    document.querySelectorAll('input[data-indeterminate]').forEach(function (el) {
      el.indeterminate = true;
    });
  }
  document.addEventListener('DOMContentLoaded', markIndeterminate);
  document.body.addEventListener('htmx:afterSettle', markIndeterminate);
  // Validation errors come back as 422 and are swapped into the open dialog.
  document.body.addEventListener('htmx:beforeSwap', function (evt) {
    if (evt.detail.xhr.status === 422) {
      evt.detail.shouldSwap = true;
      evt.detail.isError = false;
    }
  });
  document.addEventListener('keydown', function (evt) {
    if (evt.key === 'Escape') closeModal();
  });
</script>
</body>
</html>
{{end}}
`

const rosterSrc = `
{{define "roster"}}
<section id="roster" class="space-y-4">
  {{if .Notice}}<div class="notice mono text-sm" role="status">{{.Notice}}</div>{{end}}

  <div class="flex flex-wrap items-center gap-2">
    <a class="btn btn-primary" href="/employees/new" hx-get="/employees/new" hx-target="#modal">+ Add Employee</a>
    <a class="btn" href="/employees/import" hx-get="/employees/import" hx-target="#modal">Add Multiple</a>
    <a class="btn" href="/export/csv" download>Download CSV</a>
    <a class="btn" href="/export/pdf" download>Download PDF</a>
    <form class="ml-auto" action="/roster/admin" method="post" hx-post="/roster/admin" hx-target="#roster" hx-swap="outerHTML">
      <input type="hidden" name="admin" value="{{if .Admin}}false{{else}}true{{end}}">
      <button type="submit" class="btn{{if .Admin}} btn-success{{end}}" aria-pressed="{{.Admin}}">Admin {{if .Admin}}On{{else}}Off{{end}}</button>
    </form>
  </div>

  <div class="card p-4 space-y-3">
    <div class="flex flex-wrap items-end gap-3">
      <form class="flex flex-wrap items-end gap-3" action="/roster/filters" method="post"
            hx-post="/roster/filters" hx-target="#roster" hx-swap="outerHTML">
        <label class="w-40"><span class="field-label">Filter by</span>
          <select name="filter">
            {{range .FilterKeys}}<option value="{{.}}"{{if eq . $.FilterKey}} selected{{end}}>{{.}}</option>{{end}}
          </select>
        </label>
        <label class="w-64"><span class="field-label">Value</span>
          <input type="text" name="value" value="{{.FilterValue}}" list="filter-values" autocomplete="off">
          <datalist id="filter-values">{{range .FilterSuggestions}}<option value="{{.}}">{{end}}</datalist>
        </label>
        <button type="submit" class="btn btn-primary">Add Filter</button>
      </form>
      <form action="/roster/reset" method="post" hx-post="/roster/reset" hx-target="#roster" hx-swap="outerHTML">
        <button type="submit" class="btn">Reset</button>
      </form>
    </div>
    {{if .Chips}}
    <div class="flex flex-wrap gap-2" aria-label="Active filters">
      {{range .Chips}}
      <form action="/roster/filters/remove" method="post" hx-post="/roster/filters/remove" hx-target="#roster" hx-swap="outerHTML">
        <input type="hidden" name="chip" value="{{.}}">
        <span class="chip">{{.}}<button type="submit" aria-label="Remove {{.}}">&times;</button></span>
      </form>
      {{end}}
    </div>
    {{end}}
  </div>

  <div class="card overflow-x-auto">
    <table class="roster">
      <thead>
        <tr>
          {{if .Admin}}
          <th>
            <input type="checkbox" aria-label="Select all"
              {{if eq .SelectAll.String "checked"}}checked{{end}}
              {{if eq .SelectAll.String "indeterminate"}}data-indeterminate{{end}}
              hx-post="/roster/selection" hx-vals='{"selected": "{{if eq .SelectAll.String "checked"}}false{{else}}true{{end}}"}'
              hx-target="#roster" hx-swap="outerHTML">
          </th>
          {{end}}
          <th>PRJ Core Alignment</th>
          <th>Employee ID</th>
          <th>Name</th>
          <th>Core Alignment</th>
          <th>Core Team</th>
          <th>Job Title</th>
          <th>Role Type</th>
          <th>Status</th>
          <th>Location</th>
          <th>Email</th>
          <th>Hire Date</th>
          <th>Termination Date</th>
          <th>Vendor</th>
          <th>Contact Number</th>
          <th>Team Name</th>
          <th>Manager Name</th>
          <th>Secondary Team</th>
          <th>Modified</th>
          {{if .Admin}}<th>Actions</th>{{end}}
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr class="emp-row{{if .Selected}} selected{{end}}" data-emp-id="{{.EmpID}}">
          {{if $.Admin}}
          <td>
            <input type="checkbox" aria-label="Select {{.EmpID}}"{{if .Selected}} checked{{end}}
              hx-post="/roster/selection/{{pathEscape .EmpID}}" hx-target="#roster" hx-swap="outerHTML">
          </td>
          {{end}}
          <td>{{.PrjAlign}}</td>
          <td class="mono">{{.EmpID}}</td>
          <td class="font-medium">{{.ResourceName}}</td>
          <td>{{.CoreAlignment}}</td>
          <td>{{.CoreTeam}}</td>
          <td>{{.JobTitle}}</td>
          <td><span class="badge {{roleTypeClass .RoleType}}">{{.RoleType}}</span></td>
          <td><span class="badge {{statusClass .Status}}">{{.Status}}</span></td>
          <td>{{.BaseLocation}}</td>
          <td><a class="underline" href="mailto:{{.EmailID}}">{{.EmailID}}</a></td>
          <td class="mono">{{.HireDate}}</td>
          <td class="mono">{{dash .TermDate}}</td>
          <td>{{.Vendor}}</td>
          <td><a href="tel:{{.ContactNumber}}">{{.ContactNumber}}</a></td>
          <td>{{.TeamName}}</td>
          <td>{{.ManagerName}}</td>
          <td>{{.SecondaryTeam}}</td>
          <td>{{.ModifiedBy}}<div class="text-xs muted mono">{{.ModifiedAt}}</div></td>
          {{if $.Admin}}
          <td class="space-x-1">
            <a class="btn" href="/employees/{{pathEscape .EmpID}}/edit" hx-get="/employees/{{pathEscape .EmpID}}/edit" hx-target="#modal">Edit</a>
            <a class="btn btn-danger" href="/employees/{{pathEscape .EmpID}}/delete" hx-get="/employees/{{pathEscape .EmpID}}/delete" hx-target="#modal">Delete</a>
          </td>
          {{end}}
        </tr>
        {{else}}
        <tr><td class="empty" colspan="{{if $.Admin}}20{{else}}18{{end}}">No employees found</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div class="flex flex-wrap items-center justify-between gap-3 text-sm">
    <div>
      <span id="displaying">Displaying {{len .Rows}} employees ({{.Selected}} selected)</span>
      <span class="muted mono ml-3" id="total">Total records: {{.Total}}</span>
    </div>
    <div class="flex flex-wrap items-center gap-2">
      <form class="flex items-center gap-2" action="/roster/page-size" method="post"
            hx-post="/roster/page-size" hx-trigger="change" hx-target="#roster" hx-swap="outerHTML">
        <label class="field-label" for="page-size">Entries per page</label>
        <select id="page-size" name="size" class="w-20">
          {{range .PageSizes}}<option value="{{.}}"{{if eq . $.PageSize}} selected{{end}}>{{.}}</option>{{end}}
        </select>
        <noscript><button type="submit" class="btn">Apply</button></noscript>
      </form>
      <form action="/roster/previous" method="post" hx-post="/roster/previous" hx-target="#roster" hx-swap="outerHTML">
        <button type="submit" class="btn"{{if not .HasPrevious}} disabled{{end}}>Previous</button>
      </form>
      <span id="page-of" class="mono">Displaying Page {{.Page}} of {{.TotalPages}}</span>
      <form action="/roster/next" method="post" hx-post="/roster/next" hx-target="#roster" hx-swap="outerHTML">
        <button type="submit" class="btn"{{if not .HasNext}} disabled{{end}}>Next</button>
      </form>
      <form class="flex items-center gap-2" action="/roster/page" method="post"
            hx-post="/roster/page" hx-target="#roster" hx-swap="outerHTML">
        <label class="field-label" for="go-to-page">Go to page</label>
        <input id="go-to-page" type="number" name="page" min="1" max="{{.TotalPages}}" value="{{.GoToPage}}" class="w-20">
        <button type="submit" class="btn">Go</button>
      </form>
    </div>
  </div>
</section>
{{if .CloseModal}}<div id="modal" hx-swap-oob="true"></div>{{end}}
{{end}}
`

const modalSrc = `
{{define "form"}}
<div class="modal-backdrop" role="dialog" aria-modal="true" aria-labelledby="modal-title">
  <div class="modal card">
    <div class="section-header" id="modal-title">{{.Title}}</div>
    {{if .Error}}<p class="error" role="alert">{{.Error}}</p>{{end}}
    {{if eq .Verb "hx-put"}}
    <form novalidate action="{{.Action}}" method="post" hx-put="{{.Action}}" hx-target="#roster" hx-swap="outerHTML">
    {{else}}
    <form novalidate action="{{.Action}}" method="post" hx-post="{{.Action}}" hx-target="#roster" hx-swap="outerHTML">
    {{end}}
      <div class="grid grid-cols-1 md:grid-cols-2 gap-3">
        {{range .Fields}}
        <div class="field{{if .Error}} has-error{{end}}" data-field="{{.Key}}">
          <label class="field-label" for="f-{{.Key}}">{{.Label}}{{if .Required}} *{{end}}</label>
          {{if eq .Type "select"}}
          <select id="f-{{.Key}}" name="{{.Key}}">
            <option value="">Select</option>
            {{$v := .Value}}{{range .Options}}<option value="{{.}}"{{if eq . $v}} selected{{end}}>{{.}}</option>{{end}}
          </select>
          {{else if .Values}}
          <div class="space-y-1" data-repeat="{{.Key}}">
            {{$k := .Key}}{{range $i, $v := .Values}}<input type="text" name="{{$k}}" value="{{$v}}"{{if not $i}} id="f-{{$k}}"{{end}}>{{end}}
          </div>
          <button type="button" class="btn mt-1" onclick="addJobTitle(this)">+ Add another</button>
          {{else}}
          <input id="f-{{.Key}}" type="{{.Type}}" name="{{.Key}}" value="{{.Value}}"{{if .ReadOnly}} readonly{{end}}>
          {{end}}
          {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
        </div>
        {{end}}
      </div>
      <div class="flex justify-end gap-2 mt-6">
        <button type="button" class="btn" onclick="closeModal()">Cancel</button>
        <button type="submit" class="btn btn-primary">{{.Submit}}</button>
      </div>
    </form>
  </div>
</div>
{{end}}

{{define "import"}}
<div class="modal-backdrop" role="dialog" aria-modal="true" aria-labelledby="modal-title">
  <div class="modal card">
    <div class="section-header" id="modal-title">Add Multiple Employees</div>
    <p class="text-sm mb-2">Upload a CSV file laid out like the CSV download. Every row must pass the add checks, otherwise nothing is imported.</p>
    <p class="mono text-xs muted mb-4 break-all">{{.Header}}</p>
    {{if .Error}}<p class="error" role="alert">{{.Error}}</p>{{end}}
    {{if .Rows}}
    <ul class="import-errors text-sm space-y-1 mb-4">
      {{range .Rows}}<li class="error"><span class="mono">Row {{.Row}}{{if .EmpID}} ({{.EmpID}}){{end}}</span>: {{range $i, $m := .Messages}}{{if $i}}; {{end}}{{$m}}{{end}}</li>{{end}}
    </ul>
    {{end}}
    <form action="/employees/import" method="post" enctype="multipart/form-data"
          hx-post="/employees/import" hx-encoding="multipart/form-data" hx-target="#roster" hx-swap="outerHTML">
      <input type="file" name="file" accept=".csv,text/csv">
      <div class="flex justify-end gap-2 mt-6">
        <button type="button" class="btn" onclick="closeModal()">Cancel</button>
        <button type="submit" class="btn btn-primary">Import</button>
      </div>
    </form>
  </div>
</div>
{{end}}

{{define "delete"}}
<div class="modal-backdrop" role="dialog" aria-modal="true" aria-labelledby="modal-title">
  <div class="modal card">
    <div class="section-header" id="modal-title">Delete Employee</div>
    <p class="confirm">Are you sure you want to delete {{.Name}}? This action cannot be undone.</p>
    <form action="/employees/{{pathEscape .EmpID}}/delete" method="post"
          hx-delete="/employees/{{pathEscape .EmpID}}" hx-target="#roster" hx-swap="outerHTML">
      <div class="flex justify-end gap-2 mt-6">
        <button type="button" class="btn" onclick="closeModal()">Cancel</button>
        <button type="submit" class="btn btn-danger">Delete</button>
      </div>
    </form>
  </div>
</div>
{{end}}
`
