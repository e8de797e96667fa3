package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"

	"github.com/csg33k/roster-admin/internal/domain"
	"github.com/csg33k/roster-admin/internal/lib/logger/sl"
	"github.com/csg33k/roster-admin/internal/roster"
	"github.com/csg33k/roster-admin/internal/service"
	"github.com/csg33k/roster-admin/internal/session"
	"github.com/csg33k/roster-admin/internal/templates"
	"github.com/csg33k/roster-admin/internal/validation"
)

// maxUpload bounds the size of an add-multiple upload.
const maxUpload = 5 << 20

type Handler struct {
	log             *slog.Logger
	roster          *service.Roster
	sessions        *session.Store
	corporateDomain string
}

func New(log *slog.Logger, svc *service.Roster, sessions *session.Store, corporateDomain string) *Handler {
	return &Handler{log: log, roster: svc, sessions: sessions, corporateDomain: corporateDomain}
}

// Routes builds the router. health and metrics are mounted when not nil.
func (h *Handler) Routes(health, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(h.log, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	if health != nil {
		r.Method(http.MethodGet, "/healthz", health)
	}
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Get("/", h.index)

	r.Route("/roster", func(r chi.Router) {
		r.Get("/", h.command(nil))
		r.Post("/page-size", h.command(setPageSize))
		r.Post("/filters", h.command(addFilter))
		r.Post("/filters/remove", h.command(removeFilter))
		r.Post("/reset", h.command(func(_ *http.Request, c *roster.Controller) { c.Reset() }))
		r.Post("/page", h.goToPage)
		r.Post("/next", h.command(func(_ *http.Request, c *roster.Controller) { c.NextPage() }))
		r.Post("/previous", h.command(func(_ *http.Request, c *roster.Controller) { c.PreviousPage() }))
		r.Post("/selection", h.command(selectAll))
		r.Post("/selection/{id}", h.command(func(r *http.Request, c *roster.Controller) { c.Toggle(empID(r)) }))
		r.Post("/admin", h.command(setAdmin))
	})

	r.Route("/employees", func(r chi.Router) {
		r.Get("/new", h.newEmployeeForm)
		r.Post("/", h.addEmployee)
		r.Get("/import", h.importForm)
		r.Post("/import", h.importEmployees)
		r.Get("/{id}/edit", h.editEmployeeForm)
		r.Put("/{id}", h.updateEmployee)
		r.Post("/{id}", h.updateEmployee)
		r.Get("/{id}/delete", h.confirmDelete)
		r.Delete("/{id}", h.deleteEmployee)
		r.Post("/{id}/delete", h.deleteEmployee)
	})

	r.Get("/export/{format}", h.export)
	return r
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.FromRequest(w, r)
	snap, err := h.roster.View(r.Context(), sess, nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render(w, r, templates.Page(templates.RosterView{Snapshot: snap}, nil))
}

// command applies fn to the caller's roster and answers with the updated
// fragment. Malformed input is left for fn to ignore.
func (h *Handler) command(fn func(r *http.Request, c *roster.Controller)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		sess := h.sessions.FromRequest(w, r)
		var cmd func(c *roster.Controller)
		if fn != nil {
			cmd = func(c *roster.Controller) { fn(r, c) }
		}
		snap, err := h.roster.View(r.Context(), sess, cmd)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.respond(w, r, templates.RosterView{Snapshot: snap})
	}
}

// goToPage clears the "go to page" box after a jump and keeps the typed
// value when the jump is rejected.
func (h *Handler) goToPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := r.FormValue("page")
	sess := h.sessions.FromRequest(w, r)
	var moved bool
	snap, err := h.roster.View(r.Context(), sess, func(c *roster.Controller) { moved = c.GoToPageInput(input) })
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v := templates.RosterView{Snapshot: snap}
	if !moved {
		v.GoToPage = input
	}
	h.respond(w, r, v)
}

func setPageSize(r *http.Request, c *roster.Controller) {
	if n, err := strconv.Atoi(r.FormValue("size")); err == nil {
		c.SetPageSize(n)
	}
}

func addFilter(r *http.Request, c *roster.Controller) {
	c.SetFilter(roster.ParseFilterKey(r.FormValue("filter")), r.FormValue("value"))
	c.AddFilter()
}

func removeFilter(r *http.Request, c *roster.Controller) {
	c.RemoveFilter(r.FormValue("chip"))
}

func selectAll(r *http.Request, c *roster.Controller) {
	if selected, err := strconv.ParseBool(r.FormValue("selected")); err == nil {
		c.SelectAll(selected)
	}
}

func setAdmin(r *http.Request, c *roster.Controller) {
	if admin, err := strconv.ParseBool(r.FormValue("admin")); err == nil {
		c.SetAdmin(admin)
	}
}

func (h *Handler) newEmployeeForm(w http.ResponseWriter, r *http.Request) {
	form := templates.AddForm(domain.Employee{}, nil, nil, h.corporateDomain)
	h.modal(w, r, http.StatusOK, templates.EmployeeModal(form))
}

func (h *Handler) addEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	e := employeeFromForm(r)
	sess := h.sessions.FromRequest(w, r)

	snap, err := h.roster.Add(r.Context(), sess, e)
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		form := templates.AddForm(e, r.PostForm["job_title"], verrs, h.corporateDomain)
		h.modal(w, r, http.StatusUnprocessableEntity, templates.EmployeeModal(form))
	case err != nil:
		h.fail(w, r, err)
	default:
		h.respond(w, r, templates.RosterView{
			Snapshot:   snap,
			Notice:     fmt.Sprintf("Employee %s added", e.EmpID),
			CloseModal: true,
		})
	}
}

func (h *Handler) importForm(w http.ResponseWriter, r *http.Request) {
	h.modal(w, r, http.StatusOK, templates.ImportModal(importView()))
}

func (h *Handler) importEmployees(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	view := importView()

	file, _, err := r.FormFile("file")
	if err != nil {
		view.Error = "Choose a CSV file to upload"
		h.modal(w, r, http.StatusUnprocessableEntity, templates.ImportModal(view))
		return
	}
	defer file.Close()

	sess := h.sessions.FromRequest(w, r)
	snap, n, err := h.roster.Import(r.Context(), sess, file)
	var rowErrs service.ImportErrors
	switch {
	case errors.As(err, &rowErrs):
		for _, re := range rowErrs {
			view.Rows = append(view.Rows, templates.ImportRow{Row: re.Row, EmpID: re.EmpID, Messages: messages(re.Errors)})
		}
		h.modal(w, r, http.StatusUnprocessableEntity, templates.ImportModal(view))
	case errors.Is(err, domain.ErrInvalidCSV):
		view.Error = err.Error()
		h.modal(w, r, http.StatusUnprocessableEntity, templates.ImportModal(view))
	case errors.Is(err, domain.ErrDuplicateID):
		view.Error = "The file reuses an employee ID that is already on the roster"
		h.modal(w, r, http.StatusUnprocessableEntity, templates.ImportModal(view))
	case err != nil:
		h.fail(w, r, err)
	default:
		h.respond(w, r, templates.RosterView{
			Snapshot:   snap,
			Notice:     fmt.Sprintf("%d employees imported", n),
			CloseModal: true,
		})
	}
}

func (h *Handler) editEmployeeForm(w http.ResponseWriter, r *http.Request) {
	e, ok := h.employee(w, r)
	if !ok {
		return
	}
	h.modal(w, r, http.StatusOK, templates.EmployeeModal(templates.EditForm(e, nil)))
}

// updateEmployee handles PUT /employees/{id}, and POST from clients
// without htmx.
func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	current, ok := h.employee(w, r)
	if !ok {
		return
	}
	patch := patchFromForm(r)
	sess := h.sessions.FromRequest(w, r)

	snap, err := h.roster.Edit(r.Context(), sess, current.EmpID, patch)
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		form := templates.EditForm(current.Apply(patch), verrs)
		h.modal(w, r, http.StatusUnprocessableEntity, templates.EmployeeModal(form))
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "employee not found", http.StatusNotFound)
	case err != nil:
		h.fail(w, r, err)
	default:
		h.respond(w, r, templates.RosterView{Snapshot: snap, CloseModal: true})
	}
}

func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	e, ok := h.employee(w, r)
	if !ok {
		return
	}
	name := e.ResourceName
	if name == "" {
		name = e.EmpID
	}
	h.modal(w, r, http.StatusOK, templates.DeleteModal(templates.DeleteView{EmpID: e.EmpID, Name: name}))
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.FromRequest(w, r)
	snap, err := h.roster.Delete(r.Context(), sess, empID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, templates.RosterView{Snapshot: snap, CloseModal: true})
}

// export streams the whole roster as an attachment. The file is rendered
// into memory first so a failure can still be reported as a 500.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	x, err := h.roster.Exporter(format)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := h.roster.Export(r.Context(), format, &buf); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", x.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, x.FileName()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// employee loads the record named in the path, answering 404 when it is
// missing.
func (h *Handler) employee(w http.ResponseWriter, r *http.Request) (domain.Employee, bool) {
	e, err := h.roster.Employee(r.Context(), empID(r))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "employee not found", http.StatusNotFound)
		return domain.Employee{}, false
	case err != nil:
		h.fail(w, r, err)
		return domain.Employee{}, false
	}
	return e, true
}

// respond answers a successful command: htmx gets the roster fragment,
// plain form posts are sent back to the dashboard.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v templates.RosterView) {
	if !isHTMX(r) && r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	render(w, r, templates.Roster(v))
}

// modal serves a dialog. htmx requests get the dialog alone, retargeted to
// the modal container when it carries validation errors; other clients get
// the dashboard with the dialog open.
func (h *Handler) modal(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	if isHTMX(r) {
		if status != http.StatusOK {
			w.Header().Set("HX-Retarget", "#modal")
			w.Header().Set("HX-Reswap", "innerHTML")
		}
		renderStatus(w, r, status, c)
		return
	}
	sess := h.sessions.FromRequest(w, r)
	snap, err := h.roster.View(r.Context(), sess, nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	renderStatus(w, r, status, templates.Page(templates.RosterView{Snapshot: snap}, c))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		sl.Err(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	renderStatus(w, r, http.StatusOK, c)
}

func renderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// empID returns the {id} path segment. chi matches against the raw path
// when the URL carries escapes such as %2F, so those are decoded here.
func empID(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}
