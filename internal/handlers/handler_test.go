package handlers_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/roster-admin/internal/adapters/memory"
	"github.com/csg33k/roster-admin/internal/adapters/pdf"
	"github.com/csg33k/roster-admin/internal/adapters/rostercsv"
	"github.com/csg33k/roster-admin/internal/domain"
	"github.com/csg33k/roster-admin/internal/fixtures"
	"github.com/csg33k/roster-admin/internal/handlers"
	"github.com/csg33k/roster-admin/internal/metrics"
	"github.com/csg33k/roster-admin/internal/roster"
	"github.com/csg33k/roster-admin/internal/server"
	"github.com/csg33k/roster-admin/internal/service"
	"github.com/csg33k/roster-admin/internal/session"
	"github.com/csg33k/roster-admin/internal/validation"
)

type client struct {
	t       *testing.T
	handler http.Handler
	repo    *memory.Repository
	cookie  *http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	log := slog.New(slog.DiscardHandler)

	repo, err := memory.New(fixtures.Employees())
	require.NoError(t, err)

	svc := service.NewRoster(log, repo, m, validation.NewAddPolicy("optum.com"),
		rostercsv.NewImporter(), rostercsv.NewExporter(), pdf.NewExporter(""))
	sessions := session.NewStore(func() *roster.Controller { return roster.NewController(4, true) }, time.Hour, m)
	h := handlers.New(log, svc, sessions, "optum.com")

	return &client{
		t:       t,
		handler: h.Routes(server.NewHealthChecker(repo, "memory", log), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		repo:    repo,
	}
}

func (c *client) do(req *http.Request, htmx bool) *httptest.ResponseRecorder {
	c.t.Helper()
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	for _, ck := range rr.Result().Cookies() {
		if ck.Name == session.CookieName {
			c.cookie = ck
		}
	}
	return rr
}

func (c *client) get(path string, htmx bool) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil), htmx)
}

func (c *client) form(method, path string, values url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, htmx)
}

func (c *client) upload(csv string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "roster.csv")
	require.NoError(c.t, err)
	_, err = io.WriteString(fw, csv)
	require.NoError(c.t, err)
	require.NoError(c.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/employees/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, true)
}

func doc(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)
	return d
}

func rowIDs(d *goquery.Document) []string {
	var ids []string
	d.Find("tbody tr.emp-row").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("data-emp-id", ""))
	})
	return ids
}

func TestIndex_RendersDashboardAndSetsSession(t *testing.T) {
	c := newClient(t)

	rr := c.get("/", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	require.NotNil(t, c.cookie)

	d := doc(t, rr)
	assert.Equal(t, []string{"EMP001", "EMP002", "EMP003", "EMP004"}, rowIDs(d))
	assert.Equal(t, 1, d.Find("#modal").Length())
	assert.Equal(t, "Displaying Page 1 of 3", d.Find("#page-of").Text())
}

func TestPaging_IsKeptPerSession(t *testing.T) {
	c := newClient(t)
	c.get("/", false)

	rr := c.form(http.MethodPost, "/roster/next", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"EMP005", "EMP006", "EMP007", "EMP008"}, rowIDs(doc(t, rr)))

	assert.Equal(t, "Displaying Page 2 of 3", doc(t, c.get("/roster", true)).Find("#page-of").Text())

	other := newClient(t)
	other.handler = c.handler
	assert.Equal(t, "Displaying Page 1 of 3", doc(t, other.get("/roster", true)).Find("#page-of").Text())
}

func TestPaging_IgnoresBadInput(t *testing.T) {
	c := newClient(t)

	for _, page := range []string{"abc", "0", "99", ""} {
		rr := c.form(http.MethodPost, "/roster/page", url.Values{"page": {page}}, true)
		require.Equal(t, http.StatusOK, rr.Code)
		d := doc(t, rr)
		assert.Equal(t, "Displaying Page 1 of 3", d.Find("#page-of").Text(), page)
		assert.Equal(t, page, d.Find("#go-to-page").AttrOr("value", "missing"), "rejected input stays in the box")
	}

	rr := c.form(http.MethodPost, "/roster/page", url.Values{"page": {"3"}}, true)
	d := doc(t, rr)
	assert.Equal(t, []string{"EMP009", "EMP010", "EMP011", "EMP012"}, rowIDs(d))
	assert.Empty(t, d.Find("#go-to-page").AttrOr("value", "missing"), "box is cleared after a jump")

	rr = c.form(http.MethodPost, "/roster/page-size", url.Values{"size": {"7"}}, true)
	assert.Equal(t, "Displaying Page 3 of 3", doc(t, rr).Find("#page-of").Text())

	rr = c.form(http.MethodPost, "/roster/page-size", url.Values{"size": {"25"}}, true)
	d = doc(t, rr)
	assert.Equal(t, "Displaying Page 1 of 1", d.Find("#page-of").Text())
	assert.Len(t, rowIDs(d), 12)
}

func TestFilters_ChipsAndReset(t *testing.T) {
	c := newClient(t)

	add := url.Values{"filter": {"Team"}, "value": {"  Payments "}}
	c.form(http.MethodPost, "/roster/filters", add, true)
	rr := c.form(http.MethodPost, "/roster/filters", add, true)
	d := doc(t, rr)
	assert.Equal(t, 1, d.Find(`input[name="chip"]`).Length())
	assert.Equal(t, "Team - Payments", d.Find(`input[name="chip"]`).AttrOr("value", ""))
	assert.Len(t, rowIDs(d), 4, "chips do not narrow the table")

	rr = c.form(http.MethodPost, "/roster/filters", url.Values{"filter": {"Select"}, "value": {"x"}}, true)
	assert.Equal(t, 1, doc(t, rr).Find(`input[name="chip"]`).Length())

	c.form(http.MethodPost, "/roster/filters", url.Values{"filter": {"Manager"}, "value": {"Dana"}}, true)
	rr = c.form(http.MethodPost, "/roster/filters/remove", url.Values{"chip": {"Team - Payments"}}, true)
	assert.Equal(t, "Manager - Dana", doc(t, rr).Find(`input[name="chip"]`).AttrOr("value", ""))

	c.form(http.MethodPost, "/roster/page-size", url.Values{"size": {"25"}}, true)
	rr = c.form(http.MethodPost, "/roster/reset", nil, true)
	d = doc(t, rr)
	assert.Equal(t, 0, d.Find(`input[name="chip"]`).Length())
	assert.Equal(t, "4", d.Find(`select[name="size"] option[selected]`).AttrOr("value", ""))
}

func TestSelection(t *testing.T) {
	c := newClient(t)

	rr := c.form(http.MethodPost, "/roster/selection/EMP002", nil, true)
	d := doc(t, rr)
	assert.Equal(t, "Displaying 4 employees (1 selected)", d.Find("#displaying").Text())
	_, ok := d.Find(`input[aria-label="Select all"]`).Attr("data-indeterminate")
	assert.True(t, ok)

	rr = c.form(http.MethodPost, "/roster/selection", url.Values{"selected": {"true"}}, true)
	assert.Equal(t, "Displaying 4 employees (12 selected)", doc(t, rr).Find("#displaying").Text())

	rr = c.form(http.MethodPost, "/roster/selection", url.Values{"selected": {"false"}}, true)
	assert.Equal(t, "Displaying 4 employees (0 selected)", doc(t, rr).Find("#displaying").Text())

	rr = c.form(http.MethodPost, "/roster/selection/GHOST", nil, true)
	d = doc(t, rr)
	assert.Equal(t, "Displaying 4 employees (0 selected)", d.Find("#displaying").Text())
	_, ok = d.Find(`input[aria-label="Select all"]`).Attr("data-indeterminate")
	assert.False(t, ok, "unknown ids are not selected")
}

func TestAdminToggleHidesControls(t *testing.T) {
	c := newClient(t)

	rr := c.form(http.MethodPost, "/roster/admin", url.Values{"admin": {"false"}}, true)
	d := doc(t, rr)
	assert.Equal(t, 0, d.Find(`input[type="checkbox"]`).Length())
	assert.Equal(t, 0, d.Find(`a.btn-danger`).Length())
}

func TestPlainFormPostRedirects(t *testing.T) {
	c := newClient(t)

	rr := c.form(http.MethodPost, "/roster/next", nil, false)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	assert.Equal(t, "Displaying Page 2 of 3", doc(t, c.get("/", false)).Find("#page-of").Text())
}

func TestAddEmployee(t *testing.T) {
	c := newClient(t)

	rr := c.get("/employees/new", true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/employees", doc(t, rr).Find("form").AttrOr("hx-post", ""))

	bad := url.Values{"emp_id": {"EMP100"}, "email_id": {"someone@example.com"}, "contact_number": {"555"}}
	rr = c.form(http.MethodPost, "/employees", bad, true)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "#modal", rr.Header().Get("HX-Retarget"))
	assert.Equal(t, "innerHTML", rr.Header().Get("HX-Reswap"))
	d := doc(t, rr)
	assert.Equal(t, "Email must be an @optum.com address", d.Find(`[data-field="email_id"] p.error`).Text())
	assert.Equal(t, "Contact number must be exactly 10 digits", d.Find(`[data-field="contact_number"] p.error`).Text())
	assert.Equal(t, "EMP100", d.Find(`input[name="emp_id"]`).AttrOr("value", ""))

	good := url.Values{
		"emp_id":         {"EMP100"},
		"resource_name":  {"Nia Long"},
		"email_id":       {"nia.long@optum.com"},
		"contact_number": {"5551234567"},
		"job_title":      {"Go", " ", "SQL"},
	}
	rr = c.form(http.MethodPost, "/employees", good, true)
	require.Equal(t, http.StatusOK, rr.Code)
	d = doc(t, rr)
	assert.Equal(t, "true", d.Find("#modal").AttrOr("hx-swap-oob", ""))
	assert.Contains(t, d.Find("#total").Text(), "13")

	e, err := c.repo.GetEmployee(context.Background(), "EMP100")
	require.NoError(t, err)
	assert.Equal(t, "Go, SQL", e.JobTitle)

	rr = c.form(http.MethodPost, "/employees", good, true)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Employee ID already exists", doc(t, rr).Find(`[data-field="emp_id"] p.error`).Text())
}

func TestEditEmployee(t *testing.T) {
	c := newClient(t)

	rr := c.get("/employees/EMP001/edit", true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "John Smith", doc(t, rr).Find(`input[name="resource_name"]`).AttrOr("value", ""))

	rr = c.form(http.MethodPut, "/employees/EMP001", url.Values{"email_id": {"nope"}}, true)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Email is invalid", doc(t, rr).Find(`[data-field="email_id"] p.error`).Text())

	rr = c.form(http.MethodPut, "/employees/EMP001", url.Values{"resource_name": {"John Q Smith"}, "modified_by": {"admin"}}, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "true", doc(t, rr).Find("#modal").AttrOr("hx-swap-oob", ""))

	e, err := c.repo.GetEmployee(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "John Q Smith", e.ResourceName)
	assert.Equal(t, "admin", e.ModifiedBy)
	assert.Equal(t, time.Now().Format(domain.DateLayout), e.ModifiedAt)
	assert.Equal(t, "john.smith@optum.com", e.EmailID)

	assert.Equal(t, http.StatusNotFound, c.get("/employees/NOPE/edit", true).Code)
	assert.Equal(t, http.StatusNotFound, c.form(http.MethodPut, "/employees/NOPE", url.Values{}, true).Code)
}

func TestDeleteEmployee(t *testing.T) {
	c := newClient(t)
	c.form(http.MethodPost, "/roster/selection/EMP001", nil, true)

	rr := c.get("/employees/EMP001/delete", true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t,
		"Are you sure you want to delete John Smith? This action cannot be undone.",
		doc(t, rr).Find("p.confirm").Text())

	rr = c.do(httptest.NewRequest(http.MethodDelete, "/employees/EMP001", nil), true)
	require.Equal(t, http.StatusOK, rr.Code)
	d := doc(t, rr)
	assert.Equal(t, []string{"EMP002", "EMP003", "EMP004", "EMP005"}, rowIDs(d))
	assert.Equal(t, "Displaying 4 employees (0 selected)", d.Find("#displaying").Text())

	rr = c.do(httptest.NewRequest(http.MethodDelete, "/employees/EMP001", nil), true)
	assert.Equal(t, http.StatusOK, rr.Code, "deleting a missing employee is not an error")

	rr = c.form(http.MethodPost, "/employees/EMP002/delete", nil, false)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	_, err := c.repo.GetEmployee(context.Background(), "EMP002")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestModalWithoutHTMXRendersFullPage(t *testing.T) {
	c := newClient(t)

	rr := c.get("/employees/EMP003/delete", false)
	require.Equal(t, http.StatusOK, rr.Code)
	d := doc(t, rr)
	assert.Equal(t, 1, d.Find("#roster").Length())
	assert.Contains(t, d.Find("#modal p.confirm").Text(), "Wei Zhang")
}

func TestImportEmployees(t *testing.T) {
	c := newClient(t)
	header := strings.Join(domain.Labels(), ",")

	rr := c.get("/employees/import", true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, header, doc(t, rr).Find("p.mono").First().Text())

	bad := header + "\n" +
		rostercsv.Row(domain.Employee{EmpID: "N1", EmailID: "n1@optum.com", ContactNumber: "5550000001"}) + "\n" +
		rostercsv.Row(domain.Employee{EmpID: "N2", EmailID: "n2@gmail.com", ContactNumber: "5550000002"})
	rr = c.upload(bad)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Row 2 (N2): Email must be an @optum.com address", doc(t, rr).Find("ul.import-errors li").Text())
	_, err := c.repo.GetEmployee(context.Background(), "N1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "nothing is imported when a row fails")

	rr = c.upload("not,a,roster")
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, doc(t, rr).Find("p.error").Text(), domain.ErrInvalidCSV.Error())

	good := header + "\n" +
		rostercsv.Row(domain.Employee{EmpID: "N1", EmailID: "n1@optum.com", ContactNumber: "5550000001"}) + "\n" +
		rostercsv.Row(domain.Employee{EmpID: "N2", EmailID: "n2@optum.com", ContactNumber: "5550000002"})
	rr = c.upload(good)
	require.Equal(t, http.StatusOK, rr.Code)
	d := doc(t, rr)
	assert.Equal(t, "2 employees imported", d.Find(".notice").Text())
	assert.Equal(t, "Total records: 14", d.Find("#total").Text())
}

func TestExport(t *testing.T) {
	c := newClient(t)

	rr := c.get("/export/csv", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv;charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="employees.csv"`, rr.Header().Get("Content-Disposition"))
	lines := strings.Split(rr.Body.String(), "\n")
	assert.Len(t, lines, 13)
	assert.Equal(t, strings.Join(domain.Labels(), ","), lines[0])

	rr = c.get("/export/pdf", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rr.Body.String(), "%PDF"))

	assert.Equal(t, http.StatusNotFound, c.get("/export/xlsx", false).Code)
}

func TestHealthAndMetrics(t *testing.T) {
	c := newClient(t)

	rr := c.get("/healthz", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"driver":"memory","store":"ok"}`, rr.Body.String())

	c.get("/", false)
	c.get("/export/csv", false)
	rr = c.get("/metrics", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `roster_exports_total{format="csv"} 1`)
	assert.Contains(t, rr.Body.String(), "roster_active_sessions 1")
}
