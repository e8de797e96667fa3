package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/csg33k/roster-admin/internal/domain"
	"github.com/csg33k/roster-admin/internal/lib/logger/sl"
	"github.com/csg33k/roster-admin/internal/metrics"
	"github.com/csg33k/roster-admin/internal/ports"
	"github.com/csg33k/roster-admin/internal/roster"
	"github.com/csg33k/roster-admin/internal/validation"
)

var ErrUnknownFormat = errors.New("unknown export format")

// State is the per-session view state a command runs against.
type State interface {
	With(fn func(c *roster.Controller))
}

// Roster applies screen commands to a session's controller and mutations
// to the shared employee list.
type Roster struct {
	log       *slog.Logger
	repo      ports.EmployeeRepository
	importer  ports.RosterImporter
	exporters map[string]ports.RosterExporter
	edit      validation.Policy
	add       validation.Policy
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewRoster(
	log *slog.Logger,
	repo ports.EmployeeRepository,
	m *metrics.Metrics,
	add validation.Policy,
	importer ports.RosterImporter,
	exporters ...ports.RosterExporter,
) *Roster {
	byFormat := make(map[string]ports.RosterExporter, len(exporters))
	for _, x := range exporters {
		byFormat[x.Format()] = x
	}
	return &Roster{
		log:       log,
		repo:      repo,
		importer:  importer,
		exporters: byFormat,
		edit:      validation.NewEditPolicy(),
		add:       add,
		metrics:   m,
		now:       time.Now,
	}
}

func (s *Roster) initLogger(opn string) *slog.Logger {
	return sl.Op(s.log, opn).With(slog.String("division", "roster"))
}

// View reloads the employee list into st, applies cmd (which may be nil)
// and returns what the screen should show.
func (s *Roster) View(ctx context.Context, st State, cmd func(c *roster.Controller)) (roster.Snapshot, error) {
	list, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.initLogger("Roster.View").ErrorContext(ctx, "failed to load roster", sl.Err(err))
		return roster.Snapshot{}, fmt.Errorf("load roster: %w", err)
	}
	var snap roster.Snapshot
	st.With(func(c *roster.Controller) {
		c.Load(list)
		if cmd != nil {
			cmd(c)
		}
		snap = c.Snapshot()
	})
	return snap, nil
}

// apply updates the session's list in place after a mutation. A session
// whose list does not line up with the change is reloaded instead.
func (s *Roster) apply(ctx context.Context, st State, fn func(c *roster.Controller) bool) (roster.Snapshot, error) {
	var (
		snap roster.Snapshot
		ok   bool
	)
	st.With(func(c *roster.Controller) {
		if ok = fn(c); ok {
			snap = c.Snapshot()
		}
	})
	if ok {
		return snap, nil
	}
	return s.View(ctx, st, nil)
}

// Employee returns one record for the edit and confirm-delete dialogs.
func (s *Roster) Employee(ctx context.Context, id string) (domain.Employee, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	return *e, nil
}

// Delete removes id from the list and from the selection. An unknown id is
// not an error.
func (s *Roster) Delete(ctx context.Context, st State, id string) (roster.Snapshot, error) {
	log := s.initLogger("Roster.Delete").With(slog.String("emp_id", id))

	err := s.repo.DeleteEmployee(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.DebugContext(ctx, "employee already gone")
	case err != nil:
		s.metrics.Record("delete", err)
		log.ErrorContext(ctx, "failed to delete employee", sl.Err(err))
		return roster.Snapshot{}, fmt.Errorf("delete employee %s: %w", id, err)
	default:
		s.metrics.Record("delete", nil)
		log.InfoContext(ctx, "employee deleted")
	}
	return s.apply(ctx, st, func(c *roster.Controller) bool { return c.Remove(id) })
}

// Edit applies patch to the employee with the given id. The result must
// satisfy the edit policy; on success modified_at is stamped with today's
// date. Validation failures are returned as validation.Errors.
func (s *Roster) Edit(ctx context.Context, st State, id string, patch domain.Patch) (roster.Snapshot, error) {
	log := s.initLogger("Roster.Edit").With(slog.String("emp_id", id))

	current, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.ErrorContext(ctx, "failed to load employee", sl.Err(err))
		}
		s.metrics.Record("edit", err)
		return roster.Snapshot{}, fmt.Errorf("edit employee %s: %w", id, err)
	}

	updated := current.Apply(trimPatch(patch))
	if errs := s.edit.Validate(updated); len(errs) > 0 {
		s.rejected(ctx, log, s.edit, errs)
		return roster.Snapshot{}, errs
	}
	updated.ModifiedAt = s.now().Format(domain.DateLayout)

	if err = s.repo.UpdateEmployee(ctx, &updated); err != nil {
		s.metrics.Record("edit", err)
		log.ErrorContext(ctx, "failed to save employee", sl.Err(err))
		return roster.Snapshot{}, fmt.Errorf("edit employee %s: %w", id, err)
	}
	s.metrics.Record("edit", nil)
	log.InfoContext(ctx, "employee updated", slog.String("modified_by", updated.ModifiedBy))

	return s.apply(ctx, st, func(c *roster.Controller) bool { return c.Replace(updated) })
}

// Add validates e with the add policy and appends it to the list.
func (s *Roster) Add(ctx context.Context, st State, e domain.Employee) (roster.Snapshot, error) {
	log := s.initLogger("Roster.Add").With(slog.String("emp_id", e.EmpID))

	e = trimEmployee(e)
	if errs := s.add.Validate(e); len(errs) > 0 {
		s.rejected(ctx, log, s.add, errs)
		return roster.Snapshot{}, errs
	}

	err := s.repo.CreateEmployee(ctx, &e)
	if errors.Is(err, domain.ErrDuplicateID) {
		errs := validation.Errors{"emp_id": "Employee ID already exists"}
		s.rejected(ctx, log, s.add, errs)
		return roster.Snapshot{}, errs
	}
	s.metrics.Record("add", err)
	if err != nil {
		log.ErrorContext(ctx, "failed to add employee", sl.Err(err))
		return roster.Snapshot{}, fmt.Errorf("add employee %s: %w", e.EmpID, err)
	}
	log.InfoContext(ctx, "employee added")

	return s.apply(ctx, st, func(c *roster.Controller) bool { return c.Append(e) })
}

// Import reads a roster file and adds every row, or none of them when any
// row fails the add policy or reuses an existing employee ID.
func (s *Roster) Import(ctx context.Context, st State, r io.Reader) (roster.Snapshot, int, error) {
	log := s.initLogger("Roster.Import")

	list, err := s.importer.Import(ctx, r)
	if err != nil {
		s.metrics.Record("import", err)
		log.DebugContext(ctx, "rejected roster file", sl.Err(err))
		return roster.Snapshot{}, 0, err
	}

	var rowErrs ImportErrors
	seen := make(map[string]int, len(list))
	for i, e := range list {
		errs := s.add.Validate(e)
		if first, dup := seen[e.EmpID]; dup && e.EmpID != "" {
			if errs == nil {
				errs = validation.Errors{}
			}
			errs["emp_id"] = fmt.Sprintf("Employee ID repeats row %d", first)
		} else if !dup {
			seen[e.EmpID] = i + 1
		}
		if len(errs) > 0 {
			rowErrs = append(rowErrs, RowError{Row: i + 1, EmpID: e.EmpID, Errors: errs})
		}
	}
	if len(rowErrs) > 0 {
		s.metrics.Record("import", rowErrs)
		s.metrics.ValidationFailures.WithLabelValues(s.add.Name()).Add(float64(len(rowErrs)))
		log.DebugContext(ctx, "roster file failed validation", slog.Int("rows", len(rowErrs)))
		return roster.Snapshot{}, 0, rowErrs
	}

	if err = s.repo.CreateEmployees(ctx, list); err != nil {
		s.metrics.Record("import", err)
		if errors.Is(err, domain.ErrDuplicateID) {
			log.DebugContext(ctx, "roster file reuses an employee ID", sl.Err(err))
			return roster.Snapshot{}, 0, err
		}
		log.ErrorContext(ctx, "failed to import employees", sl.Err(err))
		return roster.Snapshot{}, 0, fmt.Errorf("import employees: %w", err)
	}
	s.metrics.Record("import", nil)
	log.InfoContext(ctx, "employees imported", slog.Int("count", len(list)))

	snap, err := s.apply(ctx, st, func(c *roster.Controller) bool { return c.Append(list...) })
	return snap, len(list), err
}

// Exporter returns the exporter registered for format.
func (s *Roster) Exporter(format string) (ports.RosterExporter, error) {
	x, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return x, nil
}

// Export writes the full list, not the visible page, in the given format.
func (s *Roster) Export(ctx context.Context, format string, w io.Writer) error {
	log := s.initLogger("Roster.Export").With(slog.String("format", format))

	x, err := s.Exporter(format)
	if err != nil {
		return err
	}
	list, err := s.repo.ListEmployees(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to load roster", sl.Err(err))
		return fmt.Errorf("load roster: %w", err)
	}
	if err = x.Export(ctx, list, w); err != nil {
		log.ErrorContext(ctx, "failed to export roster", sl.Err(err))
		return fmt.Errorf("export %s: %w", format, err)
	}
	s.metrics.Exports.WithLabelValues(format).Inc()
	log.DebugContext(ctx, "roster exported", slog.Int("count", len(list)))
	return nil
}

func (s *Roster) rejected(ctx context.Context, log *slog.Logger, p validation.Policy, errs validation.Errors) {
	s.metrics.ValidationFailures.WithLabelValues(p.Name()).Inc()
	log.DebugContext(ctx, "validation failed", slog.String("policy", p.Name()), slog.String("errors", errs.Error()))
}

func trimPatch(p domain.Patch) domain.Patch {
	out := make(domain.Patch, len(p))
	for k, v := range p {
		out[k] = strings.TrimSpace(v)
	}
	return out
}

func trimEmployee(e domain.Employee) domain.Employee {
	for _, f := range domain.Fields {
		f.Set(&e, strings.TrimSpace(f.Value(e)))
	}
	return e
}
