package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/pressly/goose"

	"github.com/csg33k/roster-admin/internal/domain"
	"github.com/csg33k/roster-admin/internal/metrics"
)

// MemoryDSN keeps the roster in a private in-memory database that lives as
// long as the process.
const MemoryDSN = ":memory:"

type Repository struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// New opens the SQLite database. The pool is pinned to one connection so
// an in-memory database is shared by every query. Call Migrate before use.
func New(dsn string, m *metrics.Metrics) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return &Repository{db: db, metrics: m}, nil
}

// Migrate applies every goose migration found in dir.
func (r *Repository) Migrate(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("migrations directory: %w", err)
	}
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(r.db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations from %s: %w", dir, err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ── Employees ─────────────────────────────────────────────────────────────────

const selectEmployees = `
	SELECT emp_id, resource_name, prj_align, core_alignment, core_team,
	       job_title, role_type, status, base_location, email_id,
	       hire_date, term_date, vendor, contact_number,
	       team_name, manager_name, secondary_team, modified_by, modified_at
	FROM employees`

const insertEmployee = `
	INSERT INTO employees (
		emp_id, resource_name, prj_align, core_alignment, core_team,
		job_title, role_type, status, base_location, email_id,
		hire_date, term_date, vendor, contact_number,
		team_name, manager_name, secondary_team, modified_by, modified_at
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`

func (r *Repository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	defer r.observe("list_employees", time.Now())

	rows, err := r.db.QueryContext(ctx, selectEmployees+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()
	var list []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		list = append(list, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return list, nil
}

func (r *Repository) GetEmployee(ctx context.Context, empID string) (*domain.Employee, error) {
	defer r.observe("get_employee", time.Now())

	e, err := scanEmployee(r.db.QueryRowContext(ctx, selectEmployees+` WHERE emp_id=?`, empID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", empID, err)
	}
	return e, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	return r.CreateEmployees(ctx, []domain.Employee{*e})
}

// CreateEmployees inserts list in one transaction.
func (r *Repository) CreateEmployees(ctx context.Context, list []domain.Employee) error {
	defer r.observe("create_employees", time.Now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range list {
		if _, err = tx.ExecContext(ctx, insertEmployee, employeeArgs(&list[i])...); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", domain.ErrDuplicateID, list[i].EmpID)
			}
			return fmt.Errorf("failed to insert employee %s: %w", list[i].EmpID, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit employees: %w", err)
	}
	return nil
}

func (r *Repository) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	defer r.observe("update_employee", time.Now())

	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET resource_name=?, prj_align=?, core_alignment=?, core_team=?,
		    job_title=?, role_type=?, status=?, base_location=?, email_id=?,
		    hire_date=?, term_date=?, vendor=?, contact_number=?,
		    team_name=?, manager_name=?, secondary_team=?, modified_by=?, modified_at=?
		WHERE emp_id=?`,
		e.ResourceName, e.PrjAlign, e.CoreAlignment, e.CoreTeam,
		e.JobTitle, e.RoleType, e.Status, e.BaseLocation, e.EmailID,
		e.HireDate, e.TermDate, e.Vendor, e.ContactNumber,
		e.TeamName, e.ManagerName, e.SecondaryTeam, e.ModifiedBy, e.ModifiedAt,
		e.EmpID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", e.EmpID, err)
	}
	return requireAffected(res)
}

func (r *Repository) DeleteEmployee(ctx context.Context, empID string) error {
	defer r.observe("delete_employee", time.Now())

	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE emp_id=?`, empID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", empID, err)
	}
	return requireAffected(res)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := row.Scan(
		&e.EmpID, &e.ResourceName, &e.PrjAlign, &e.CoreAlignment, &e.CoreTeam,
		&e.JobTitle, &e.RoleType, &e.Status, &e.BaseLocation, &e.EmailID,
		&e.HireDate, &e.TermDate, &e.Vendor, &e.ContactNumber,
		&e.TeamName, &e.ManagerName, &e.SecondaryTeam, &e.ModifiedBy, &e.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func employeeArgs(e *domain.Employee) []any {
	return []any{
		e.EmpID, e.ResourceName, e.PrjAlign, e.CoreAlignment, e.CoreTeam,
		e.JobTitle, e.RoleType, e.Status, e.BaseLocation, e.EmailID,
		e.HireDate, e.TermDate, e.Vendor, e.ContactNumber,
		e.TeamName, e.ManagerName, e.SecondaryTeam, e.ModifiedBy, e.ModifiedAt,
	}
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func (r *Repository) observe(queryType string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.StoreQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}
