package ports

import (
	"context"
	"io"

	"github.com/csg33k/roster-admin/internal/domain"
)

// EmployeeRepository is the data source standing in for a roster backend.
// List order is insertion order.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, empID string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	// CreateEmployees adds all of list or none of it.
	CreateEmployees(ctx context.Context, list []domain.Employee) error
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
	DeleteEmployee(ctx context.Context, empID string) error
	Ping(ctx context.Context) error
}

// RosterExporter defines a downloadable rendering of the full roster.
type RosterExporter interface {
	// Export writes every employee of list, in order, to w.
	Export(ctx context.Context, list []domain.Employee, w io.Writer) error
	Format() string
	ContentType() string
	FileName() string
}

// RosterImporter parses an uploaded roster file.
type RosterImporter interface {
	Import(ctx context.Context, r io.Reader) ([]domain.Employee, error)
}
