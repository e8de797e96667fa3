// Package memory is the default roster data source: a mutex-guarded,
// insertion-ordered list that lives as long as the process.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/csg33k/roster-admin/internal/domain"
)

type Repository struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

// New returns a repository holding a copy of seed.
func New(seed []domain.Employee) (*Repository, error) {
	r := &Repository{}
	if err := r.CreateEmployees(context.Background(), seed); err != nil {
		return nil, fmt.Errorf("seed memory repository: %w", err)
	}
	return r, nil
}

func (r *Repository) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.employees), nil
}

func (r *Repository) GetEmployee(_ context.Context, empID string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(empID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	e := r.employees[i]
	return &e, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	return r.CreateEmployees(ctx, []domain.Employee{*e})
}

func (r *Repository) CreateEmployees(_ context.Context, list []domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{}, len(list))
	for _, e := range list {
		if _, dup := seen[e.EmpID]; dup || r.indexOf(e.EmpID) >= 0 {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateID, e.EmpID)
		}
		seen[e.EmpID] = struct{}{}
	}
	r.employees = append(r.employees, list...)
	return nil
}

func (r *Repository) UpdateEmployee(_ context.Context, e *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(e.EmpID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.employees[i] = *e
	return nil
}

func (r *Repository) DeleteEmployee(_ context.Context, empID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(empID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.employees = slices.Delete(r.employees, i, i+1)
	return nil
}

func (r *Repository) Ping(_ context.Context) error {
	return nil
}

// indexOf must be called with mu held.
func (r *Repository) indexOf(empID string) int {
	return slices.IndexFunc(r.employees, func(e domain.Employee) bool { return e.EmpID == empID })
}
