package rostercsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/csg33k/roster-admin/internal/domain"
)

type Importer struct{}

func NewImporter() *Importer { return &Importer{} }

// Import parses a file in the export layout. The header must match the
// export header exactly; every row must carry every column. Values are
// trimmed. Any structural problem is reported as domain.ErrInvalidCSV.
func (*Importer) Import(ctx context.Context, r io.Reader) ([]domain.Employee, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(domain.Fields)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrInvalidCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", domain.ErrInvalidCSV, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i, label := range domain.Labels() {
		if strings.TrimSpace(header[i]) != label {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", domain.ErrInvalidCSV, i+1, header[i], label)
		}
	}

	var list []domain.Employee
	for row := 1; ; row++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", domain.ErrInvalidCSV, row, err)
		}
		var e domain.Employee
		for i, f := range domain.Fields {
			f.Set(&e, strings.TrimSpace(record[i]))
		}
		list = append(list, e)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no employee rows", domain.ErrInvalidCSV)
	}
	return list, nil
}
