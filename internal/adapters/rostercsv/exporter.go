// Package rostercsv reads and writes the roster CSV download.
//
// The export quotes every data field and leaves the header bare, so
// encoding/csv (which quotes only when needed) is used for reading alone.
package rostercsv

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/csg33k/roster-admin/internal/domain"
)

const (
	FileName    = "employees.csv"
	ContentType = "text/csv;charset=utf-8"
)

type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

func (*Exporter) Format() string      { return "csv" }
func (*Exporter) ContentType() string { return ContentType }
func (*Exporter) FileName() string    { return FileName }

// Export writes the header line followed by one line per employee. Lines
// are separated by "\n" with no trailing newline.
func (*Exporter) Export(ctx context.Context, list []domain.Employee, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(domain.Labels(), ",")); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range list {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n" + Row(list[i])); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// Row renders one employee with every field quoted and inner quotes doubled.
func Row(e domain.Employee) string {
	values := domain.Values(e)
	for i, v := range values {
		values[i] = Quote(v)
	}
	return strings.Join(values, ",")
}

// Quote wraps v in double quotes, doubling any quote it contains.
func Quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
