package output

import (
	"bytes"
	"strings"
	"text/tabwriter"
)

// emptyCell stands in for blank values so columns stay aligned.
const emptyCell = "-"

// TableWriter writes kubectl-style aligned columns.
type TableWriter struct {
	buf  bytes.Buffer
	w    *tabwriter.Writer
	rows int
}

// NewTableWriter returns a TableWriter padding columns with three spaces.
func NewTableWriter() *TableWriter {
	t := &TableWriter{}
	t.w = tabwriter.NewWriter(&t.buf, 0, 0, 3, ' ', 0)
	return t
}

// Header writes the header row, upper-casing column names.
func (t *TableWriter) Header(columns ...string) {
	upper := make([]string, len(columns))
	for i, c := range columns {
		upper[i] = strings.ToUpper(c)
	}
	t.write(upper)
}

// Row writes a data row. Empty values are shown as "-".
func (t *TableWriter) Row(values ...string) {
	cells := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			v = emptyCell
		}
		cells[i] = v
	}
	t.write(cells)
}

func (t *TableWriter) write(cells []string) {
	t.rows++
	_, _ = t.w.Write([]byte(strings.Join(cells, "\t") + "\n"))
}

// String flushes the writer and returns the table without a trailing
// newline, or "" if nothing was written.
func (t *TableWriter) String() string {
	if t.rows == 0 {
		return ""
	}
	_ = t.w.Flush()
	return strings.TrimSuffix(t.buf.String(), "\n")
}
