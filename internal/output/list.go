package output

import (
	"encoding/json"

	"github.com/ivoronin/databoxes/internal/store"
)

// RecordList prints databox records, one row per record.
type RecordList struct {
	Fields  []string // column order
	Records []store.Record
}

// NewRecordList builds a RecordList. When fields is empty the columns are
// every schema field present in the records, in schema order.
func NewRecordList(fields []string, records []store.Record) *RecordList {
	if len(fields) == 0 {
		for _, f := range store.Schema.Fields() {
			for _, r := range records {
				if _, ok := r[f]; ok {
					fields = append(fields, f)
					break
				}
			}
		}
	}
	return &RecordList{Fields: fields, Records: records}
}

// FormatText returns an aligned table with one column per field.
func (l *RecordList) FormatText() string {
	if len(l.Records) == 0 {
		return ""
	}

	tw := NewTableWriter()
	tw.Header(l.Fields...)
	for _, r := range l.Records {
		row := make([]string, len(l.Fields))
		for i, f := range l.Fields {
			row[i] = r[f]
		}
		tw.Row(row...)
	}
	return tw.String()
}

// FormatJSON returns the records as an indented JSON array.
func (l *RecordList) FormatJSON() ([]byte, error) {
	if len(l.Records) == 0 {
		return []byte("[]"), nil
	}
	return json.MarshalIndent(l.Records, "", "  ")
}
