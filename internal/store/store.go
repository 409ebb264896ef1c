// Package store fetches databoxes from a relational database.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ivoronin/databoxes/internal/filter"
)

// Table is the relational table holding databoxes.
const Table = "databoxes"

// Key is the column used for lookups and stable ordering.
const Key = "id"

// ErrNotFound is returned by Get when no databox has the requested id.
var ErrNotFound = errors.New("databox not found")

// Schema lists the fields that may be filtered on and selected.
var Schema = filter.NewSchema(map[string]filter.ValueType{
	"id":          filter.String,
	"name":        filter.String,
	"description": filter.String,
})

// Databox is a stored box.
type Databox struct {
	ID          string
	Name        string
	Description string
}

// NewDatabox returns a databox with a fresh random id.
func NewDatabox(name, description string) Databox {
	return Databox{ID: uuid.NewString(), Name: name, Description: description}
}

// Record returns the databox as a field → value map.
func (d Databox) Record() Record {
	return Record{"id": d.ID, "name": d.Name, "description": d.Description}
}

// Record is one result row, holding only the selected fields.
type Record map[string]string

// Query selects a page of databoxes.
type Query struct {
	Fields []string // nil selects every schema field
	Where  filter.Predicate
	Take   int
	Skip   int
}

// fields returns the projected fields, defaulting to the whole schema.
func (q Query) fields() []string {
	if len(q.Fields) == 0 {
		return Schema.Fields()
	}
	return q.Fields
}

// Store is implemented by every databox backend.
type Store interface {
	List(ctx context.Context, q Query) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Insert(ctx context.Context, d Databox) error
	Close() error
}
