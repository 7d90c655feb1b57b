package postgres

import (
	"fmt"

	"github.com/xy-planning-network/waypoint"
	"gorm.io/gorm"
)

// A Store reads and writes rows for registered Tables,
// running every enum column through its Field on the way in and out.
//
// The Store is deliberately narrow: it is not a query builder.
// Applications with richer query needs use GORM directly
// and call the Fields themselves around their reads and writes.
type Store struct {
	db  *gorm.DB
	reg *Registry
}

// NewStore constructs a Store over db for the Tables registered in reg.
func NewStore(db *gorm.DB, reg *Registry) *Store {
	return &Store{db: db, reg: reg}
}

// Insert validates row and writes it to table.
//
// Enum columns are encoded through Field.ToStorage first:
// Members and raw primitives both work, absence only on nullable fields.
// An invalid enum value surfaces as the Field's InvalidValueError untouched,
// so callers can report it per-field;
// database-level failures translate to sentinel errors.
func (s *Store) Insert(table string, row map[string]any) error {
	t, ok := s.reg.Table(table)
	if !ok {
		return fmt.Errorf("%w: table %q is not registered", waypoint.ErrMissingData, table)
	}

	encoded := make(map[string]any, len(row))
	for column, value := range row {
		f, ok := t.field(column)
		if !ok {
			encoded[column] = value
			continue
		}

		primitive, err := f.ToStorage(value)
		if err != nil {
			return err
		}

		encoded[column] = primitive
	}

	if err := s.db.Table(table).Create(encoded).Error; err != nil {
		return translate(err)
	}

	return nil
}

// Fetch retrieves the row with id from table,
// decoding every enum column back into its canonical Member.
//
// Decoding re-validates: a value written around the Field that matches no
// member fails with the Field's InvalidValueError rather than leaking a raw
// primitive into calling code. Nullable columns decode database NULL to nil.
func (s *Store) Fetch(table string, id any) (map[string]any, error) {
	t, ok := s.reg.Table(table)
	if !ok {
		return nil, fmt.Errorf("%w: table %q is not registered", waypoint.ErrMissingData, table)
	}

	row := make(map[string]any)
	if err := s.db.Table(table).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, translate(err)
	}

	for column, value := range row {
		f, ok := t.field(column)
		if !ok {
			continue
		}

		m, err := f.FromStorage(value)
		if err != nil {
			return nil, err
		}

		if m == nil {
			row[column] = nil
			continue
		}

		row[column] = *m
	}

	return row, nil
}
