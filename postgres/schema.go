package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
	"gorm.io/gorm"
)

// A Column binds one database column to the waypoint.Field validating it.
type Column struct {
	Name  string
	Field *waypoint.Field
}

// DDL renders the column definition:
// the physical type from the Field's Kind, NOT NULL unless the Field is
// nullable, and a CHECK constraint enumerating every member's underlying value
// so the database rejects what the Field would.
//
// The CHECK lists the full Enum, not a restricted choice subset,
// since choices restrict presentation rather than membership.
func (c Column) DDL() string {
	parts := []string{c.Name, c.Field.Kind().SQLType()}
	if !c.Field.Nullable() {
		parts = append(parts, "NOT NULL")
	}

	var literals []string
	for _, m := range c.Field.Enum().Members() {
		literals = append(literals, sqlLiteral(m.Value()))
	}
	parts = append(parts, fmt.Sprintf("CHECK (%s IN (%s))", c.Name, strings.Join(literals, ", ")))

	return strings.Join(parts, " ")
}

// sqlLiteral renders an enum primitive as a SQL literal.
// Only int and string ever reach here; an Enum admits nothing else.
func sqlLiteral(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// A Table names a database table and the enum Columns it carries.
// Non-enum columns are outside this module's concern;
// migrations for them live wherever the application keeps its DDL.
type Table struct {
	Name    string
	Columns []Column
}

// field looks up the Field registered for column.
func (t Table) field(column string) (*waypoint.Field, bool) {
	for _, c := range t.Columns {
		if c.Name == column {
			return c.Field, true
		}
	}

	return nil, false
}

// CreateSQL renders the CREATE TABLE statement for the Table,
// including a bigserial primary key alongside the enum columns.
func (t Table) CreateSQL() string {
	lines := []string{"id bigserial PRIMARY KEY"}
	for _, c := range t.Columns {
		lines = append(lines, c.DDL())
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n);", t.Name, strings.Join(lines, ",\n\t"))
}

// Migration packages the Table's DDL for MigrateUp under key.
func (t Table) Migration(key string) Migration {
	sql := t.CreateSQL()
	return Migration{
		Key:      key,
		Executor: func(db *gorm.DB) error { return db.Exec(sql).Error },
	}
}

// A Registry is the set of enum-bearing Tables an application persists.
//
// Register every Table at startup, before serving anything:
// a registration failure is a schema bug, never bad data,
// and ought to abort the process rather than surface at query time.
type Registry struct {
	log    logger.Logger
	tables map[string]Table
	order  []string
}

// NewRegistry constructs a Registry reporting through l.
func NewRegistry(l logger.Logger) *Registry {
	return &Registry{
		log:    l,
		tables: make(map[string]Table),
	}
}

// Register adds t to the Registry.
// A nameless table, a collision with an already registered table,
// a column without a Field, or duplicate column names wrap waypoint.ErrBadConfig.
func (r *Registry) Register(t Table) error {
	if t.Name == "" {
		return fmt.Errorf("%w: a table requires a name", waypoint.ErrBadConfig)
	}

	if _, ok := r.tables[t.Name]; ok {
		return fmt.Errorf("%w: table %q is already registered", waypoint.ErrBadConfig, t.Name)
	}

	if len(t.Columns) == 0 {
		return fmt.Errorf("%w: table %q has no enum columns", waypoint.ErrMissingData, t.Name)
	}

	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if c.Name == "" {
			return fmt.Errorf("%w: table %q has a column without a name", waypoint.ErrBadConfig, t.Name)
		}

		if c.Field == nil {
			return fmt.Errorf("%w: column %s.%s has no field", waypoint.ErrBadConfig, t.Name, c.Name)
		}

		if seen[c.Name] {
			return fmt.Errorf("%w: table %q declares column %q twice", waypoint.ErrBadConfig, t.Name, c.Name)
		}
		seen[c.Name] = true
	}

	r.tables[t.Name] = t
	r.order = append(r.order, t.Name)

	return nil
}

// MustRegister is Register, except a failure logs fatally and panics.
// Use it in application startup paths where a bad schema must halt the process.
func (r *Registry) MustRegister(t Table) {
	if err := r.Register(t); err != nil {
		if r.log != nil {
			r.log.Fatal("cannot register table", &logger.LogContext{
				Data:  map[string]any{"table": t.Name},
				Error: err,
			})
		}

		panic(err)
	}
}

// Table looks up a registered Table by name.
func (r *Registry) Table(name string) (Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Migrations packages every registered Table's DDL, in registration order.
func (r *Registry) Migrations() []Migration {
	ms := make([]Migration, 0, len(r.order))
	for _, name := range r.order {
		ms = append(ms, r.tables[name].Migration("create-"+name))
	}

	return ms
}
