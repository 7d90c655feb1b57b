package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/postgres"
)

func newColorField(t *testing.T, opts ...waypoint.FieldOpt) *waypoint.Field {
	t.Helper()

	colors, err := waypoint.NewEnum("Color",
		waypoint.Def("RED", 1),
		waypoint.Def("GREEN", 2),
		waypoint.Def("BLUE", 3),
	)
	require.Nil(t, err)

	field, err := waypoint.NewField(colors, waypoint.KindSmallInt, opts...)
	require.Nil(t, err)

	return field
}

func newStateField(t *testing.T) *waypoint.Field {
	t.Helper()

	states, err := waypoint.NewEnum("AccessState",
		waypoint.Def("GRANTED", "granted"),
		waypoint.Def("REVOKED", "revoked"),
	)
	require.Nil(t, err)

	field, err := waypoint.NewField(states, waypoint.KindVarchar, waypoint.WithNullable())
	require.Nil(t, err)

	return field
}

func TestColumnDDL(t *testing.T) {
	// Arrange
	col := postgres.Column{Name: "color", Field: newColorField(t)}

	// Act
	ddl := col.DDL()

	// Assert
	require.Equal(t, "color smallint NOT NULL CHECK (color IN (1, 2, 3))", ddl)

	// Arrange: nullable string enum quotes its literals and drops NOT NULL
	col = postgres.Column{Name: "access_state", Field: newStateField(t)}

	// Act
	ddl = col.DDL()

	// Assert
	require.Equal(t, "access_state varchar(255) CHECK (access_state IN ('granted', 'revoked'))", ddl)
}

func TestColumnDDLFullEnum(t *testing.T) {
	// Arrange: a restricted choice list must not narrow the CHECK
	field := newColorField(t, waypoint.WithChoices(1, 3))
	col := postgres.Column{Name: "color", Field: field}

	// Act
	ddl := col.DDL()

	// Assert
	require.Contains(t, ddl, "IN (1, 2, 3)")
}

func TestTableCreateSQL(t *testing.T) {
	// Arrange
	table := postgres.Table{
		Name:    "labels",
		Columns: []postgres.Column{{Name: "color", Field: newColorField(t)}},
	}

	// Act
	sql := table.CreateSQL()

	// Assert
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS labels")
	require.Contains(t, sql, "id bigserial PRIMARY KEY")
	require.Contains(t, sql, "color smallint NOT NULL CHECK (color IN (1, 2, 3))")
}

func TestRegistryRegister(t *testing.T) {
	// Arrange
	reg := postgres.NewRegistry(nil)
	table := postgres.Table{
		Name:    "labels",
		Columns: []postgres.Column{{Name: "color", Field: newColorField(t)}},
	}

	// Act + Assert
	require.Nil(t, reg.Register(table))

	got, ok := reg.Table("labels")
	require.True(t, ok)
	require.Equal(t, "labels", got.Name)

	// Act: double registration
	err := reg.Register(table)

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Act
	err = reg.Register(postgres.Table{Name: ""})

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Act
	err = reg.Register(postgres.Table{Name: "empty"})

	// Assert
	require.ErrorIs(t, err, waypoint.ErrMissingData)

	// Act
	err = reg.Register(postgres.Table{
		Name:    "dupes",
		Columns: []postgres.Column{{Name: "color", Field: newColorField(t)}, {Name: "color", Field: newColorField(t)}},
	})

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Act
	err = reg.Register(postgres.Table{Name: "nofield", Columns: []postgres.Column{{Name: "color"}}})

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)
}

func TestRegistryMustRegister(t *testing.T) {
	// Arrange
	reg := postgres.NewRegistry(nil)

	// Act + Assert
	require.Panics(t, func() { reg.MustRegister(postgres.Table{}) })
}

func TestRegistryMigrations(t *testing.T) {
	// Arrange
	reg := postgres.NewRegistry(nil)
	reg.MustRegister(postgres.Table{
		Name:    "labels",
		Columns: []postgres.Column{{Name: "color", Field: newColorField(t)}},
	})
	reg.MustRegister(postgres.Table{
		Name:    "users",
		Columns: []postgres.Column{{Name: "access_state", Field: newStateField(t)}},
	})

	// Act
	ms := reg.Migrations()

	// Assert: registration order
	require.Len(t, ms, 2)
	require.Equal(t, "create-labels", ms[0].Key)
	require.Equal(t, "create-users", ms[1].Key)
}
