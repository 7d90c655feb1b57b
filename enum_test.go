package waypoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

var (
	_ waypoint.Enumerable = waypoint.Member{}
	_ waypoint.Enumerable = waypoint.KindSmallInt
	_ waypoint.Enumerable = waypoint.Testing
)

func newColors(t *testing.T) *waypoint.Enum {
	t.Helper()

	colors, err := waypoint.NewEnum("Color",
		waypoint.Def("RED", 1),
		waypoint.Def("GREEN", 2),
		waypoint.Def("BLUE", 3),
	)
	require.Nil(t, err)

	return colors
}

func TestNewEnum(t *testing.T) {
	// Arrange + Act
	_, err := waypoint.NewEnum("")

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Arrange + Act
	_, err = waypoint.NewEnum("Color")

	// Assert
	require.ErrorIs(t, err, waypoint.ErrMissingData)

	// Arrange + Act
	_, err = waypoint.NewEnum("Color", waypoint.Def("RED", 1), waypoint.Def("GREEN", "green"))

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Arrange + Act
	_, err = waypoint.NewEnum("Color", waypoint.Def("RED", 1), waypoint.Def("RED", 2))

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Arrange + Act
	_, err = waypoint.NewEnum("Color", waypoint.Def("RED", 1), waypoint.Def("GREEN", 1))

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Arrange + Act
	_, err = waypoint.NewEnum("Color", waypoint.MemberDef{Name: "RED", Value: 3.14})

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Arrange + Act
	colors := newColors(t)

	// Assert
	require.Equal(t, "Color", colors.Name())
	require.Equal(t, 3, colors.Len())

	members := colors.Members()
	require.Len(t, members, 3)
	require.Equal(t, "RED", members[0].Name())
	require.Equal(t, "GREEN", members[1].Name())
	require.Equal(t, "BLUE", members[2].Name())
	require.Equal(t, 2, members[1].Value())
	require.Same(t, colors, members[0].Enum())
}

func TestEnumByValue(t *testing.T) {
	// Arrange
	colors := newColors(t)

	// Act
	green, ok := colors.ByValue(2)

	// Assert
	require.True(t, ok)
	require.Equal(t, "GREEN", green.Name())

	// Act
	_, ok = colors.ByValue(9)

	// Assert
	require.False(t, ok)

	// Act + Assert: exact equality, no coercion across primitive types
	_, ok = colors.ByValue("2")
	require.False(t, ok)
}

func TestEnumByName(t *testing.T) {
	// Arrange
	colors := newColors(t)

	// Act
	blue, ok := colors.ByName("BLUE")

	// Assert
	require.True(t, ok)
	require.Equal(t, 3, blue.Value())

	// Act
	_, ok = colors.ByName("MAUVE")

	// Assert
	require.False(t, ok)
}

func TestMemberValid(t *testing.T) {
	// Arrange
	colors := newColors(t)
	red, ok := colors.ByName("RED")
	require.True(t, ok)

	// Act + Assert
	require.Nil(t, red.Valid())
	require.Equal(t, "RED", red.String())

	// Arrange
	var zero waypoint.Member

	// Act + Assert
	require.ErrorIs(t, zero.Valid(), waypoint.ErrNotValid)
}
