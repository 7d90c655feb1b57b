package waypoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

func TestCoerceRoundTrip(t *testing.T) {
	// Arrange
	colors := newColors(t)

	for _, want := range colors.Members() {
		// Act
		got, err := waypoint.Coerce(colors, want.Value(), false)

		// Assert
		require.Nil(t, err)
		require.Equal(t, want, *got)
	}
}

func TestCoerceIdentity(t *testing.T) {
	// Arrange
	colors := newColors(t)

	for _, want := range colors.Members() {
		// Act
		got, err := waypoint.Coerce(colors, want, false)

		// Assert
		require.Nil(t, err)
		require.Equal(t, want, *got)

		// Act
		got, err = waypoint.Coerce(colors, &want, false)

		// Assert
		require.Nil(t, err)
		require.Equal(t, want, *got)
	}
}

func TestCoerceAbsence(t *testing.T) {
	// Arrange
	colors := newColors(t)

	// Act
	m, err := waypoint.Coerce(colors, nil, true)

	// Assert
	require.Nil(t, err)
	require.Nil(t, m)

	// Act
	_, err = waypoint.Coerce(colors, nil, false)

	// Assert
	require.ErrorIs(t, err, waypoint.ErrNotValid)
	require.Equal(t, waypoint.CodeInvalidValue, waypoint.ErrorCode(err))

	// Act: a nil *Member is absence, too
	m, err = waypoint.Coerce(colors, (*waypoint.Member)(nil), true)

	// Assert
	require.Nil(t, err)
	require.Nil(t, m)
}

func TestCoerceInvalidValue(t *testing.T) {
	// Arrange
	colors := newColors(t)

	// Act
	_, err := waypoint.Coerce(colors, 9, false)

	// Assert
	require.ErrorIs(t, err, waypoint.ErrNotValid)

	var ive waypoint.InvalidValueError
	require.ErrorAs(t, err, &ive)
	require.Equal(t, 9, ive.Raw)
	require.Equal(t, "Color", ive.Enum)
	require.Contains(t, err.Error(), "9")
	require.Contains(t, err.Error(), "Color")

	// Act + Assert: no coercion from string to int
	_, err = waypoint.Coerce(colors, "1", false)
	require.ErrorIs(t, err, waypoint.ErrNotValid)
}

func TestCoerceInvalidType(t *testing.T) {
	// Arrange
	colors := newColors(t)
	sizes, err := waypoint.NewEnum("Size", waypoint.Def("SMALL", 1), waypoint.Def("LARGE", 2))
	require.Nil(t, err)
	small, ok := sizes.ByName("SMALL")
	require.True(t, ok)

	// Act
	_, err = waypoint.Coerce(colors, small, false)

	// Assert
	require.ErrorIs(t, err, waypoint.ErrUnexpected)
	require.Equal(t, waypoint.CodeInvalidType, waypoint.ErrorCode(err))

	var ite waypoint.InvalidTypeError
	require.ErrorAs(t, err, &ite)
	require.Equal(t, "Color", ite.Expected)
	require.Equal(t, "Size", ite.Actual)

	// Act + Assert: the zero Member belongs to no enum
	_, err = waypoint.Coerce(colors, waypoint.Member{}, false)
	require.ErrorIs(t, err, waypoint.ErrUnexpected)
}

func TestCoerceNormalizesIntWidths(t *testing.T) {
	// Arrange
	colors := newColors(t)

	// Act: database drivers scan integer columns into int64
	got, err := waypoint.Coerce(colors, int64(3), false)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "BLUE", got.Name())

	// Act + Assert: floats never index a member
	_, err = waypoint.Coerce(colors, 3.0, false)
	require.ErrorIs(t, err, waypoint.ErrNotValid)
}

func TestCoerceRequiresEnum(t *testing.T) {
	// Arrange + Act
	_, err := waypoint.Coerce(nil, 1, false)

	// Assert
	require.ErrorIs(t, err, waypoint.ErrBadConfig)
}
