package form_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/form"
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

func TestNewSelect(t *testing.T) {
	// Arrange
	field := newColorField(t)
	green, ok := field.Enum().ByName("GREEN")
	require.True(t, ok)

	// Act
	sel := form.NewSelect("color", field, &green)

	// Assert: choice order, stringified values, current marked
	require.Equal(t, "color", sel.Name)
	require.Len(t, sel.Options, 3)
	require.Equal(t, form.Option{Value: "1", Label: "RED"}, sel.Options[0])
	require.Equal(t, form.Option{Value: "2", Label: "GREEN", Selected: true}, sel.Options[1])
	require.Equal(t, form.Option{Value: "3", Label: "BLUE"}, sel.Options[2])
}

func TestNewSelectNullable(t *testing.T) {
	// Arrange
	field := newColorField(t, waypoint.WithNullable())

	// Act: no current selection
	sel := form.NewSelect("color", field, nil)

	// Assert: a leading blank option carries the no-selection state
	require.Len(t, sel.Options, 4)
	require.Equal(t, form.Option{Selected: true}, sel.Options[0])
	require.Equal(t, form.Option{Value: "1", Label: "RED"}, sel.Options[1])
}

func TestNewSelectRestrictedChoices(t *testing.T) {
	// Arrange
	field := newColorField(t, waypoint.WithChoices(1, 3))

	// Act
	sel := form.NewSelect("color", field, nil)

	// Assert: subset order, GREEN not presented
	require.Len(t, sel.Options, 2)
	require.Equal(t, "RED", sel.Options[0].Label)
	require.Equal(t, "BLUE", sel.Options[1].Label)
}

func TestCoerce(t *testing.T) {
	// Arrange
	field := newColorField(t)

	// Act: a rendered option value round-trips to its member
	m, err := form.Coerce(field, url.Values{"color": []string{"2"}}, "color")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "GREEN", m.Name())

	// Act
	_, err = form.Coerce(field, url.Values{"color": []string{"9"}}, "color")

	// Assert: an invalid selection reports per-field
	require.ErrorIs(t, err, waypoint.ErrNotValid)

	var ves form.ValidationErrors
	require.ErrorAs(t, err, &ves)
	require.Len(t, ves, 1)
	require.Equal(t, "color", ves[0].Field)
	require.Equal(t, "9", ves[0].Got)
	require.Equal(t, waypoint.CodeInvalidValue, ves[0].Rule)

	// Act: junk that is not even a number
	_, err = form.Coerce(field, url.Values{"color": []string{"mauve"}}, "color")

	// Assert
	require.ErrorAs(t, err, &ves)
}

func TestCoerceBlank(t *testing.T) {
	// Arrange
	nullable := newColorField(t, waypoint.WithNullable())
	strict := newColorField(t)

	// Act: blank decodes to no selection on a nullable field
	m, err := form.Coerce(nullable, url.Values{"color": []string{""}}, "color")

	// Assert
	require.Nil(t, err)
	require.Nil(t, m)

	// Act: a missing key is the same as blank
	m, err = form.Coerce(nullable, url.Values{}, "color")

	// Assert
	require.Nil(t, err)
	require.Nil(t, m)

	// Act
	_, err = form.Coerce(strict, url.Values{}, "color")

	// Assert
	require.ErrorIs(t, err, waypoint.ErrNotValid)

	var ves form.ValidationErrors
	require.ErrorAs(t, err, &ves)
	require.Equal(t, waypoint.CodeInvalidValue, ves[0].Rule)
}

func TestCoerceStringEnum(t *testing.T) {
	// Arrange
	states, err := waypoint.NewEnum("AccessState",
		waypoint.Def("GRANTED", "granted"),
		waypoint.Def("REVOKED", "revoked"),
	)
	require.Nil(t, err)

	field, err := waypoint.NewField(states, waypoint.KindVarchar)
	require.Nil(t, err)

	// Act
	m, err := form.Coerce(field, url.Values{"access_state": []string{"revoked"}}, "access_state")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "REVOKED", m.Name())
}
