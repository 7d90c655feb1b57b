package form

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/xy-planning-network/waypoint"
)

// An Option is one selectable entry in a Select.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// A Select presents a Field's ChoiceList for rendering,
// without duplicating any of the coercion logic that validates a submission.
type Select struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// NewSelect renders field's ChoiceList as a Select named name,
// marking current as selected.
//
// A nullable field leads with a blank Option - submitting it decodes to no
// selection - which is selected when current is nil.
// Option order follows the ChoiceList.
func NewSelect(name string, field *waypoint.Field, current *waypoint.Member) Select {
	var opts []Option
	if field.Nullable() {
		opts = append(opts, Option{Selected: current == nil})
	}

	for _, c := range field.Choices() {
		opts = append(opts, Option{
			Value:    ValueString(c.Value),
			Label:    c.Member.Name(),
			Selected: current != nil && *current == c.Member,
		})
	}

	return Select{Name: name, Options: opts}
}

// ValueString renders an enum primitive the way a form submits it back.
// Coerce reverses it, so a rendered Option round-trips to the same Member
// under the exact primitive equality the coercion rules use.
func ValueString(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Coerce pulls key out of a submitted vals and coerces it through field.
//
// A blank or missing value decodes to no selection: (nil, nil) on a nullable
// field, a per-field ValidationErrors otherwise. An invalid selection likewise
// surfaces as ValidationErrors - expected with untrusted input - while
// anything worse escalates unwrapped.
func Coerce(field *waypoint.Field, vals url.Values, key string) (*waypoint.Member, error) {
	raw := vals.Get(key)

	if n, err := strconv.Atoi(raw); err == nil {
		if m, err := field.ToDomain(n); err == nil {
			return m, nil
		}
	}

	m, err := field.ToDomain(raw)
	if err != nil {
		if code := waypoint.ErrorCode(err); code == waypoint.CodeInvalidValue {
			return nil, ValidationErrors{{Field: key, Got: raw, Rule: code}}
		}

		return nil, err
	}

	return m, nil
}
