package waypoint

import "fmt"

// Coerce classifies raw against enum, producing the canonical Member it denotes.
//
// Coerce distinguishes three inputs:
//   - absence (nil): returns (nil, nil) when nullable, otherwise an InvalidValueError;
//   - a Member: returned as-is when it belongs to enum,
//     otherwise an InvalidTypeError since a member of the wrong enum is a
//     programming error at the call site, not bad data;
//   - a primitive: looked up by exact equality against the members' underlying
//     values, returning the matching Member or an InvalidValueError.
//
// Integer widths are normalized before lookup since database drivers scan into
// int64, but no coercion across int and string is ever attempted.
//
// Coerce performs no I/O and never logs; it only classifies and returns.
func Coerce(enum *Enum, raw any, nullable bool) (*Member, error) {
	if enum == nil {
		return nil, fmt.Errorf("%w: coerce requires an Enum", ErrBadConfig)
	}

	if raw == nil {
		if nullable {
			return nil, nil
		}

		return nil, InvalidValueError{Enum: enum.name, Raw: raw, Reason: "absence not permitted"}
	}

	switch m := raw.(type) {
	case Member:
		return coerceMember(enum, m)

	case *Member:
		if m == nil {
			if nullable {
				return nil, nil
			}

			return nil, InvalidValueError{Enum: enum.name, Raw: nil, Reason: "absence not permitted"}
		}

		return coerceMember(enum, *m)
	}

	member, ok := enum.ByValue(normalize(raw))
	if !ok {
		return nil, InvalidValueError{Enum: enum.name, Raw: raw, Reason: "no member with this underlying value"}
	}

	return &member, nil
}

func coerceMember(enum *Enum, m Member) (*Member, error) {
	if m.enum == enum {
		return &m, nil
	}

	actual := "no enum"
	if m.enum != nil {
		actual = m.enum.name
	}

	return nil, InvalidTypeError{Expected: enum.name, Actual: actual, Raw: m}
}

// normalize widens the integer family to int so primitives scanned out of a
// database match members declared with untyped int constants.
// Values that cannot index a member, floats included, pass through untouched
// and fail lookup instead.
func normalize(raw any) any {
	switch v := raw.(type) {
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	default:
		return raw
	}
}
