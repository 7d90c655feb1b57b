package waypoint

import "fmt"

// A Kind is the physical column type used to persist a Member's primitive value.
type Kind string

const (
	// KindSmallInt persists int primitives in a non-negative 2-byte integer column.
	KindSmallInt Kind = "smallint"

	// KindInt persists int primitives in a 4-byte integer column.
	KindInt Kind = "integer"

	// KindText persists string primitives in an unbounded text column.
	KindText Kind = "text"

	// KindVarchar persists string primitives in a varchar(255) column.
	KindVarchar Kind = "varchar"
)

const smallIntMax = 1<<15 - 1

// String stringifies the Kind.
//
// String implements fmt.Stringer and half of Enumerable.
func (k Kind) String() string { return string(k) }

// Valid asserts the Kind is one this package supports.
//
// Valid implements the other half of Enumerable.
func (k Kind) Valid() error {
	switch k {
	case KindSmallInt, KindInt, KindText, KindVarchar:
		return nil
	default:
		return fmt.Errorf("%w: unsupported kind %q", ErrNotValid, string(k))
	}
}

// SQLType returns the PostgreSQL column type backing the Kind.
func (k Kind) SQLType() string {
	switch k {
	case KindVarchar:
		return "varchar(255)"
	default:
		return string(k)
	}
}

// compatible asserts the Kind can physically hold primitives of pk.
func (k Kind) compatible(pk primitiveKind) bool {
	switch k {
	case KindSmallInt, KindInt:
		return pk == primitiveInt
	case KindText, KindVarchar:
		return pk == primitiveString
	default:
		return false
	}
}

// fits asserts value is within the physical range of the Kind.
// Compatibility of the primitive type is checked by compatible, not here.
func (k Kind) fits(value any) error {
	switch k {
	case KindSmallInt:
		v, ok := value.(int)
		if !ok {
			return nil
		}

		if v < 0 || v > smallIntMax {
			return fmt.Errorf("%w: %d is outside [0, %d]", ErrNotValid, v, smallIntMax)
		}

	case KindVarchar:
		v, ok := value.(string)
		if !ok {
			return nil
		}

		if len(v) > 255 {
			return fmt.Errorf("%w: value exceeds 255 bytes", ErrNotValid)
		}
	}

	return nil
}

// defaultMessages returns the message templates the Kind contributes to a
// Field's message table. Enum-specific templates override the entries for
// CodeInvalidValue and CodeInvalidType; every other entry survives the merge
// untouched.
func (k Kind) defaultMessages() map[string]string {
	return map[string]string{
		CodeRequired:     "a value is required",
		CodeInvalidValue: "value does not fit a " + k.SQLType() + " column",
	}
}
