package waypoint

import "fmt"

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Implementing a new Enumerable or adding a new constant value ought to include updating the database with the same
// types and values.
type Enumerable interface {
	String() string
	Valid() error
}

// An EnumPrimitive is a primitive type a Member persists as.
type EnumPrimitive interface {
	int | string
}

type primitiveKind int

const (
	primitiveUnk primitiveKind = iota
	primitiveInt
	primitiveString
)

func (pk primitiveKind) String() string {
	switch pk {
	case primitiveInt:
		return "int"
	case primitiveString:
		return "string"
	default:
		return "unknown"
	}
}

// A MemberDef pairs a symbolic name with the primitive value it persists as,
// for declaring a Member of a new Enum.
//
// Construct a MemberDef with Def so the primitive is checked at compile time.
type MemberDef struct {
	Name  string
	Value any
}

// Def declares a Member for NewEnum.
func Def[T EnumPrimitive](name string, value T) MemberDef {
	return MemberDef{Name: name, Value: value}
}

// An Enum is a closed, named set of Members,
// each pairing a symbolic name with a unique underlying primitive value.
//
// An Enum is immutable once constructed and safe for unsynchronized concurrent reads.
// Identity is the *Enum itself; share one across however many Fields need it.
type Enum struct {
	name      string
	primitive primitiveKind
	members   []Member
	byValue   map[any]int
	byName    map[string]int
}

// A Member is one element of an Enum.
//
// The zero Member belongs to no Enum and is not Valid.
type Member struct {
	enum  *Enum
	name  string
	value any
}

// NewEnum constructs an Enum named name from defs, in declaration order.
//
// All defs must use the same primitive type (int or string),
// and both names and values must be unique across defs.
// Violating any of these wraps ErrBadConfig.
func NewEnum(name string, defs ...MemberDef) (*Enum, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: an Enum requires a name", ErrBadConfig)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s has no members", ErrMissingData, name)
	}

	e := &Enum{
		name:    name,
		members: make([]Member, 0, len(defs)),
		byValue: make(map[any]int, len(defs)),
		byName:  make(map[string]int, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: %s has a member without a name", ErrBadConfig, name)
		}

		var pk primitiveKind
		switch def.Value.(type) {
		case int:
			pk = primitiveInt
		case string:
			pk = primitiveString
		default:
			return nil, fmt.Errorf("%w: %s.%s has primitive %T, only int and string are supported", ErrBadConfig, name, def.Name, def.Value)
		}

		if e.primitive == primitiveUnk {
			e.primitive = pk
		}

		if pk != e.primitive {
			return nil, fmt.Errorf("%w: %s mixes %s and %s primitives", ErrBadConfig, name, e.primitive, pk)
		}

		if _, ok := e.byName[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s declares %s twice", ErrBadConfig, name, def.Name)
		}

		if _, ok := e.byValue[def.Value]; ok {
			return nil, fmt.Errorf("%w: %s declares the value %v twice", ErrBadConfig, name, def.Value)
		}

		e.byName[def.Name] = len(e.members)
		e.byValue[def.Value] = len(e.members)
		e.members = append(e.members, Member{enum: e, name: def.Name, value: def.Value})
	}

	return e, nil
}

// Name returns the name the Enum was declared with.
func (e *Enum) Name() string { return e.name }

// String stringifies the Enum.
//
// String implements fmt.Stringer.
func (e *Enum) String() string { return e.name }

// Members returns every Member in declaration order.
func (e *Enum) Members() []Member {
	members := make([]Member, len(e.members))
	copy(members, e.members)
	return members
}

// Len returns the number of Members.
func (e *Enum) Len() int { return len(e.members) }

// ByValue looks up the Member whose primitive value equals value.
// Equality is exact; no numeric or string coercion across types is attempted.
func (e *Enum) ByValue(value any) (Member, bool) {
	i, ok := e.byValue[value]
	if !ok {
		return Member{}, false
	}

	return e.members[i], true
}

// ByName looks up the Member declared with name.
func (e *Enum) ByName(name string) (Member, bool) {
	i, ok := e.byName[name]
	if !ok {
		return Member{}, false
	}

	return e.members[i], true
}

// Name returns the symbolic name of the Member.
func (m Member) Name() string { return m.name }

// Value returns the underlying primitive value of the Member.
func (m Member) Value() any { return m.value }

// Enum returns the Enum the Member belongs to.
func (m Member) Enum() *Enum { return m.enum }

// String stringifies the Member as its symbolic name.
//
// String implements fmt.Stringer and half of Enumerable.
func (m Member) String() string { return m.name }

// Valid asserts the Member belongs to its Enum.
//
// Valid implements the other half of Enumerable.
func (m Member) Valid() error {
	if m.enum == nil {
		return fmt.Errorf("%w: member belongs to no enum", ErrNotValid)
	}

	if got, ok := m.enum.ByValue(m.value); !ok || got != m {
		return fmt.Errorf("%w: %s is not a member of %s", ErrNotValid, m.name, m.enum.name)
	}

	return nil
}
