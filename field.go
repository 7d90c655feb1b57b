package waypoint

import "fmt"

// A Field adapts an Enum into a schema field:
// it validates raw values, translates Members to and from the physical
// representation a storage layer persists, and presents the ordered ChoiceList
// a form layer renders.
//
// A Field either fails construction - no partially valid Field ever exists -
// or is ready and immutable, safe for unsynchronized concurrent reads.
type Field struct {
	enum     *Enum
	kind     Kind
	nullable bool
	choices  ChoiceList
	messages map[string]string
}

type fieldCfg struct {
	nullable bool
	choices  []any
	messages map[string]string
}

// A FieldOpt is a functional option configuring a Field when constructing a new one.
type FieldOpt func(*fieldCfg)

// WithNullable permits absence: coercing nil yields no Member and no error,
// and the storage representation of absence is the storage layer's null.
func WithNullable() FieldOpt {
	return func(cfg *fieldCfg) {
		cfg.nullable = true
	}
}

// WithChoices restricts the Field's ChoiceList to the given subset,
// in the order given. Each choice may be a Member or a raw primitive value;
// anything that does not coerce against the Field's Enum fails construction.
//
// Choices restrict presentation only: ToStorage and ToDomain still accept any
// member of the full Enum, matching long-observed field behavior. Callers
// wanting submission limited to the subset must check ChoiceList.Contains
// themselves.
func WithChoices(choices ...any) FieldOpt {
	return func(cfg *fieldCfg) {
		cfg.choices = choices
	}
}

// WithMessages overrides entries in the Field's message table by error code.
//
// Templates are fmt format strings. CodeInvalidValue receives (raw value,
// enum name); CodeInvalidType receives (expected enum name, actual enum name,
// raw value).
func WithMessages(messages map[string]string) FieldOpt {
	return func(cfg *fieldCfg) {
		cfg.messages = messages
	}
}

// NewField binds enum to the physical column kind, applying any opts.
//
// NewField validates everything a value coercion would otherwise trip over at
// runtime: enum must be a well-formed Enum (ConfigError, CodeNotAnEnum), kind
// must be supported and able to hold every member's primitive value
// (ConfigError, CodeUnsupportedKind), and any restricted choices must coerce
// against enum (ConfigError, CodeInvalidChoice).
func NewField(enum *Enum, kind Kind, opts ...FieldOpt) (*Field, error) {
	var cfg fieldCfg
	for _, opt := range opts {
		opt(&cfg)
	}

	if enum == nil || len(enum.members) == 0 {
		return nil, ConfigError{Code: CodeNotAnEnum, Reason: "a Field requires an Enum with members"}
	}

	if err := kind.Valid(); err != nil {
		return nil, ConfigError{Code: CodeUnsupportedKind, Reason: err.Error()}
	}

	if !kind.compatible(enum.primitive) {
		reason := fmt.Sprintf("%s cannot hold %s primitives of %s", kind, enum.primitive, enum.name)
		return nil, ConfigError{Code: CodeUnsupportedKind, Reason: reason}
	}

	for _, m := range enum.members {
		if err := kind.fits(m.value); err != nil {
			reason := fmt.Sprintf("%s.%s: %s", enum.name, m.name, err)
			return nil, ConfigError{Code: CodeUnsupportedKind, Reason: reason}
		}
	}

	f := &Field{
		enum:     enum,
		kind:     kind,
		nullable: cfg.nullable,
	}

	choices, err := buildChoices(enum, cfg.choices)
	if err != nil {
		return nil, err
	}
	f.choices = choices

	f.messages = kind.defaultMessages()
	f.messages[CodeInvalidValue] = "%v is not a valid value for the %s enum"
	f.messages[CodeInvalidType] = "the %s enum is configured but received a member of %s (%v)"
	for code, tmpl := range cfg.messages {
		f.messages[code] = tmpl
	}

	return f, nil
}

// buildChoices derives the ChoiceList once, at construction.
// With no restriction, every member appears in declaration order.
func buildChoices(enum *Enum, restricted []any) (ChoiceList, error) {
	if restricted == nil {
		cl := make(ChoiceList, 0, len(enum.members))
		for _, m := range enum.members {
			cl = append(cl, Choice{Value: m.value, Member: m})
		}

		return cl, nil
	}

	cl := make(ChoiceList, 0, len(restricted))
	for _, raw := range restricted {
		m, err := Coerce(enum, raw, false)
		if err != nil {
			reason := fmt.Sprintf("%v does not coerce against %s: %s", raw, enum.name, err)
			return nil, ConfigError{Code: CodeInvalidChoice, Reason: reason}
		}

		cl = append(cl, Choice{Value: m.value, Member: *m})
	}

	return cl, nil
}

// Enum returns the Enum the Field binds.
func (f *Field) Enum() *Enum { return f.enum }

// Kind returns the physical column kind the Field persists into.
func (f *Field) Kind() Kind { return f.kind }

// Nullable asserts whether the Field permits absence.
func (f *Field) Nullable() bool { return f.nullable }

// Choices returns the Field's ChoiceList for validation or rendering.
// The ordering rules are documented on ChoiceList.
func (f *Field) Choices() ChoiceList {
	cl := make(ChoiceList, len(f.choices))
	copy(cl, f.choices)
	return cl
}

// Message returns the message template registered for code, or "".
func (f *Field) Message(code string) string { return f.messages[code] }

// ToStorage coerces value and returns the primitive the storage layer persists.
// Absence returns (nil, nil) - the storage layer's null - when the Field is
// nullable, and an InvalidValueError otherwise.
func (f *Field) ToStorage(value any) (any, error) {
	m, err := Coerce(f.enum, value, f.nullable)
	if err != nil {
		return nil, f.reword(err)
	}

	if m == nil {
		return nil, nil
	}

	return m.value, nil
}

// FromStorage decodes a previously persisted primitive back into a Member.
//
// FromStorage re-validates: a corrupted or externally written value that no
// longer matches any member fails with an InvalidValueError rather than
// passing through silently.
func (f *Field) FromStorage(primitive any) (*Member, error) {
	m, err := Coerce(f.enum, primitive, f.nullable)
	if err != nil {
		return nil, f.reword(err)
	}

	return m, nil
}

// ToDomain coerces a value arriving from untrusted external input,
// such as a form submission, ahead of persistence.
//
// The coercion path is identical to ToStorage's, but an empty string also
// denotes absence, since that is how a form submits no selection.
// Failures here are expected with untrusted input; report them per-field
// rather than escalating.
func (f *Field) ToDomain(value any) (*Member, error) {
	if s, ok := value.(string); ok && s == "" {
		value = nil
	}

	m, err := Coerce(f.enum, value, f.nullable)
	if err != nil {
		return nil, f.reword(err)
	}

	return m, nil
}

// reword re-raises a coercion error with the Field's message template
// substituted in, preserving the error's code and payload so upstream layers
// can still match on it.
func (f *Field) reword(err error) error {
	switch e := err.(type) {
	case InvalidValueError:
		e.msg = fmt.Sprintf(f.messages[CodeInvalidValue], e.Raw, e.Enum)
		return e

	case InvalidTypeError:
		e.msg = fmt.Sprintf(f.messages[CodeInvalidType], e.Expected, e.Actual, e.Raw)
		return e

	default:
		return err
	}
}
