package waypoint

// A Choice pairs a Member with the primitive value it persists and submits as.
type Choice struct {
	Value  any
	Member Member
}

// A ChoiceList is the ordered set of Choices a Field presents for selection.
//
// Order is the Enum's declaration order,
// or the order of the restricted subset the Field was constructed with.
// A ChoiceList is built once at Field construction and never mutated.
type ChoiceList []Choice

// Values returns the primitive value of every Choice, in order.
func (cl ChoiceList) Values() []any {
	values := make([]any, len(cl))
	for i, c := range cl {
		values[i] = c.Value
	}

	return values
}

// Members returns the Member of every Choice, in order.
func (cl ChoiceList) Members() []Member {
	members := make([]Member, len(cl))
	for i, c := range cl {
		members[i] = c.Member
	}

	return members
}

// Contains asserts whether m is one of the Choices.
func (cl ChoiceList) Contains(m Member) bool {
	for _, c := range cl {
		if c.Member == m {
			return true
		}
	}

	return false
}
