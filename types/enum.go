package types

// Enum defines an enumerated record field: a fixed, finite value set
// with a default. Template packages declare one Enum per status or
// priority field; operators route every assignment through Normalize
// or NormalizeKeep so an out-of-set value is never stored.
type Enum struct {
	// Name is the field identifier (e.g., "status", "priority")
	Name string

	// Values lists the valid values in display order
	Values []string

	// Default is used when no value (or an invalid one) is provided
	Default string
}

// Contains reports whether v is a member of the value set.
func (e Enum) Contains(v string) bool {
	for _, val := range e.Values {
		if val == v {
			return true
		}
	}
	return false
}

// Normalize maps an input value into the set: valid values pass
// through, anything else (including empty) becomes the default.
func (e Enum) Normalize(v string) string {
	if e.Contains(v) {
		return v
	}
	return e.Default
}

// NormalizeKeep maps an input value into the set, falling back to the
// record's current value rather than the default. Used by update
// operators so an invalid patch leaves the field untouched.
func (e Enum) NormalizeKeep(current, v string) string {
	if e.Contains(v) {
		return v
	}
	return current
}
