package hostname

import "strings"

// Label is the part of a hostname contained within dots.
//
// Labels are only ever obtained from a valid Hostname, and are therefore
// always valid: 1 to 63 letters, digits or hyphens, neither beginning nor
// ending with a hyphen.
type Label struct {
	name string
}

// Normalized returns the lower-case form of the label.
func (l Label) Normalized() Label {
	return Label{strings.ToLower(l.name)}
}

// Equal returns true if l and o have identical canonical strings.
func (l Label) Equal(o Label) bool {
	return l.name == o.name
}

// Compare returns -1, 0 or +1 depending on whether l sorts before, equal to,
// or after o.
func (l Label) Compare(o Label) int {
	return strings.Compare(l.name, o.name)
}

// Less returns true if l sorts before o.
func (l Label) Less(o Label) bool {
	return l.name < o.name
}

// Hash returns a hash of the label that is consistent with Equal().
func (l Label) Hash() uint64 {
	return hash(labelSeed, l.name)
}

// Octets returns the label in the length-prefixed form used on the wire.
//
// See https://tools.ietf.org/html/rfc1035#section-3.1.
func (l Label) Octets() []byte {
	return append([]byte{byte(len(l.name))}, l.name...)
}

// MarshalText returns the canonical string as UTF-8 text.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.name), nil
}

// String returns the canonical string representation of the label.
func (l Label) String() string {
	return l.name
}
