package hostname

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrInvalidLength indicates that a hostname is empty or longer than 253
	// characters. Length is measured in characters, not bytes.
	ErrInvalidLength = errors.New("invalid hostname length")

	// ErrInvalidSyntax indicates that a hostname does not match the RFC 1123
	// grammar.
	ErrInvalidSyntax = errors.New("invalid hostname syntax")
)

// Hostname is an RFC 1123 internet host name, such as "www.example.com".
//
// A Hostname can only be obtained from Parse (or one of its variants), and is
// therefore always valid. The original casing of the input is preserved; use
// Normalized() to obtain the lower-case form.
//
// Hostname values are comparable. Two hostnames are == if and only if their
// canonical strings are identical.
//
// See https://tools.ietf.org/html/rfc1123#section-2 (2.1).
type Hostname struct {
	name string
}

// Parse parses s as a hostname.
//
// It returns an error wrapping ErrInvalidLength or ErrInvalidSyntax if s is
// not a valid hostname.
func Parse(s string) (Hostname, error) {
	if s == "" {
		return Hostname{}, fmt.Errorf("hostname must not be empty: %w", ErrInvalidLength)
	}

	if n := utf8.RuneCountInString(s); n > hostnameMax {
		return Hostname{}, fmt.Errorf(
			"hostname '%s' is invalid, too long (%d characters > %d max): %w",
			s,
			n,
			hostnameMax,
			ErrInvalidLength,
		)
	}

	if !isHostname(s) {
		return Hostname{}, fmt.Errorf(
			"hostname '%s' is invalid, %s: %w",
			s,
			diagnose(s),
			ErrInvalidSyntax,
		)
	}

	h := Hostname{s}

	if h.NumLabels() == 0 {
		return Hostname{}, fmt.Errorf("hostname '%s' is invalid, no labels: %w", s, ErrInvalidSyntax)
	}

	return h, nil
}

// MustParse parses s as a hostname.
// It panics if s is invalid.
func MustParse(s string) Hostname {
	h, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return h
}

// IsValid returns true if s is a valid hostname.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Labels returns the labels that form the hostname, from left to right.
//
// The returned slice is owned by the caller.
func (h Hostname) Labels() []Label {
	if h.name == "" {
		return nil
	}

	parts := strings.Split(h.name, ".")
	labels := make([]Label, len(parts))

	for i, p := range parts {
		labels[i] = Label{p}
	}

	return labels
}

// NumLabels returns the number of labels in the hostname.
func (h Hostname) NumLabels() int {
	if h.name == "" {
		return 0
	}
	return strings.Count(h.name, ".") + 1
}

// Label returns the i'th label of the hostname, counting from the left.
// It panics if i is out of range.
func (h Hostname) Label(i int) Label {
	return h.Labels()[i]
}

// Normalized returns the lower-case form of the hostname.
//
// The result is always valid, as the grammar is case-insensitive.
func (h Hostname) Normalized() Hostname {
	return Hostname{strings.ToLower(h.name)}
}

// Equal returns true if h and o have identical canonical strings.
//
// Comparison is case-sensitive; compare the Normalized() forms to ignore case.
func (h Hostname) Equal(o Hostname) bool {
	return h.name == o.name
}

// Compare returns -1, 0 or +1 depending on whether h sorts before, equal to,
// or after o. Hostnames are ordered by byte-wise comparison of their
// canonical strings.
func (h Hostname) Compare(o Hostname) int {
	return strings.Compare(h.name, o.name)
}

// Less returns true if h sorts before o.
func (h Hostname) Less(o Hostname) bool {
	return h.name < o.name
}

// Hash returns a hash of the hostname that is consistent with Equal().
func (h Hostname) Hash() uint64 {
	return hash(hostnameSeed, h.name)
}

// IsZero returns true if h is the zero value, which is not a valid hostname.
func (h Hostname) IsZero() bool {
	return h.name == ""
}

// String returns the canonical string representation of the hostname, which
// is exactly the string that was parsed.
func (h Hostname) String() string {
	return h.name
}

// Sort sorts hostnames in place, in the order defined by Compare().
func Sort(hosts []Hostname) {
	sort.Slice(hosts, func(i, j int) bool {
		return hosts[i].Less(hosts[j])
	})
}

const (
	hostnameSeed = "hostname\x00"
	labelSeed    = "label\x00"
)

// hash returns the hash of s, discriminated by seed so that values of
// different types with the same content do not collide.
func hash(seed, s string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(seed)
	_, _ = d.WriteString(s)
	return d.Sum64()
}
