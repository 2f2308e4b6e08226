// Package hostvalidator integrates RFC 1123 hostname validation with
// github.com/go-playground/validator.
package hostvalidator

import (
	"reflect"

	"github.com/Othello1111/ip4s/src/hostname"
	"github.com/go-playground/validator/v10"
)

// Tag is the struct tag that validates a field as an RFC 1123 hostname.
const Tag = "rfc1123_hostname"

// Register adds the hostname validation tag to v.
//
// It also registers hostname.Hostname as a custom type, so that fields of
// that type are validated against their canonical string. This allows the
// "required" tag to reject a zero-value Hostname.
func Register(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(canonicalString, hostname.Hostname{})
	return v.RegisterValidation(Tag, isHostname)
}

// New returns a new validator with the hostname validation tag registered.
func New() *validator.Validate {
	v := validator.New()

	if err := Register(v); err != nil {
		// Registration only fails for an empty tag or nil function.
		panic(err)
	}

	return v
}

// canonicalString returns the string form of a hostname.Hostname field.
func canonicalString(field reflect.Value) interface{} {
	if h, ok := field.Interface().(hostname.Hostname); ok {
		return h.String()
	}
	return nil
}

// isHostname is a validator.Func that returns true if the field is a valid
// hostname.
func isHostname(fl validator.FieldLevel) bool {
	f := fl.Field()

	if f.Kind() != reflect.String {
		return false
	}

	return hostname.IsValid(f.String())
}
