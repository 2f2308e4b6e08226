package hostcheck

import "github.com/dogmatiq/dodeca/logging"

// Option is a function that applies an option to a checker created by
// NewChecker().
type Option func(*Checker) error

// UseLogger returns a checker option that sets the logger used by the
// checker.
func UseLogger(l logging.Logger) Option {
	return func(c *Checker) error {
		c.logger = l
		return nil
	}
}

// Normalize is a checker option that reports accepted hostnames in their
// lower-case form.
func Normalize(c *Checker) error {
	c.normalize = true
	return nil
}

// Sort is a checker option that reports accepted hostnames in canonical
// order, rather than the order in which they were read.
func Sort(c *Checker) error {
	c.sort = true
	return nil
}

// Unique is a checker option that reports each accepted hostname only once.
//
// When combined with Normalize, hostnames that differ only in case are
// considered duplicates.
func Unique(c *Checker) error {
	c.unique = true
	return nil
}
