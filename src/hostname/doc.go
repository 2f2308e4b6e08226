// Package hostname provides validated RFC 1123 hostnames and labels.
//
// Values are immutable and can only be produced by parsing, so code that
// accepts a Hostname never needs to validate it again.
package hostname
