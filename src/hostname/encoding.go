package hostname

import (
	"fmt"

	"github.com/miekg/dns"
)

// FQDN returns the hostname as a fully-qualified domain name, that is, with
// a trailing dot, as used by DNS systems.
func (h Hostname) FQDN() string {
	if h.name == "" {
		return ""
	}
	return dns.Fqdn(h.name)
}

// Octets returns the hostname in the uncompressed wire format used by DNS
// messages, including the terminating root label.
//
// It returns nil if h is the zero value.
//
// See https://tools.ietf.org/html/rfc1035#section-3.1.
func (h Hostname) Octets() []byte {
	if h.name == "" {
		return nil
	}

	// A valid hostname is at most 253 characters, which packs into at most
	// 255 octets.
	buf := make([]byte, hostnameMax+2)

	n, err := dns.PackDomainName(h.FQDN(), buf, 0, nil, false)
	if err != nil {
		panic(fmt.Sprintf("unable to pack hostname '%s': %s", h.name, err))
	}

	return buf[:n]
}

// IsSubdomainOf returns true if h is equal to parent, or is a subdomain of
// parent. Comparison is case-insensitive.
func (h Hostname) IsSubdomainOf(parent Hostname) bool {
	if h.name == "" || parent.name == "" {
		return false
	}

	return dns.IsSubDomain(
		parent.Normalized().FQDN(),
		h.Normalized().FQDN(),
	)
}

// MarshalText returns the canonical string as UTF-8 text.
func (h Hostname) MarshalText() ([]byte, error) {
	return []byte(h.name), nil
}

// UnmarshalText parses text as a hostname.
func (h *Hostname) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*h = v
	return nil
}
