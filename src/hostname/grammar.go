package hostname

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	hostnameMax = 253 // characters
	labelMax    = 63  // characters

	// labelPattern matches a single RFC 1123 label. Unlike RFC 952, a label
	// may begin with a digit.
	labelPattern = `[a-zA-Z0-9](?:[-a-zA-Z0-9]{0,61}[a-zA-Z0-9])?`

	// hostnamePattern matches one or more labels separated by single dots.
	hostnamePattern = labelPattern + `(?:\.` + labelPattern + `)*`
)

var (
	labelRegex    = regexp.MustCompile("^" + labelPattern + "$")
	hostnameRegex = regexp.MustCompile("^" + hostnamePattern + "$")
)

// isLabel returns true if s is a valid hostname label.
func isLabel(s string) bool {
	return labelRegex.MatchString(s)
}

// isHostname returns true if s matches the hostname grammar. It does not
// check the overall length.
func isHostname(s string) bool {
	return hostnameRegex.MatchString(s)
}

// diagnose explains why s does not match the hostname grammar.
//
// It is only called after the grammar has rejected s, and is used to build
// a human-readable error message.
func diagnose(s string) string {
	parts := strings.Split(s, ".")

	for i, l := range parts {
		if isLabel(l) {
			continue
		}

		switch {
		case l == "" && i == 0:
			return "unexpected leading dot"
		case l == "" && i == len(parts)-1:
			return "unexpected trailing dot"
		case l == "":
			return "contains an empty label"
		}

		for _, c := range l {
			if !isLabelChar(c) {
				return fmt.Sprintf("label '%s' contains unexpected character %q", l, c)
			}
		}

		// l is ASCII from here on, so bytes and characters coincide.
		if len(l) > labelMax {
			return fmt.Sprintf(
				"label '%s' is too long (%d characters > %d max)",
				l,
				len(l),
				labelMax,
			)
		}

		if l[0] == '-' {
			return fmt.Sprintf("label '%s' begins with a hyphen", l)
		}

		return fmt.Sprintf("label '%s' ends with a hyphen", l)
	}

	return "does not match the hostname grammar"
}

func isLabelChar(c rune) bool {
	return c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
