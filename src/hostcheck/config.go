package hostcheck

import (
	"fmt"

	"github.com/dogmatiq/dodeca/config"
	"github.com/dogmatiq/dodeca/logging"
)

const (
	// NormalizeKey is the configuration key that enables the Normalize option.
	NormalizeKey = "HOSTCHECK_NORMALIZE"

	// SortKey is the configuration key that enables the Sort option.
	SortKey = "HOSTCHECK_SORT"

	// UniqueKey is the configuration key that enables the Unique option.
	UniqueKey = "HOSTCHECK_UNIQUE"

	// DebugKey is the configuration key that enables debug logging.
	DebugKey = "HOSTCHECK_DEBUG"
)

// FromConfig returns the checker options described by b.
//
// Each key is a boolean, and defaults to false.
func FromConfig(b config.Bucket) (options []Option, err error) {
	defer func() {
		// dodeca's As*() functions panic if a value is malformed.
		if r := recover(); r != nil {
			options = nil
			err = fmt.Errorf("invalid hostcheck configuration: %v", r)
		}
	}()

	if config.AsBoolDefault(b, NormalizeKey, false) {
		options = append(options, Normalize)
	}

	if config.AsBoolDefault(b, SortKey, false) {
		options = append(options, Sort)
	}

	if config.AsBoolDefault(b, UniqueKey, false) {
		options = append(options, Unique)
	}

	if config.AsBoolDefault(b, DebugKey, false) {
		options = append(options, UseLogger(logging.DebugLogger))
	}

	return options, nil
}
