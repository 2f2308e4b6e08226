package hostcheck

import (
	"github.com/Othello1111/ip4s/src/hostname"
	"github.com/dogmatiq/dodeca/logging"
)

func logAccepted(logger logging.Logger, src string, line int, h hostname.Hostname) {
	logging.Debug(
		logger,
		"%s:%d: accepted '%s'",
		src,
		line,
		h,
	)
}

func logRejected(logger logging.Logger, r Reject) {
	logging.Log(
		logger,
		"%s:%d: %s",
		r.Source,
		r.Line,
		r.Err,
	)
}

func logSourceError(logger logging.Logger, src string, err error) {
	logging.Log(
		logger,
		"unable to read hostnames from %s: %s",
		src,
		err,
	)
}
