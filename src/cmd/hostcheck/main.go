// Command hostcheck validates RFC 1123 hostnames, one per line.
//
// Hostnames are read from each file named on the command line, or from
// standard input if no files are given. A file name of "-" also refers to
// standard input, which is read at most once. Valid hostnames are written to
// standard output, invalid ones are logged.
//
// The exit status is 0 if every hostname is valid, 1 if any hostname is
// invalid, and 2 if the input could not be read.
//
// Behaviour is configured by the HOSTCHECK_NORMALIZE, HOSTCHECK_SORT,
// HOSTCHECK_UNIQUE and HOSTCHECK_DEBUG environment variables.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/Othello1111/ip4s/src/hostcheck"
	"github.com/dogmatiq/dodeca/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	options, err := hostcheck.FromConfig(config.Environment())
	if err != nil {
		log.Print(err)
		return 2
	}

	c, err := hostcheck.NewChecker(options...)
	if err != nil {
		log.Print(err)
		return 2
	}

	sources := hostcheck.FileSources(os.Args[1:]...)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	r, err := c.Run(ctx, sources...)
	if err != nil {
		log.Print(err)
		return 2
	}

	w := bufio.NewWriter(os.Stdout)
	for _, h := range r.Accepted {
		fmt.Fprintln(w, h)
	}

	if err := w.Flush(); err != nil {
		log.Print(err)
		return 2
	}

	if !r.OK() {
		return 1
	}

	return 0
}
