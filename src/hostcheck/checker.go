package hostcheck

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Othello1111/ip4s/src/hostname"
	"github.com/dogmatiq/dodeca/logging"
	"golang.org/x/sync/errgroup"
)

// Checker validates hostnames read from one or more sources.
type Checker struct {
	normalize bool
	sort      bool
	unique    bool
	logger    logging.Logger
}

// NewChecker returns a new checker.
func NewChecker(options ...Option) (*Checker, error) {
	c := &Checker{}

	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.logger == nil {
		c.logger = logging.DefaultLogger
	}

	return c, nil
}

// Report is the result of checking a set of sources.
type Report struct {
	// Accepted is the list of valid hostnames.
	Accepted []hostname.Hostname

	// Rejected is the list of lines that are not valid hostnames, in the order
	// they were read.
	Rejected []Reject
}

// OK returns true if no hostnames were rejected.
func (r *Report) OK() bool {
	return len(r.Rejected) == 0
}

// Reject describes a line that is not a valid hostname.
type Reject struct {
	Source string
	Line   int
	Input  string
	Err    error
}

// Error returns a description of the rejection.
func (r Reject) Error() string {
	return fmt.Sprintf("%s:%d: %s", r.Source, r.Line, r.Err)
}

// Unwrap returns the parse error.
func (r Reject) Unwrap() error {
	return r.Err
}

// Run reads candidate hostnames from each of the sources concurrently and
// validates them.
//
// Each line is trimmed of surrounding whitespace. Blank lines, and lines
// beginning with '#', are ignored. Lines longer than 64 KiB are rejected with
// an error wrapping hostname.ErrInvalidLength.
//
// Hostnames from each source are reported in the order that the sources are
// given, regardless of the order in which they are read. It returns an error
// if any source can not be read, or if ctx is canceled.
func (c *Checker) Run(ctx context.Context, sources ...Source) (*Report, error) {
	results := make([]Report, len(sources))
	g, ctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		i, src := i, src // capture loop variables

		g.Go(func() error {
			r, err := c.check(ctx, src)
			if err != nil {
				logSourceError(c.logger, src.Name, err)
				return fmt.Errorf("unable to read hostnames from %s: %w", src.Name, err)
			}

			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return c.merge(results), nil
}

// check reads and validates each line of src.
func (c *Checker) check(ctx context.Context, src Source) (Report, error) {
	var r Report

	rc, err := src.Open()
	if err != nil {
		return r, err
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	line := 0

	for {
		if err := ctx.Err(); err != nil {
			return r, err
		}

		b, truncated, err := readLine(br)
		if err == io.EOF {
			return r, nil
		} else if err != nil {
			return r, err
		}

		line++
		text := strings.TrimSpace(string(b))

		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var h hostname.Hostname
		if truncated {
			err = fmt.Errorf(
				"line is longer than %d bytes: %w",
				maxLineLength,
				hostname.ErrInvalidLength,
			)
		} else {
			h, err = hostname.Parse(text)
		}

		if err != nil {
			rej := Reject{
				Source: src.Name,
				Line:   line,
				Input:  text,
				Err:    err,
			}

			logRejected(c.logger, rej)
			r.Rejected = append(r.Rejected, rej)

			continue
		}

		logAccepted(c.logger, src.Name, line, h)

		if c.normalize {
			h = h.Normalized()
		}

		r.Accepted = append(r.Accepted, h)
	}
}

// maxLineLength is the maximum number of bytes of a line that are retained.
// Longer lines are rejected without being parsed.
const maxLineLength = 64 * 1024

// readLine reads the next line from r, without the line terminator.
//
// If the line is longer than maxLineLength bytes, only the first
// maxLineLength bytes are returned, truncated is true, and the remainder of
// the line is discarded. It returns io.EOF when there are no more lines.
func readLine(r *bufio.Reader) (line []byte, truncated bool, err error) {
	for {
		chunk, isPrefix, readErr := r.ReadLine()
		if readErr != nil {
			return line, truncated, readErr
		}

		if !truncated {
			line = append(line, chunk...)

			if len(line) > maxLineLength {
				line = line[:maxLineLength]
				truncated = true
			}
		}

		if !isPrefix {
			return line, truncated, nil
		}
	}
}

// merge combines the per-source results into a single report.
func (c *Checker) merge(results []Report) *Report {
	report := &Report{}
	seen := map[hostname.Hostname]struct{}{}

	for _, r := range results {
		report.Rejected = append(report.Rejected, r.Rejected...)

		for _, h := range r.Accepted {
			if c.unique {
				if _, ok := seen[h]; ok {
					continue
				}
				seen[h] = struct{}{}
			}

			report.Accepted = append(report.Accepted, h)
		}
	}

	if c.sort {
		hostname.Sort(report.Accepted)
	}

	return report
}
