package hostcheck

import (
	"io"
	"os"
	"strings"
)

// Source is a named stream of candidate hostnames, one per line.
type Source struct {
	// Name identifies the source in reports and log messages.
	Name string

	// Open returns a reader for the content of the source.
	Open func() (io.ReadCloser, error)
}

// FileSource returns a source that reads from the file at path.
//
// If path is "-", the source reads from standard input.
func FileSource(path string) Source {
	if path == "-" {
		return ReaderSource("stdin", os.Stdin)
	}

	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// FileSources returns a source for each of the given paths.
//
// If paths is empty, a single source that reads from standard input is
// returned. Standard input can only be read once, so only the first "-" in
// paths produces a source.
func FileSources(paths ...string) []Source {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var (
		sources []Source
		stdin   bool
	)

	for _, p := range paths {
		if p == "-" {
			if stdin {
				continue
			}
			stdin = true
		}

		sources = append(sources, FileSource(p))
	}

	return sources
}

// ReaderSource returns a source that reads from r.
func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	}
}

// StringSource returns a source that reads each element of names as a
// separate line.
func StringSource(name string, names ...string) Source {
	return ReaderSource(
		name,
		strings.NewReader(strings.Join(names, "\n")),
	)
}
