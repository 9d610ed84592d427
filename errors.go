package pflagx

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a lookup by name or title that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports a flag spelling that is exclusively claimed by an
	// existing option and could not be freed.
	ErrConflict = errors.New("flag spelling conflict")

	// ErrHelp is returned by Parse after help has been displayed.
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned by Parse after the version line has been printed.
	ErrVersion = errors.New("version requested")
)

func notFound(what, name string) error {
	return fmt.Errorf("%s %q: %w", what, name, ErrNotFound)
}

func conflict(spelling string) error {
	return fmt.Errorf("spelling %q already taken: %w", spelling, ErrConflict)
}
