package plotstyle

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package and by plotkit. Callers should
// match with errors.Is; every validation failure unwraps to
// ErrInvalidArgument.
var (
	// ErrInvalidArgument indicates a caller passed a value the helpers cannot
	// work with (unknown palette, bad variable list, non-finite coordinate).
	ErrInvalidArgument = errors.New("plotstyle: invalid argument")

	// ErrUnknownPalette indicates a palette identifier outside the fixed set.
	ErrUnknownPalette = fmt.Errorf("unknown palette: %w", ErrInvalidArgument)
)
