package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrNoRandSource         = errors.New("no random source")
)

type InvalidSetupError struct {
	Setup Setup
}

// [InvalidSetupError] implements [error]
func (e InvalidSetupError) Error() string {
	w, h, mc := e.Setup.Unpack()
	switch {
	case w <= 0:
		return fmt.Sprintf("%s: width must be positive, got %d", ErrInvalidConfiguration, w)
	case h <= 0:
		return fmt.Sprintf("%s: height must be positive, got %d", ErrInvalidConfiguration, h)
	case mc <= 0:
		return fmt.Sprintf("%s: mine count must be positive, got %d", ErrInvalidConfiguration, mc)
	case w > MaxCells/h:
		return fmt.Sprintf(
			"%s: grid of %d x %d is larger than %d cells",
			ErrInvalidConfiguration, w, h, MaxCells,
		)
	case mc >= w*h:
		return fmt.Sprintf(
			"%s: not enough space for %d mines (%d >= %d * %d)",
			ErrInvalidConfiguration, mc, mc, w, h,
		)
	default:
		return ErrInvalidConfiguration.Error()
	}
}

func (e InvalidSetupError) Unwrap() error {
	return ErrInvalidConfiguration
}
