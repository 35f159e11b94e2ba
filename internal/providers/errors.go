package providers

import (
	"errors"
)

// ErrNoUpdateAvailable is returned when no update metadata is published for the requested platform.
var ErrNoUpdateAvailable = errors.New("no update available")
