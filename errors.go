package ns

import "errors"

// ErrNotContainer is returned when a keypath walks through a value that is not a container.
var ErrNotContainer = errors.New("keypath blocked by non-container value")

// ErrRootSlot is returned when a non-record value is registered at the root keypath.
// The root can only be replaced through WithModules.
var ErrRootSlot = errors.New("root can only be replaced with WithModules")
