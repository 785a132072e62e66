package group

import "errors"

// ErrStopped is returned when stopping a manager that is already stopped.
var ErrStopped = errors.New("group: manager stopped")
