package ir

import "errors"

// ErrBadAccess is returned when a typed accessor is used against the wrong
// variant, or when a write is attempted through an unmaterializable Ref.
var ErrBadAccess = errors.New("bad access")
