package types

import "github.com/pkg/errors"

// ErrInvalidRequest is returned when a request or floor does not fit the building.
var ErrInvalidRequest = errors.New("invalid request")
