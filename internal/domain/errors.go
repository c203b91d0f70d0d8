package domain

import (
	"errors"
	"fmt"
)

// ErrNoRoute reports a well-formed provider response that carries no usable route,
// e.g. unknown addresses, a denied key or an exhausted quota.
var ErrNoRoute = errors.New("no route found")

// TransportError reports a directions call that could not complete:
// the request failed on the network, returned a non-2xx status, or
// carried a body that is not a directions document.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
