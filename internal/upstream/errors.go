package upstream

import "errors"

// ErrUnavailable covers network failures, timeouts and non-2xx responses
// from any of the external services this app depends on.
var ErrUnavailable = errors.New("upstream unavailable")

// ErrMalformed means an upstream body decoded, but a field the app needs
// is absent or has the wrong shape.
var ErrMalformed = errors.New("malformed upstream response")
