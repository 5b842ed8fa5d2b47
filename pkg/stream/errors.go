package stream

import "errors"

// ErrBindFailed is returned by New when every port attempt failed.
// Operations on a closed server are silent no-ops and return no error.
var ErrBindFailed = errors.New("stream: bind failed")
