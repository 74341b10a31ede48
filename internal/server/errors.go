package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no HTTP handler was
// configured.
var errNoServersAreCreated = errors.New("no servers are created: http handler is missing")
