package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration provides no listen address, resulting in no transport
// handlers being initialized. This is treated as a fatal misconfiguration
// and causes the application to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
