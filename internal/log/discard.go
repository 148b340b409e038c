package log

import "io"

// Discard is a logger that discards all its operations.
var Discard = newLogger(&handler{
	W:     io.Discard,
	Level: discard,
})
