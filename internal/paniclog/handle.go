// Package paniclog turns panics into errors,
// logging the panic and its stack trace.
package paniclog

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/abhinav/arpeggio/internal/log"
	"go.uber.org/multierr"
)

// Handle handles a panic value, logging it and the current stack trace
// at Error level. Returns the error version of the panic, if any.
func Handle(pval interface{}, logger *log.Logger) error {
	if pval == nil {
		return nil
	}

	logger.Error(fmt.Sprintf("panic: %v\n%s", pval, debug.Stack()))

	switch pval := pval.(type) {
	case string:
		return errors.New(pval)
	case error:
		return pval
	default:
		return fmt.Errorf("panic: %v", pval)
	}
}

// Recover recovers a panic and appends it into the given error pointer.
// Errors already in the pointer are kept.
func Recover(err *error, logger *log.Logger) {
	if pval := recover(); pval != nil {
		*err = multierr.Append(*err, Handle(pval, logger))
	}
}
