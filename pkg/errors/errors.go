package errors

import "errors"

// ErrSilenceExit exits the process with a non-zero code without printing
// anything, the command has already reported the problem.
var ErrSilenceExit = errors.New("silence exit")
