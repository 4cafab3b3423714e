package types

import "errors"

var (
	// ErrArgument reports a missing or invalid command line argument.
	ErrArgument = errors.New("invalid argument")

	// ErrFileAccess reports an unreadable input or an unwritable output.
	ErrFileAccess = errors.New("file access error")
)
