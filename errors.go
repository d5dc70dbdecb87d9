package partitioner

import "errors"

var (
	// ErrInvalidConfig -- bad separator, formatter, frequency or escape character (returned by constructors)
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidArgument -- a value that isn't a valid calendar date
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRange -- 'since' is after 'until'
	ErrRange = errors.New("invalid range")
	// ErrUsage -- the pattern lacks the escape character or neither bound was given
	ErrUsage = errors.New("usage error")
)
