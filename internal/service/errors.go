package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrAlreadyAttached = errors.New("service connection already attached")
	ErrBindFailed      = errors.New("service bind failed")
	ErrDetached        = errors.New("service connection detached")

	ErrInvalidRoute    = errors.New("invalid route")
	ErrJobNotFound     = errors.New("job request not found")
	ErrUnknownJobKind  = errors.New("unknown job kind")
	ErrMalformedJobTag = errors.New("malformed job tag")

	// ErrJobPanicked wraps a value recovered from a panicking job.
	ErrJobPanicked = errors.New("job panicked")
)
