package adapter

import "errors"

var (
	// ErrRemoteCall wraps every failure of a call to the proxy service.
	ErrRemoteCall = errors.New("remote call failed")

	// ErrIO marks transport failures (connection, timeout, bad status,
	// truncated body). Jobs treat these as transient.
	ErrIO = errors.New("i/o failure")

	// ErrUnexpectedStatus is wrapped together with ErrIO when the server
	// answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)
