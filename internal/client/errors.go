package client

import "errors"

var (
	// ErrToggleTimeout is returned when the proxy service did not become
	// ready within the connect timeout.
	ErrToggleTimeout = errors.New("proxy service did not respond in time")

	// ErrToggleFailed is returned when the toggle could not reach or command
	// the proxy service.
	ErrToggleFailed = errors.New("toggle failed")

	// ErrJobNotSucceeded is returned by "acl sync" for any outcome other than
	// SUCCESS, so scripts can rely on the exit code.
	ErrJobNotSucceeded = errors.New("job did not succeed")
)
