// Package server runs the control API of proxykeeperd.
//
// The server is started and stopped by a context, so the daemon runs it next
// to the job dispatcher and shuts both down on the same signal.
package server
