// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
)

// mapStoreError translates store sentinels into service errors. The store
// error stays in the chain, so errors.Is matches both.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrInvalidRoute):
		return fmt.Errorf("%w: %w", ErrInvalidRoute, err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrJobNotFound, err)
	default:
		return err
	}
}

// isIOError reports whether err came from moving bytes over the network or
// to disk. Such failures are worth retrying later.
func isIOError(err error) bool {
	if errors.Is(err, adapter.ErrIO) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
