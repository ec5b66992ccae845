// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/spf13/cobra"
)

// consoleNotifier prints transient messages on the command's output.
type consoleNotifier struct {
	out io.Writer
}

func (n consoleNotifier) Notify(msg string) {
	fmt.Fprintln(n.out, msg)
}

func (a *App) newToggleCmd() *cobra.Command {
	var createShortcut bool

	cmd := &cobra.Command{
		Use:   service.ShortcutID,
		Short: "Start the proxy if it is stopped, stop it if it is connected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if createShortcut {
				return a.printShortcut(cmd)
			}
			return a.runToggle(cmd)
		},
	}
	cmd.Flags().BoolVar(&createShortcut, "create-shortcut", false, "Print a launcher shortcut descriptor instead of toggling")

	return cmd
}

func (a *App) printShortcut(cmd *cobra.Command) error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(service.NewShortcutDescriptor(executable))
}

// runToggle launches a quick toggle and waits for it to finish, at most for
// the connect timeout. The binding is released on every path.
func (a *App) runToggle(cmd *cobra.Command) error {
	binder, err := a.deps.ServiceBinder(a.cfg.Service, a.logger)
	if err != nil {
		return fmt.Errorf("create service binder: %w", err)
	}

	ctx := cmd.Context()
	toggle := service.NewQuickToggle(binder, consoleNotifier{out: cmd.OutOrStdout()}, a.logger)
	defer toggle.Close()

	toggle.Launch(ctx)

	timer := time.NewTimer(a.cfg.Service.ConnectTimeout)
	defer timer.Stop()

	select {
	case <-toggle.Done():
	case <-timer.C:
		a.logger.Warn().Dur("timeout", a.cfg.Service.ConnectTimeout).Msg("proxy service did not become ready")
		return ErrToggleTimeout
	case <-ctx.Done():
		return ctx.Err()
	}

	result := toggle.Result()
	if result == service.ToggleFailed {
		return ErrToggleFailed
	}

	fmt.Fprintf(cmd.OutOrStdout(), "proxy %s\n", result)
	return nil
}
