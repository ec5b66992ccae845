// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ShortcutDescriptor is returned when the toggle is launched in
// shortcut-creation mode instead of toggling. A launcher uses it to create an
// entry that re-runs the toggle.
type ShortcutDescriptor struct {
	// Launch is the command line that performs the toggle.
	Launch []string `json:"launch"`

	// Name is the display name of the shortcut.
	Name string `json:"name"`

	// Icon is an icon resource reference understood by the launcher.
	Icon string `json:"icon"`
}
