package service

import "github.com/MKhiriev/go-proxy-keeper/models"

// Shortcut identity of the quick toggle.
const (
	ShortcutID   = "toggle"
	ShortcutName = "Quick toggle"
	ShortcutIcon = "ic_launcher"
)

// NewShortcutDescriptor describes how a launcher invokes the quick toggle
// through executable.
func NewShortcutDescriptor(executable string) models.ShortcutDescriptor {
	return models.ShortcutDescriptor{
		Launch: []string{executable, ShortcutID},
		Name:   ShortcutName,
		Icon:   ShortcutIcon,
	}
}
