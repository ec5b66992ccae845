package workers

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

type systemConditions struct {
	cfg        config.Workers
	interfaces func() ([]net.Interface, error)

	logger *logger.Logger
}

// NewSystemConditions reads the network state from the interfaces that are
// up and the power state from the sysfs power supply class.
func NewSystemConditions(cfg config.Workers, logger *logger.Logger) Conditions {
	return &systemConditions{
		cfg:        cfg,
		interfaces: net.Interfaces,
		logger:     logger,
	}
}

// Network reports OFFLINE when no interface besides loopback is up,
// UNMETERED when at least one of them does not match a metered prefix and
// METERED otherwise.
func (c *systemConditions) Network(_ context.Context) models.NetworkState {
	if c.cfg.ForceUnmetered {
		return models.NetworkUnmeteredState
	}

	ifaces, err := c.interfaces()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to list network interfaces")
		return models.NetworkOffline
	}

	state := models.NetworkOffline
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if !c.isMetered(iface.Name) {
			return models.NetworkUnmeteredState
		}
		state = models.NetworkMetered
	}

	return state
}

func (c *systemConditions) isMetered(name string) bool {
	for _, prefix := range c.cfg.MeteredInterfaces {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Charging reports true when an external supply (mains, USB) is online, a
// battery reports Charging or Full, or the machine has no battery at all.
func (c *systemConditions) Charging(_ context.Context) bool {
	if c.cfg.ForceCharging {
		return true
	}

	entries, err := os.ReadDir(c.cfg.PowerSupplyDir)
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("dir", c.cfg.PowerSupplyDir).Msg("failed to read power supplies")
		return false
	}

	hasBattery := false
	for _, entry := range entries {
		dir := filepath.Join(c.cfg.PowerSupplyDir, entry.Name())

		switch readAttr(dir, "type") {
		case "Battery":
			hasBattery = true
			switch readAttr(dir, "status") {
			case "Charging", "Full":
				return true
			}
		case "Mains", "USB", "USB_C", "USB_PD", "Wireless":
			if readAttr(dir, "online") == "1" {
				return true
			}
		}
	}

	return !hasBattery
}

func readAttr(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
