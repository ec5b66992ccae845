package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// flagValues keeps the targets of registered flags until the command line
// has been parsed.
type flagValues struct {
	cfg           *StructuredConfig
	serverAddress NetAddress
}

// RegisterFlags registers all configuration flags on fs and returns the
// config they populate. The returned value is filled in place by fs.Parse,
// which cobra calls before running a command; pass it to
// [GetStructuredConfig] afterwards.
//
// Flags:
//
//	-c/--config            json file path with configs
//	--data-dir             private data directory
//	-s/--service-address   gRPC target of the proxy service
//	--connect-timeout      service binding timeout (e.g. "10s")
//	--call-timeout         per-call service timeout (e.g. "5s")
//	--acl-base-url         rule list base URL
//	--acl-timeout          rule list download timeout
//	-d/--database-dsn      job database DSN
//	-a/--address           control API address in format [host]:[port]
//	--poll-interval        dispatcher poll interval
//	--schedule-routes      routes scheduled on daemon start
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	v := &flagValues{cfg: &StructuredConfig{}}
	cfg := v.cfg

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.DataDir, "data-dir", "", "Private data directory")
	fs.StringVarP(&cfg.Service.Address, "service-address", "s", "", "Proxy service gRPC target")
	fs.DurationVar(&cfg.Service.ConnectTimeout, "connect-timeout", 0, "Service binding timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Service.CallTimeout, "call-timeout", 0, "Service call timeout (e.g., 5s)")
	fs.StringVar(&cfg.ACL.BaseURL, "acl-base-url", "", "Rule list base URL")
	fs.DurationVar(&cfg.ACL.RequestTimeout, "acl-timeout", 0, "Rule list download timeout (e.g., 30s)")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database-dsn", "d", "", "Job database DSN")
	fs.VarP(&serverAddressValue{v}, "address", "a", "Control API net address host:port")
	fs.DurationVar(&cfg.Workers.PollInterval, "poll-interval", 0, "Dispatcher poll interval (e.g., 1m)")
	fs.StringSliceVar(&cfg.Workers.ScheduleRoutes, "schedule-routes", nil, "Routes scheduled on start")

	return cfg
}

// serverAddressValue validates the address through NetAddress and mirrors it
// into Server.HTTPAddress.
type serverAddressValue struct {
	v *flagValues
}

func (s *serverAddressValue) String() string {
	return s.v.serverAddress.String()
}

func (s *serverAddressValue) Set(raw string) error {
	if err := s.v.serverAddress.Set(raw); err != nil {
		return err
	}
	s.v.cfg.Server.HTTPAddress = s.v.serverAddress.String()
	return nil
}

func (s *serverAddressValue) Type() string {
	return s.v.serverAddress.Type()
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
