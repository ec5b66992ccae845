package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		DataDir string `json:"data_dir"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Service struct {
		Address        string   `json:"address"`
		ConnectTimeout Duration `json:"connect_timeout"`
		CallTimeout    Duration `json:"call_timeout"`
	} `json:"service,omitempty"`

	ACL struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"acl,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string  `json:"http_address"`
		RateLimit   float64 `json:"rate_limit"`
		RateBurst   int     `json:"rate_burst"`
	} `json:"server,omitempty"`

	Workers struct {
		PollInterval      Duration `json:"poll_interval"`
		ScheduleRoutes    []string `json:"schedule_routes"`
		MeteredInterfaces []string `json:"metered_interfaces"`
		ForceUnmetered    bool     `json:"force_unmetered"`
		ForceCharging     bool     `json:"force_charging"`
		PowerSupplyDir    string   `json:"power_supply_dir"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DataDir: jsonCfg.App.DataDir,
			Version: jsonCfg.App.Version,
		},
		Service: Service{
			Address:        jsonCfg.Service.Address,
			ConnectTimeout: time.Duration(jsonCfg.Service.ConnectTimeout),
			CallTimeout:    time.Duration(jsonCfg.Service.CallTimeout),
		},
		ACL: ACL{
			BaseURL:        jsonCfg.ACL.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.ACL.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
			RateLimit:   jsonCfg.Server.RateLimit,
			RateBurst:   jsonCfg.Server.RateBurst,
		},
		Workers: Workers{
			PollInterval:      time.Duration(jsonCfg.Workers.PollInterval),
			ScheduleRoutes:    jsonCfg.Workers.ScheduleRoutes,
			MeteredInterfaces: jsonCfg.Workers.MeteredInterfaces,
			ForceUnmetered:    jsonCfg.Workers.ForceUnmetered,
			ForceCharging:     jsonCfg.Workers.ForceCharging,
			PowerSupplyDir:    jsonCfg.Workers.PowerSupplyDir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
