// Package config loads runtime configuration for the teamboard client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/-config or $TEAMBOARD_CONFIG:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "session_dir": ".teamboard"
//	}
//
//  3. Command-line flags -a, -r (seconds) and -d.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the teamboard client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the server gRPC endpoint.
//   - RequestTimeout: deadline applied to every call.
//   - SessionDir: directory, relative to the working directory, holding the
//     saved session token.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	SessionDir         string
}

// ValueFlags lists every flag of the client that consumes a value.
var ValueFlags = []string{"-a", "-r", "-d", "-c", "-config", "--config"}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.SessionDir = ".teamboard"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
