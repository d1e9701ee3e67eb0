package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string

	// Gateways is the ordered fallback list for metadata resolution;
	// CanonicalGateway is the single base used when rewriting image
	// references for display.
	Gateways         []string
	CanonicalGateway string

	UnitDecimals   int
	GatewayTimeout time.Duration
	RefreshCron    string

	EnableAutoRefresh bool
	EnableDevSeed     bool
}

var defaultGateways = []string{
	"https://ipfs.io/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://dweb.link/ipfs/",
}

// fileConfig is the optional YAML layer, pointed at by FUNDBOARD_CONFIG.
// Environment variables override file values.
type fileConfig struct {
	Gateways         []string `yaml:"gateways"`
	CanonicalGateway string   `yaml:"canonical_gateway"`
	Schedule         struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
}

func Load() (Config, error) {
	cfg := Config{
		ServiceName:       "fundboard",
		HTTPPort:          "8080",
		Gateways:          defaultGateways,
		UnitDecimals:      18,
		GatewayTimeout:    15 * time.Second,
		RefreshCron:       "0 */2 * * * *",
		EnableAutoRefresh: envBool("ENABLE_AUTO_REFRESH", true),
		EnableDevSeed:     envBool("ENABLE_DEV_SEED", false),
	}

	if path := strings.TrimSpace(os.Getenv("FUNDBOARD_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if len(file.Gateways) > 0 {
			cfg.Gateways = file.Gateways
		}
		if file.CanonicalGateway != "" {
			cfg.CanonicalGateway = file.CanonicalGateway
		}
		if file.Schedule.RefreshCron != "" {
			cfg.RefreshCron = file.Schedule.RefreshCron
		}
	}

	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.HTTPPort = v
	}
	if gateways := envList("IPFS_GATEWAYS"); len(gateways) > 0 {
		cfg.Gateways = gateways
	}
	if v := strings.TrimSpace(os.Getenv("CANONICAL_GATEWAY")); v != "" {
		cfg.CanonicalGateway = v
	}
	if v := os.Getenv("UNIT_DECIMALS"); v != "" {
		decimals, err := strconv.Atoi(v)
		if err != nil || decimals <= 0 {
			return Config{}, fmt.Errorf("UNIT_DECIMALS must be a positive integer, got %q", v)
		}
		cfg.UnitDecimals = decimals
	}
	if v := os.Getenv("GATEWAY_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("GATEWAY_TIMEOUT_SECONDS must be a positive integer, got %q", v)
		}
		cfg.GatewayTimeout = time.Duration(seconds) * time.Second
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.RefreshCron = v
	}

	if cfg.CanonicalGateway == "" {
		cfg.CanonicalGateway = cfg.Gateways[0]
	}
	return cfg, nil
}

func envList(name string) []string {
	var values []string
	for _, value := range strings.Split(os.Getenv(name), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
