package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coffer-dev/coffer/internal/interest"
)

// Config represents the top-level coffer.yaml configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Ledger LedgerConfig `yaml:"ledger"`
}

// ServerConfig controls the HTTP serving surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LedgerConfig carries the engine parameters.
type LedgerConfig struct {
	FixedDepositRate uint64 `yaml:"fixed_deposit_rate"` // percent per year
	LoanRate         uint64 `yaml:"loan_rate"`          // percent per year
	DecimalPlaces    int32  `yaml:"decimal_places"`     // base-unit scale at the API edge
}

// Load reads a coffer.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration a new project starts with.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Ledger: LedgerConfig{
			FixedDepositRate: interest.DefaultFixedDepositRate,
			LoanRate:         interest.DefaultLoanRate,
			DecimalPlaces:    2,
		},
	}
}

// ApplyEnv overrides config values from the environment. COFFER_ADDR
// replaces the listen address.
func (c *Config) ApplyEnv() {
	if addr := os.Getenv("COFFER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}
