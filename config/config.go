// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, populated from command line
// flags bound to Viper by the count command.
type Config struct {
	// the length of k-mer to count
	K int `mapstructure:"k"`

	// input file extensions to accept, without dots
	Extensions []string `mapstructure:"extensions"`

	// root directory for the mirrored output tree
	OutputRoot string `mapstructure:"out"`

	// what to do with a record that fails base validation: skip or abort
	OnInvalid string `mapstructure:"on-invalid"`

	// output table order: alpha or freq
	Sort string `mapstructure:"sort"`

	// whether the ambiguity code 'N' is a permitted base
	AllowN bool `mapstructure:"allow-n"`

	// number of files to process concurrently
	Threads int `mapstructure:"threads"`
}

// New returns a Config populated from Viper settings.
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode settings: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate rejects settings no run can honor. k = 0 is permitted (one
// empty k-mer per sequence); negative k is a hard error.
func (c Config) Validate() error {
	if c.K < 0 {
		return fmt.Errorf("invalid k-mer length %d: k must be 0 or greater", c.K)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one input extension is required")
	}
	switch c.OnInvalid {
	case "skip", "abort":
	default:
		return fmt.Errorf("invalid on-invalid policy %q: use skip or abort", c.OnInvalid)
	}
	switch c.Sort {
	case "alpha", "freq":
	default:
		return fmt.Errorf("invalid sort order %q: use alpha or freq", c.Sort)
	}
	return nil
}
