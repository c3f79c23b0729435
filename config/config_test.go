package config

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		K:          4,
		Extensions: []string{"fa", "fasta"},
		OutputRoot: "./output",
		OnInvalid:  "skip",
		Sort:       "alpha",
		Threads:    2,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid settings", func(c *Config) {}, false},
		{"k of zero is allowed", func(c *Config) { c.K = 0 }, false},
		{"negative k", func(c *Config) { c.K = -1 }, true},
		{"no extensions", func(c *Config) { c.Extensions = nil }, true},
		{"abort policy", func(c *Config) { c.OnInvalid = "abort" }, false},
		{"unknown policy", func(c *Config) { c.OnInvalid = "ignore" }, true},
		{"freq sort", func(c *Config) { c.Sort = "freq" }, false},
		{"unknown sort", func(c *Config) { c.Sort = "size" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
