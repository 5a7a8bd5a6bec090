// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

// Package config resolves the generator's runtime configuration.
//
// Settings come from three layers, later ones winning: built-in defaults,
// an optional sdkgen.yaml in the working directory, and SDKGEN_* environment
// variables. The resolved Config is a flat immutable value; command-line
// flags override individual fields after loading.
package config

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// FileName is the optional project configuration file.
const FileName = "sdkgen.yaml"

// DefaultNAGURL is the production network access gateway. Generated clients
// point here until setNAGURL is called.
const DefaultNAGURL = "https://nag.circularlabs.io/NAG.php?cep="

// Config is the resolved generator configuration.
type Config struct {
	// SchemaDir is an alternate IR root. Empty means the embedded schema.
	SchemaDir string `mapstructure:"schemaDir"`
	// OutDir is the output root the per-language SDK directories go under.
	OutDir string `mapstructure:"outDir"`
	// Languages are the target language ids to generate. Defaults to all.
	Languages []string `mapstructure:"languages"`
	// SDKVersion is the semantic version stamped into every generated
	// client's version constant.
	SDKVersion string `mapstructure:"sdkVersion"`
	// NAGURL is the default gateway URL baked into generated clients.
	NAGURL string `mapstructure:"nagURL"`
	// MockURL is the base URL the generated test scaffolds target.
	MockURL string `mapstructure:"mockURL"`
}

// Load resolves the configuration from defaults, an optional sdkgen.yaml in
// dir, and SDKGEN_* environment variables.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("schemaDir", "")
	v.SetDefault("outDir", "dist")
	v.SetDefault("languages", []string{})
	v.SetDefault("sdkVersion", "1.0.8")
	v.SetDefault("nagURL", DefaultNAGURL)
	v.SetDefault("mockURL", "http://localhost:3000/")

	v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("SDKGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "read %s", FileName)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", FileName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields no later stage revalidates. Language ids are
// checked against the profile set at command time, once flags have had
// their say.
func (c *Config) Validate() error {
	if _, err := semver.NewVersion(c.SDKVersion); err != nil {
		return errors.Wrapf(err, "sdkVersion %q is not a semantic version", c.SDKVersion)
	}
	if c.OutDir == "" {
		return errors.New("outDir must not be empty")
	}
	if c.NAGURL == "" {
		return errors.New("nagURL must not be empty")
	}
	return nil
}
