// Package config loads qroute settings from a file and QROUTE_* environment
// variables with viper, and turns them into policy and builder options.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qroute/fidelity"
	"github.com/katalvlaran/qroute/logging"
	"github.com/katalvlaran/qroute/policy"
	"github.com/katalvlaran/qroute/table"
)

// EnvPrefix is prepended to every environment override, e.g. QROUTE_POLICY_KIND.
const EnvPrefix = "QROUTE"

// Config holds all application configuration.
type Config struct {
	Policy  PolicyConfig   `mapstructure:"policy"`
	Build   BuildConfig    `mapstructure:"build"`
	Log     logging.Config `mapstructure:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
}

type PolicyConfig struct {
	Kind      string  `mapstructure:"kind" validate:"required"`
	Threshold float64 `mapstructure:"threshold" validate:"gte=0,lte=1"`
	K         int     `mapstructure:"k" validate:"gte=1"`
	X         int     `mapstructure:"x" validate:"gte=0"`
	EMin      float64 `mapstructure:"e_min" validate:"gte=0,lte=1"`
	EMax      float64 `mapstructure:"e_max" validate:"gte=0,lte=1,gtfield=EMin"`
}

type BuildConfig struct {
	Workers int `mapstructure:"workers" validate:"gte=1"`
	// InstallMode is "first-hop", "along-path", or empty to follow the policy scope.
	InstallMode string `mapstructure:"install_mode" validate:"omitempty,oneof=first-hop along-path"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	// Textfile, when set, receives the registry in Prometheus text format after each run.
	Textfile string `mapstructure:"textfile"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	pd := policy.DefaultOptions()
	v.SetDefault("policy.kind", string(policy.KindShortest))
	v.SetDefault("policy.threshold", fidelity.DefaultThreshold)
	v.SetDefault("policy.k", pd.K)
	v.SetDefault("policy.x", pd.X)
	v.SetDefault("policy.e_min", pd.EMin)
	v.SetDefault("policy.e_max", pd.EMax)

	v.SetDefault("build.workers", 1)
	v.SetDefault("build.install_mode", "")

	ld := logging.Default()
	v.SetDefault("log.level", ld.Level)
	v.SetDefault("log.format", ld.Format)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", ld.MaxSizeMB)
	v.SetDefault("log.max_backups", ld.MaxBackups)
	v.SetDefault("log.max_age_days", ld.MaxAgeDays)
	v.SetDefault("log.compress", false)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "qroute")
	v.SetDefault("metrics.textfile", "")
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// defaults are constants; an error here is a programming bug
		panic(err)
	}
	return cfg
}

// Load reads configuration from path (skipped when empty) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field ranges and that policy kind and install mode parse.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("config: %s failed %q (value %v)", e.Namespace(), e.Tag(), e.Value())
		}
		return fmt.Errorf("config: %w", err)
	}
	if _, err := policy.ParseKind(c.Policy.Kind); err != nil {
		return fmt.Errorf("config: policy.kind: %w", err)
	}

	return nil
}

// PolicyOptions converts the policy section into policy options.
func (c *Config) PolicyOptions() []policy.Option {
	return []policy.Option{
		policy.WithThreshold(c.Policy.Threshold),
		policy.WithK(c.Policy.K),
		policy.WithX(c.Policy.X),
		policy.WithEfficiencyBounds(c.Policy.EMin, c.Policy.EMax),
	}
}

// NewPolicy builds the configured policy. extra options are applied last.
func (c *Config) NewPolicy(extra ...policy.Option) (*policy.Policy, error) {
	kind, err := policy.ParseKind(c.Policy.Kind)
	if err != nil {
		return nil, err
	}

	return policy.New(kind, append(c.PolicyOptions(), extra...)...)
}

// InstallMode returns the configured mode, and false when the policy scope should decide.
func (c *Config) InstallMode() (table.InstallMode, bool, error) {
	if c.Build.InstallMode == "" {
		return table.InstallFirstHop, false, nil
	}
	m, err := table.ParseInstallMode(c.Build.InstallMode)
	if err != nil {
		return m, false, err
	}

	return m, true, nil
}
