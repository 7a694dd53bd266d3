package fermistat

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g.
// FERMISTAT_MATERIAL_EFFECTIVE_MASS_FACTOR=1.08.
const EnvPrefix = "FERMISTAT"

// Config groups every tunable of the package.
type Config struct {
	// Preset names a built-in material (see MaterialNames). Explicit
	// material fields still override it.
	Preset string `mapstructure:"preset" yaml:"preset"`

	Material   Constants        `mapstructure:"material" yaml:"material"`
	Quadrature QuadratureConfig `mapstructure:"quadrature" yaml:"quadrature"`
	Sweep      SweepConfig      `mapstructure:"sweep" yaml:"sweep"`
}

// DefaultConfig returns the reference material with default quadrature and
// sweep settings.
func DefaultConfig() Config {
	return Config{
		Material:   DefaultConstants(),
		Quadrature: DefaultQuadratureConfig(),
		Sweep:      DefaultSweepConfig(),
	}
}

// Validate checks all sections.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return c.Quadrature.Validate()
}

// Evaluator builds an Evaluator from the quadrature section.
func (c Config) Evaluator() (*Evaluator, error) {
	return NewEvaluator(c.Quadrature)
}

// LoadConfig reads configuration with the precedence
// environment > file > preset > defaults. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	def := DefaultConfig()
	v.SetDefault("preset", "")
	if preset := v.GetString("preset"); preset != "" {
		m, err := Material(preset)
		if err != nil {
			return Config{}, err
		}
		def.Material = m
	}
	setDefaults(v, def)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("material.boltzmann", def.Material.Boltzmann)
	v.SetDefault("material.electron_mass", def.Material.ElectronMass)
	v.SetDefault("material.effective_mass_factor", def.Material.EffectiveMassFactor)
	v.SetDefault("material.hbar", def.Material.HBar)

	v.SetDefault("quadrature.upper", def.Quadrature.Upper)
	v.SetDefault("quadrature.abs_tol", def.Quadrature.AbsTol)
	v.SetDefault("quadrature.rel_tol", def.Quadrature.RelTol)
	v.SetDefault("quadrature.max_subintervals", def.Quadrature.MaxSubintervals)

	v.SetDefault("sweep.workers", def.Sweep.Workers)
}
