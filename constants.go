package fermistat

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Reference material values. These reproduce the numbers the carrier
// statistics were originally calibrated against; use Material or a Config
// file to model anything else.
const (
	// BoltzmannEV is the Boltzmann constant in eV/K (rounded reference value).
	BoltzmannEV = 8.33e-5

	// ElectronRestEnergyEV is the electron rest-mass energy m_e·c² in eV.
	ElectronRestEnergyEV = 0.5110e6

	// ReferenceEffectiveMassFactor is m_eff/m_e for the reference material.
	ReferenceEffectiveMassFactor = 0.91

	// HBarEVs is the reduced Planck constant in eV·s.
	HBarEVs = 6.582e-16
)

// sqrtPiOver2 is Γ(3/2), the prefactor of the non-degenerate limit.
var sqrtPiOver2 = 0.5 * math.Sqrt(math.Pi)

var validate = validator.New()

// Constants holds the physical constants and the material's effective-mass
// factor. All formulas in this package read them from here; nothing is
// baked in.
type Constants struct {
	Boltzmann           float64 `mapstructure:"boltzmann" yaml:"boltzmann" validate:"gt=0"`                         // eV/K
	ElectronMass        float64 `mapstructure:"electron_mass" yaml:"electron_mass" validate:"gt=0"`                 // eV (rest-mass energy)
	EffectiveMassFactor float64 `mapstructure:"effective_mass_factor" yaml:"effective_mass_factor" validate:"gt=0"` // dimensionless
	HBar                float64 `mapstructure:"hbar" yaml:"hbar" validate:"gt=0"`                                   // eV·s
}

// DefaultConstants returns the reference material.
func DefaultConstants() Constants {
	return Constants{
		Boltzmann:           BoltzmannEV,
		ElectronMass:        ElectronRestEnergyEV,
		EffectiveMassFactor: ReferenceEffectiveMassFactor,
		HBar:                HBarEVs,
	}
}

// Validate checks every constant is strictly positive.
func (c Constants) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid constants: %w", err)
	}
	return nil
}

// EffectiveMass returns m_eff = factor × m_e in eV.
func (c Constants) EffectiveMass() float64 {
	return c.EffectiveMassFactor * c.ElectronMass
}

// ThermalEnergy returns kB·T in eV.
func (c Constants) ThermalEnergy(T float64) float64 {
	return c.Boltzmann * T
}
