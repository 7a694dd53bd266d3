package fermistat

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed materials.yaml
var materialsYAML []byte

type materialFile struct {
	Materials map[string]Constants `yaml:"materials"`
}

var (
	materialsOnce sync.Once
	materials     map[string]Constants
	materialsErr  error
)

func loadMaterials() (map[string]Constants, error) {
	materialsOnce.Do(func() {
		var mf materialFile
		if err := yaml.Unmarshal(materialsYAML, &mf); err != nil {
			materialsErr = fmt.Errorf("failed to parse material presets: %w", err)
			return
		}
		materials = make(map[string]Constants, len(mf.Materials))
		for name, c := range mf.Materials {
			materials[strings.ToLower(name)] = withDefaults(c)
		}
	})
	return materials, materialsErr
}

// withDefaults fills unset (zero) constants from DefaultConstants.
func withDefaults(c Constants) Constants {
	def := DefaultConstants()
	if c.Boltzmann == 0 {
		c.Boltzmann = def.Boltzmann
	}
	if c.ElectronMass == 0 {
		c.ElectronMass = def.ElectronMass
	}
	if c.EffectiveMassFactor == 0 {
		c.EffectiveMassFactor = def.EffectiveMassFactor
	}
	if c.HBar == 0 {
		c.HBar = def.HBar
	}
	return c
}

// Material returns the named preset (case-insensitive).
func Material(name string) (Constants, error) {
	m, err := loadMaterials()
	if err != nil {
		return Constants{}, err
	}
	c, ok := m[strings.ToLower(name)]
	if !ok {
		return Constants{}, fmt.Errorf("unknown material %q (have: %s)", name, strings.Join(MaterialNames(), ", "))
	}
	return c, nil
}

// MaterialNames lists the presets in sorted order.
func MaterialNames() []string {
	m, _ := loadMaterials()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
