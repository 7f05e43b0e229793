package compaction

import "fmt"

// Material holds the Heckel constants for one powder.
// K is in MPa^-1, RhoTheoretical in g/cm3.
type Material struct {
	Name           string  `json:"name"`
	K              float64 `json:"k"`
	A              float64 `json:"a"`
	RhoTheoretical float64 `json:"rho_theoretical"`
}

// Example constants; real presses should be driven by measured values
// entered as custom constants.
var materials = []Material{
	{Name: "Tungsten Carbide (WC-Co)", K: 1.96e-3, A: 0.357, RhoTheoretical: 15.5},
	{Name: "Iron (Fe)", K: 2.10e-3, A: 0.25, RhoTheoretical: 7.87},
}

// Materials returns the predefined material table.
func Materials() []Material {
	out := make([]Material, len(materials))
	copy(out, materials)
	return out
}

// LookupMaterial finds a predefined material by name.
func LookupMaterial(name string) (Material, error) {
	for _, m := range materials {
		if m.Name == name {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("%w: unknown material %q", ErrInvalidMaterial, name)
}

func (m Material) validate() error {
	if m.K == 0 {
		return fmt.Errorf("%w: K must be non-zero", ErrInvalidMaterial)
	}
	if m.RhoTheoretical <= 0 {
		return fmt.Errorf("%w: theoretical density must be positive", ErrInvalidMaterial)
	}
	return nil
}
