package pod

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Preset is a named bundle of beneficiary fields selectable through
// Document.Option. Presets are table-driven so deployments can add their own
// beneficiaries without touching the code (see Presets.LoadFile).
type Preset struct {
	Beneficiary string `yaml:"beneficiary"`
	LTSANumber  string `yaml:"ltsaNumber"`
}

// DefaultOption is the option key a fresh document starts with.
const DefaultOption = "knpc"

// builtinPresets are the two baseline beneficiaries.
var builtinPresets = map[string]Preset{
	"knpc": {
		Beneficiary: "Kuwait National Petroleum Company",
		LTSANumber:  "LTSA-KNPC-2019-001",
	},
	"koc": {
		Beneficiary: "Kuwait Oil Company",
		LTSANumber:  "LTSA-KOC-2021-014",
	},
}

// Presets indexes beneficiary presets by option key.
type Presets map[string]Preset

// DefaultPresets returns a fresh copy of the built-in preset table.
func DefaultPresets() Presets {
	return maps.Clone(builtinPresets)
}

// LoadFile merges presets from a YAML file into p. Entries with an option key
// already present override the built-in ones.
//
// The file is a mapping from option key to beneficiary fields:
//
//	kipic:
//	  beneficiary: Kuwait Integrated Petroleum Industries Company
//	  ltsaNumber: LTSA-KIPIC-2023-007
func (p Presets) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read presets file %q: %w", path, err)
	}
	var extra map[string]Preset
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("could not parse presets file %q: %w", path, err)
	}
	maps.Copy(p, extra)
	return nil
}

// Get returns the preset for an option key.
func (p Presets) Get(key string) (Preset, bool) {
	preset, ok := p[key]
	return preset, ok
}

// Names returns all option keys in sorted order.
func (p Presets) Names() []string {
	return slices.Sorted(maps.Keys(p))
}
