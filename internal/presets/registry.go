package presets

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// ErrUnknownPreset is returned when a preset ID is not in the registry.
var ErrUnknownPreset = errors.New("unknown preset")

// Registry holds loaded presets and provides lookup utilities.
type Registry struct {
	presets     []Preset
	byID        map[string]*Preset
	totalWeight int
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []Preset) *Registry {
	r := &Registry{
		presets: presets,
		byID:    make(map[string]*Preset, len(presets)),
	}
	for i := range presets {
		r.byID[presets[i].ID] = &presets[i]
		r.totalWeight += max(presets[i].Weight, 0)
	}
	return r
}

// LoadRegistry loads and creates a registry from the embedded presets.yaml.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.yaml")
	}
	return NewRegistry(presets), nil
}

// Get returns the preset with the given ID.
func (r *Registry) Get(id string) (*Preset, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPreset, id, strings.Join(r.IDs(), ", "))
}

// Random selects a preset using weighted probability.
// Presets with a higher weight are more likely to be selected.
func (r *Registry) Random(rng *rand.Rand) *Preset {
	if r.totalWeight <= 0 || len(r.presets) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.presets {
		cumulative += max(r.presets[i].Weight, 0)
		if roll < cumulative {
			return &r.presets[i]
		}
	}
	return &r.presets[0]
}

// IDs returns the preset IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all presets in file order.
func (r *Registry) All() []Preset {
	return r.presets
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.presets)
}
