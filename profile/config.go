package profile

import (
	"encoding/json"
	"os"

	"github.com/lixenwraith/viewrig/parameter"
	"github.com/lixenwraith/viewrig/vmath"
)

// entryConfig mirrors Profile with flat vector fields for JSON input
type entryConfig struct {
	SwayAmount float64    `json:"sway_amount"`
	BobAmount  float64    `json:"bob_amount"`
	BobSpeed   float64    `json:"bob_speed"`
	Smoothness float64    `json:"smoothness"`
	Offset     [3]float64 `json:"offset"`
	Rotation   [3]float64 `json:"rotation"`
}

// LoadStore builds a Store pre-populated from environment variables
// VIEWRIG_PROFILES holds a JSON object mapping item identity to tuning fields
// Malformed JSON is ignored; the store starts empty and Get falls back to Default
func LoadStore() *Store {
	store := NewStore()

	if raw := os.Getenv("VIEWRIG_PROFILES"); raw != "" {
		var entries map[string]entryConfig
		if err := json.Unmarshal([]byte(raw), &entries); err == nil {
			for key, e := range entries {
				store.Put(key, Profile{
					SwayAmount: e.SwayAmount,
					BobAmount:  e.BobAmount,
					BobSpeed:   e.BobSpeed,
					Smoothness: e.Smoothness,
					Offset:     vmath.Vec3{X: e.Offset[0], Y: e.Offset[1], Z: e.Offset[2]},
					Rotation:   vmath.Vec3{X: e.Rotation[0], Y: e.Rotation[1], Z: e.Rotation[2]},
				})
			}
		}
	}

	return store
}

// DefaultItem returns the item identity loaded when none is specified
// Overridable via VIEWRIG_DEFAULT_ITEM
func DefaultItem() string {
	if item := os.Getenv("VIEWRIG_DEFAULT_ITEM"); item != "" {
		return item
	}
	return parameter.DefaultItem
}
