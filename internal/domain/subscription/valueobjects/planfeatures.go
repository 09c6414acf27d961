package valueobjects

import (
	"encoding/json"
	"fmt"
)

// PlanFeatures is the free-form feature document attached to a plan
// (e.g. {"max_projects": 5, "support": "email"}).
type PlanFeatures map[string]interface{}

func NewPlanFeatures(features map[string]interface{}) (PlanFeatures, error) {
	if features == nil {
		return PlanFeatures{}, nil
	}
	for key := range features {
		if key == "" {
			return nil, fmt.Errorf("feature key must not be empty")
		}
	}
	// Round-trip to reject values that cannot be stored as JSON.
	raw, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("features must be JSON serializable: %w", err)
	}
	out := PlanFeatures{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("features must be a JSON object: %w", err)
	}
	return out, nil
}

func (p PlanFeatures) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Clone returns a shallow copy so callers cannot mutate the entity's map.
func (p PlanFeatures) Clone() PlanFeatures {
	out := make(PlanFeatures, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
