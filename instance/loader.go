// Package instance - YAML decoding and unit normalization.
package instance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/optiroute/optiroute/model"
)

// jobSpec mirrors one jobs[] entry of the YAML file.
type jobSpec struct {
	ID       uint64 `yaml:"id"`
	Location int    `yaml:"location"`
	Priority int32  `yaml:"priority"`
	Amount   int64  `yaml:"amount"`
	Service  int64  `yaml:"service"`
}

// vehicleSpec mirrors one vehicles[] entry. Start/End are pointers so an
// omitted key maps to an open route end rather than to location 0.
type vehicleSpec struct {
	Start     *int  `yaml:"start"`
	End       *int  `yaml:"end"`
	Capacity  int64 `yaml:"capacity"`
	FixedCost int64 `yaml:"fixed_cost"`
}

// fileSpec mirrors the whole document.
type fileSpec struct {
	Jobs     []jobSpec     `yaml:"jobs"`
	Vehicles []vehicleSpec `yaml:"vehicles"`
	Matrices struct {
		Durations [][]int64 `yaml:"durations"`
		Distances [][]int64 `yaml:"distances"`
		Costs     [][]int64 `yaml:"costs"`
	} `yaml:"matrices"`
}

// Load reads and parses the YAML instance file at path.
func Load(path string) (*model.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document, normalizes units into the internal cost
// domain, and returns a validated model.Input.
//
// Complexity: O(n² + J + V) dominated by matrix copy and validation.
func Parse(data []byte) (*model.Input, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	durations, err := model.FromRows(spec.Matrices.Durations)
	if err != nil {
		return nil, err
	}
	distances, err := model.FromRows(spec.Matrices.Distances)
	if err != nil {
		return nil, err
	}

	in := &model.Input{
		Jobs:      make([]model.Job, len(spec.Jobs)),
		Vehicles:  make([]model.Vehicle, len(spec.Vehicles)),
		Durations: durations,
		Distances: distances,
	}

	var i int
	for i = range spec.Jobs {
		in.Jobs[i] = model.Job{
			ID:       spec.Jobs[i].ID,
			Location: spec.Jobs[i].Location,
			Priority: model.Priority(spec.Jobs[i].Priority),
			Amount:   spec.Jobs[i].Amount,
			Service:  spec.Jobs[i].Service,
		}
	}

	for i = range spec.Vehicles {
		in.Vehicles[i] = model.Vehicle{
			Start:     endpoint(spec.Vehicles[i].Start),
			End:       endpoint(spec.Vehicles[i].End),
			Capacity:  spec.Vehicles[i].Capacity,
			FixedCost: spec.Vehicles[i].FixedCost * model.CostFactor,
		}
	}

	// Custom costs arrive in user units and are scaled by CostFactor; the
	// fallback derivation from durations uses DurationFactor. Both paths end
	// in the same internal unit, commensurable with PriorityScale.
	if spec.Matrices.Costs != nil {
		costs, cerr := model.FromRows(spec.Matrices.Costs)
		if cerr != nil {
			return nil, cerr
		}
		in.Costs = costs.Scale(model.CostFactor)
	} else {
		in.DeriveCosts()
	}

	if err = in.Validate(); err != nil {
		return nil, err
	}

	return in, nil
}

// endpoint maps an omitted YAML endpoint to an open route end.
func endpoint(p *int) int {
	if p == nil {
		return model.OpenEnd
	}

	return *p
}
