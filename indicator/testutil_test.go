// Package indicator_test - shared fixtures: a small validated instance and
// two independent Route implementations, to assert that aggregation depends
// on the capability contract only, never on a concrete route type.
package indicator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optiroute/optiroute/indicator"
	"github.com/optiroute/optiroute/model"
)

// sliceRoute is the minimal Route implementation used by most tests.
type sliceRoute struct{ jobs []int }

var _ indicator.Route = sliceRoute{}

func (r sliceRoute) Jobs() []int { return r.jobs }
func (r sliceRoute) Size() int   { return len(r.jobs) }
func (r sliceRoute) Empty() bool { return len(r.jobs) == 0 }

// countRoute is a second, independent implementation that derives Size and
// Empty rather than storing them, to verify identical aggregation behavior.
type countRoute struct {
	jobs []int
	n    int
}

var _ indicator.Route = countRoute{}

func (r countRoute) Jobs() []int { return r.jobs }
func (r countRoute) Size() int   { return r.n }
func (r countRoute) Empty() bool { return r.n == 0 }

// gridInput builds a validated 5-location instance on a line:
// durations |i−j|·10 s, distances |i−j|·100 m, derived costs, two vehicles
// (rank 1 open-ended with a fixed cost), four jobs at locations 1..4.
func gridInput(t *testing.T) *model.Input {
	t.Helper()

	n := 5
	durations := model.NewMatrix(n)
	distances := model.NewMatrix(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d := int64(i - j)
			if d < 0 {
				d = -d
			}
			durations.Set(i, j, d*10)
			distances.Set(i, j, d*100)
		}
	}

	in := &model.Input{
		Jobs: []model.Job{
			{ID: 1, Location: 1, Amount: 1},
			{ID: 2, Location: 2, Amount: 1, Priority: 2},
			{ID: 3, Location: 3, Amount: 1},
			{ID: 4, Location: 4, Amount: 1, Service: 7},
		},
		Vehicles: []model.Vehicle{
			{Start: 0, End: 0, Capacity: 10},
			{Start: model.OpenEnd, End: model.OpenEnd, Capacity: 10, FixedCost: 500},
		},
		Durations: durations,
		Distances: distances,
	}
	in.DeriveCosts()
	require.NoError(t, in.Validate())

	return in
}

// ind is a terse Indicators literal helper for comparator tests.
func ind(prio int64, assigned int, cost, dur, dist int64, vehicles int, hash uint32) indicator.Indicators {
	return indicator.Indicators{
		PrioritySum:  prio,
		Assigned:     assigned,
		Eval:         model.Eval{Cost: cost, Duration: dur, Distance: dist},
		UsedVehicles: vehicles,
		RoutesHash:   hash,
	}
}
