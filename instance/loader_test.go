// Package instance_test exercises YAML decoding, unit scaling and the
// propagation of model validation sentinels.
package instance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optiroute/optiroute/instance"
	"github.com/optiroute/optiroute/model"
)

// validDoc is a complete two-location instance with an explicit cost matrix.
const validDoc = `
jobs:
  - id: 7
    location: 1
    priority: 10
    amount: 2
    service: 300
vehicles:
  - start: 0
    end: 0
    capacity: 4
    fixed_cost: 100
matrices:
  durations: [[0, 10], [10, 0]]
  distances: [[0, 90], [90, 0]]
  costs:     [[0, 5], [5, 0]]
`

// TestParse_Valid checks every decoded field and the unit scaling rules:
// custom costs and fixed costs ×CostFactor.
func TestParse_Valid(t *testing.T) {
	in, err := instance.Parse([]byte(validDoc))
	require.NoError(t, err)

	require.Len(t, in.Jobs, 1)
	require.Equal(t, model.Job{
		ID:       7,
		Location: 1,
		Priority: 10,
		Amount:   2,
		Service:  300,
	}, in.Jobs[0])

	require.Len(t, in.Vehicles, 1)
	require.Equal(t, 0, in.Vehicles[0].Start)
	require.Equal(t, 0, in.Vehicles[0].End)
	require.Equal(t, int64(4), in.Vehicles[0].Capacity)
	require.Equal(t, 100*model.CostFactor, in.Vehicles[0].FixedCost)

	require.Equal(t, int64(10), in.Durations.At(0, 1))
	require.Equal(t, int64(90), in.Distances.At(1, 0))
	require.Equal(t, 5*model.CostFactor, in.Costs.At(0, 1))
}

// TestParse_DerivedCosts verifies the duration-based fallback when the costs
// matrix is omitted.
func TestParse_DerivedCosts(t *testing.T) {
	doc := `
jobs:
  - {id: 1, location: 1}
vehicles:
  - {start: 0, end: 0, capacity: 1}
matrices:
  durations: [[0, 10], [10, 0]]
  distances: [[0, 90], [90, 0]]
`
	in, err := instance.Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 10*model.DurationFactor, in.Costs.At(0, 1))
}

// TestParse_OmittedEndpointsAreOpen verifies that missing start/end keys map
// to open route ends, not to location 0.
func TestParse_OmittedEndpointsAreOpen(t *testing.T) {
	doc := `
jobs:
  - {id: 1, location: 0}
vehicles:
  - {capacity: 1}
matrices:
  durations: [[0]]
  distances: [[0]]
`
	in, err := instance.Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, model.OpenEnd, in.Vehicles[0].Start)
	require.Equal(t, model.OpenEnd, in.Vehicles[0].End)
}

// TestParse_DecodeError surfaces YAML syntax failures with context.
func TestParse_DecodeError(t *testing.T) {
	_, err := instance.Parse([]byte("jobs: ["))
	require.Error(t, err)
	require.Contains(t, err.Error(), "instance: decode")
}

// TestParse_ValidationSentinels verifies that semantic failures surface the
// model sentinels unchanged.
func TestParse_ValidationSentinels(t *testing.T) {
	nonSquare := `
jobs: []
vehicles: [{capacity: 1}]
matrices:
  durations: [[0, 1]]
  distances: [[0, 1]]
`
	_, err := instance.Parse([]byte(nonSquare))
	require.ErrorIs(t, err, model.ErrNonSquare)

	badPriority := `
jobs:
  - {id: 1, location: 0, priority: 101}
vehicles: [{capacity: 1}]
matrices:
  durations: [[0]]
  distances: [[0]]
`
	_, err = instance.Parse([]byte(badPriority))
	require.ErrorIs(t, err, model.ErrBadPriority)

	badLocation := `
jobs:
  - {id: 1, location: 5}
vehicles: [{capacity: 1}]
matrices:
  durations: [[0]]
  distances: [[0]]
`
	_, err = instance.Parse([]byte(badLocation))
	require.ErrorIs(t, err, model.ErrDimensionMismatch)
}

// TestLoad_RoundTrip writes a file and loads it back.
func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o600))

	in, err := instance.Load(path)
	require.NoError(t, err)
	require.Len(t, in.Jobs, 1)
}

// TestLoad_MissingFile surfaces the read error with path context.
func TestLoad_MissingFile(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "instance: read")
}
