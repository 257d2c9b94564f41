// Package model_test - shared helpers for instance construction in tests.
package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optiroute/optiroute/model"
)

// lineMatrix returns an n×n matrix with entry |i−j|·step: locations on a
// line, symmetric, zero diagonal.
func lineMatrix(t *testing.T, n int, step int64) *model.Matrix {
	t.Helper()

	m := model.NewMatrix(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d := int64(i - j)
			if d < 0 {
				d = -d
			}
			m.Set(i, j, d*step)
		}
	}

	return m
}

// lineInput builds a validated 4-location instance: durations |i−j|·10 s,
// distances |i−j|·100 m, costs derived from durations.
//
//	J0: loc 1, service 5, amount 1
//	J1: loc 2, priority 3, amount 1
//	J2: loc 3, amount 1
//	V0: 0 → 0, capacity 10, fixed cost 1000
func lineInput(t *testing.T) *model.Input {
	t.Helper()

	in := &model.Input{
		Jobs: []model.Job{
			{ID: 1, Location: 1, Service: 5, Amount: 1},
			{ID: 2, Location: 2, Priority: 3, Amount: 1},
			{ID: 3, Location: 3, Amount: 1},
		},
		Vehicles: []model.Vehicle{
			{Start: 0, End: 0, Capacity: 10, FixedCost: 1000},
		},
		Durations: lineMatrix(t, 4, 10),
		Distances: lineMatrix(t, 4, 100),
	}
	in.DeriveCosts()
	require.NoError(t, in.Validate())

	return in
}
