// Package instance loads declarative YAML problem files into validated
// model.Input values.
//
// File shape:
//
//	jobs:
//	  - id: 1
//	    location: 0
//	    priority: 10     # optional, 0 = no priority
//	    amount: 1        # optional capacity demand
//	    service: 300     # optional on-site seconds
//	vehicles:
//	  - start: 0         # omit for an open start
//	    end: 0           # omit for an open end
//	    capacity: 4
//	    fixed_cost: 100  # user cost units
//	matrices:
//	  durations: [[0, 10], [10, 0]]   # seconds, required
//	  distances: [[0, 90], [90, 0]]   # meters, required
//	  costs:     [[0, 5], [5, 0]]     # user cost units, optional
//
// Unit scaling happens here, once: a user-supplied cost matrix and vehicle
// fixed costs are multiplied by model.CostFactor; when no cost matrix is
// given, costs derive from durations times model.DurationFactor. Either way
// the resulting Input is in internal units commensurable with priorities
// (see the model package doc).
//
// Decode failures wrap the YAML error with context; semantic failures
// surface the model package's sentinel errors unchanged.
package instance
