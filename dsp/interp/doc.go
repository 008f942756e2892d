// Package interp resamples data given on a regular grid.
//
// [Linear2] and [Linear2Complex] are the 2-point primitives. [Regular]
// evaluates a whole grid at arbitrary query coordinates with linear
// interpolation inside the grid and a constant fill outside it. Queries that
// land within a tiny fraction of a step outside the grid, because of
// floating-point noise in either grid, count as inside.
package interp
