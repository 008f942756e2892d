// Package axis describes regular one-dimensional sampling grids.
//
// An [Axis] stores a nominal start, end and sample step. Its coordinates are
// materialized lazily by [Axis.Array] and regenerated after any of the bounds
// change. The size of the grid is always
//
//	round((end-start)/sample) + 1
//
// # Construction
//
// Use [New] for explicit bounds, or [FromArray] to infer a grid from a
// coordinate slice. FromArray accepts slightly non-uniform input and picks the
// modal spacing, treating steps that differ by less than [SpacingTolerance]
// (relative) as equal.
//
// # Mutation
//
// [Axis.SetStart], [Axis.SetEnd] and [Axis.SetSample] change the grid in
// place. They do not touch any data sampled on the axis; keeping dependent
// arrays in step is the caller's job.
package axis
