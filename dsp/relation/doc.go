// Package relation models sampled one-dimensional functions: a dependent
// array paired with a regular [axis.Axis].
//
// [Relation] is generic over real and complex samples. Three family types
// narrow its meaning and keep their identity through every operation:
//
//   - [Signal]: real time-domain data, transformable to a [Spectrum].
//   - [Spectrum]: complex frequency-domain data, transformable back to a
//     [Signal] and decomposable into amplitude and phase.
//   - [Sweep]: a designed excitation signal.
//
// # Arithmetic
//
// Go has no operator overloading, so binary arithmetic goes through a
// closed [Op] enumeration and one dispatch routine:
//
//	sum, err := a.Add(b)                 // a + b
//	scaled, err := a.Apply(relation.OpMul, 0.5)
//	inv, err := a.ApplyFrom(relation.OpDiv, 1.0) // 1 / a
//
// The other operand may be a scalar, a raw array of the same length, or any
// relation of the same sample kind. Two relations on different axes are
// equalized first: both are resampled onto the common grid with the finer
// step and the union of their extents, with zeros outside each original
// domain. Exponentiation keeps the sign of the base, sign(a)*|a|^b, so
// negative samples raised to fractional powers stay real.
//
// # Value semantics
//
// Every operation returns a fresh relation with its own axis and array.
// The only in-place mutations are the bound setters and [Relation.SetY].
// Moving axis bounds does not resample y; a relation left with a length
// mismatch reports [ErrLengthMismatch] from its next operation or from
// [Relation.Data].
package relation
