// Package asprim casts primitive numeric values to any other primitive
// numeric type, the way a hardware-style narrowing or widening cast
// would:
//
//   - integer to integer: truncation when narrowing, sign or zero
//     extension when widening, bit-pattern reinterpretation across
//     signedness at the same width
//   - integer to float: round to nearest, ties to even
//   - float to integer: truncate toward zero, NaN to zero, out-of-range
//     values clamp to the target's minimum or maximum
//   - float64 to float32: round to nearest, overflow to infinity
//
// Every conversion is total: no conversion fails, panics or allocates,
// and the source value is never modified. The supported variants are
// the thirteen built-in Go numeric types plus the 128-bit Int128 and
// Uint128 values defined here.
//
// AsInt8, AsUint64, AsFloat32 and friends convert to one fixed target.
// As picks the target from its type parameter, which keeps generic
// numeric code free of a thirteen-way switch:
//
//	func mean[P asprim.Numeric](data []P) P {
//		sum := 0.0
//		for _, elt := range data {
//			sum += asprim.AsFloat64(elt)
//		}
//		return asprim.As[P](sum / float64(len(data)))
//	}
package asprim

//go:generate go run ./internal/gen -output as_matrix.go
