package asprim

import "math"

// Int128 is a 128-bit signed integer in two's-complement representation,
// split into high and low 64-bit halves. The zero value is the number
// zero. Values are always copied, never shared.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	// MaxInt128 is the largest representable Int128 value, 2^127 - 1.
	MaxInt128 = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
	// MinInt128 is the smallest representable Int128 value, -2^127.
	MinInt128 = Int128{Hi: math.MinInt64}
)

// Int128From64 returns v sign-extended to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// Int128FromUint64 returns v zero-extended to 128 bits.
func Int128FromUint64(v uint64) Int128 {
	return Int128{Lo: v}
}

// Int128FromFloat64 converts v truncating toward zero. NaN converts to
// zero and out-of-range values saturate to MinInt128 or MaxInt128.
func Int128FromFloat64(v float64) Int128 {
	switch {
	case v != v: // NaN
		return Int128{}
	case v >= 0x1p127:
		return MaxInt128
	case v <= -0x1p127:
		return MinInt128
	case v < 0:
		return Uint128FromFloat64(-v).neg().Int128()
	}

	return Uint128FromFloat64(v).Int128()
}

// Uint128 reinterprets the bit pattern as an unsigned 128-bit integer.
func (v Int128) Uint128() Uint128 {
	return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}
}

// IsZero reports whether v is zero.
func (v Int128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Sign returns -1, 0 or 1 depending on whether v is negative, zero or
// positive.
func (v Int128) Sign() int {
	switch {
	default:
		return 0
	case v.Hi < 0:
		return -1
	case v.Hi > 0 || v.Lo > 0:
		return 1
	}
}

// Cmp returns -1, 0 or 1 depending on whether v is less than, equal to
// or greater than o.
func (v Int128) Cmp(o Int128) int {
	switch {
	default:
		return 0
	case v.Hi < o.Hi || v.Hi == o.Hi && v.Lo < o.Lo:
		return -1
	case v.Hi > o.Hi || v.Hi == o.Hi && v.Lo > o.Lo:
		return 1
	}
}

// Float64 returns the nearest 64-bit float, ties to even.
func (v Int128) Float64() float64 {
	if v.Hi < 0 {
		return -v.magnitude().Float64()
	}

	return v.Uint128().Float64()
}

// Float32 returns the nearest 32-bit float, ties to even. Values beyond
// the finite float32 range convert to the like-signed infinity.
func (v Int128) Float32() float32 {
	if v.Hi < 0 {
		return -v.magnitude().Float32()
	}

	return v.Uint128().Float32()
}

// String returns the decimal representation of v.
func (v Int128) String() string {
	if v.Hi < 0 {
		return "-" + v.magnitude().String()
	}

	return v.Uint128().String()
}

// magnitude returns -v as an unsigned value. Callers only reach it with
// negative v, so for MinInt128 the result is exactly 2^127.
func (v Int128) magnitude() Uint128 {
	return v.Uint128().neg()
}
