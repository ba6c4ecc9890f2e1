package asprim

import (
	"math"
	"math/bits"
	"strconv"
)

// Uint128 is a 128-bit unsigned integer in two's-complement
// representation, split into high and low 64-bit halves. The zero value
// is the number zero. Values are always copied, never shared.
type Uint128 struct {
	Hi, Lo uint64
}

// MaxUint128 is the largest representable Uint128 value, 2^128 - 1.
var MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}

// Uint128From64 returns v zero-extended to 128 bits.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint128FromInt64 returns v sign-extended to 128 bits and reinterpreted
// as unsigned, so Uint128FromInt64(-1) is MaxUint128.
func Uint128FromInt64(v int64) Uint128 {
	return Uint128{Hi: uint64(v >> 63), Lo: uint64(v)}
}

// Uint128FromFloat64 converts v truncating toward zero. NaN converts to
// zero, negative values saturate to zero and values at or above 2^128
// saturate to MaxUint128.
func Uint128FromFloat64(v float64) Uint128 {
	switch {
	case v != v: // NaN
		return Uint128{}
	case v < 1:
		return Uint128{}
	case v >= 0x1p128:
		return MaxUint128
	}

	// v is normal and in [1, 2^128): take the 53 mantissa bits and
	// shift them into place.
	b := math.Float64bits(v)
	exp := int(b>>52&0x7ff) - 1075 // v = mant * 2^exp
	mant := b&(1<<52-1) | 1<<52

	switch {
	case exp <= 0:
		return Uint128{Lo: mant >> uint(-exp)}
	case exp < 64:
		return Uint128{Hi: mant >> (64 - uint(exp)), Lo: mant << uint(exp)}
	default:
		return Uint128{Hi: mant << (uint(exp) - 64)}
	}
}

// Int128 reinterprets the bit pattern as a signed 128-bit integer.
func (v Uint128) Int128() Int128 {
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}
}

// IsZero reports whether v is zero.
func (v Uint128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Cmp returns -1, 0 or 1 depending on whether v is less than, equal to
// or greater than o.
func (v Uint128) Cmp(o Uint128) int {
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
func (v Uint128) Float64() float64 {
	if v.Hi == 0 {
		return float64(v.Lo)
	}

	// Round once: compress to 64 significant bits with a sticky bit, let
	// the conversion round, then scale by an exact power of two.
	s := uint(bits.Len64(v.Hi))
	z := v.Hi<<(64-s) | v.Lo>>s
	if v.Lo<<(64-s) != 0 {
		z |= 1
	}

	return math.Ldexp(float64(z), int(s))
}

// Float32 returns the nearest 32-bit float, ties to even. Values above
// the finite float32 range convert to +Inf.
func (v Uint128) Float32() float32 {
	if v.Hi == 0 {
		return float32(v.Lo)
	}

	s := uint(bits.Len64(v.Hi))
	z := v.Hi<<(64-s) | v.Lo>>s
	if v.Lo<<(64-s) != 0 {
		z |= 1
	}

	// float32(z) performs the single rounding; the scale is a power of
	// two, so the product is exact or overflows to +Inf.
	return float32(z) * float32(math.Ldexp(1, int(s)))
}

// String returns the decimal representation of v.
func (v Uint128) String() string {
	if v.Hi == 0 {
		return strconv.FormatUint(v.Lo, 10)
	}

	// Peel off up to 19 decimal digits per division.
	const chunk = 1e19

	var out []byte
	for v.Hi != 0 {
		hiQ := v.Hi / chunk
		loQ, rem := bits.Div64(v.Hi%chunk, v.Lo, chunk)
		v = Uint128{Hi: hiQ, Lo: loQ}

		digits := strconv.AppendUint(nil, rem, 10)
		pad := make([]byte, 19-len(digits))
		for i := range pad {
			pad[i] = '0'
		}
		out = append(append(append([]byte{}, pad...), digits...), out...)
	}

	return strconv.FormatUint(v.Lo, 10) + string(out)
}

func (v Uint128) neg() Uint128 {
	lo, carry := bits.Add64(^v.Lo, 1, 0)
	return Uint128{Hi: ^v.Hi + carry, Lo: lo}
}
