package asprim

import "math"

// Float to integer conversion kernels. Go leaves out-of-range
// float-to-integer conversions implementation-defined, so the range
// checks here pin down one behavior for every platform: truncate toward
// zero, NaN to zero, out-of-range to the target's minimum or maximum.
//
// The bounds are written as exact powers of two. A comparison like
// v >= 0x1p63 is precise: 2^63 is representable in float64, and every
// float64 below it truncates into the int64 range.

func floatToInt(v float64) int {
	t := floatToInt64(v)
	switch {
	default:
		return int(t)
	case t > math.MaxInt:
		return math.MaxInt
	case t < math.MinInt:
		return math.MinInt
	}
}

func floatToInt8(v float64) int8 {
	switch {
	case v != v: // NaN
		return 0
	case v >= 0x1p7:
		return math.MaxInt8
	case v <= -0x1p7-1:
		return math.MinInt8
	}

	return int8(v)
}

func floatToInt16(v float64) int16 {
	switch {
	case v != v: // NaN
		return 0
	case v >= 0x1p15:
		return math.MaxInt16
	case v <= -0x1p15-1:
		return math.MinInt16
	}

	return int16(v)
}

func floatToInt32(v float64) int32 {
	switch {
	case v != v: // NaN
		return 0
	case v >= 0x1p31:
		return math.MaxInt32
	case v <= -0x1p31-1:
		return math.MinInt32
	}

	return int32(v)
}

func floatToInt64(v float64) int64 {
	switch {
	case v != v: // NaN
		return 0
	case v >= 0x1p63:
		return math.MaxInt64
	case v <= -0x1p63:
		return math.MinInt64
	}

	return int64(v)
}

func floatToUint(v float64) uint {
	t := floatToUint64(v)
	if t > math.MaxUint {
		return math.MaxUint
	}

	return uint(t)
}

func floatToUint8(v float64) uint8 {
	switch {
	case v != v: // NaN
		return 0
	case v < 1:
		return 0
	case v >= 0x1p8:
		return math.MaxUint8
	}

	return uint8(v)
}

func floatToUint16(v float64) uint16 {
	switch {
	case v != v: // NaN
		return 0
	case v < 1:
		return 0
	case v >= 0x1p16:
		return math.MaxUint16
	}

	return uint16(v)
}

func floatToUint32(v float64) uint32 {
	switch {
	case v != v: // NaN
		return 0
	case v < 1:
		return 0
	case v >= 0x1p32:
		return math.MaxUint32
	}

	return uint32(v)
}

func floatToUint64(v float64) uint64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 1:
		return 0
	case v >= 0x1p64:
		return math.MaxUint64
	}

	return uint64(v)
}

func floatToUintptr(v float64) uintptr {
	t := floatToUint64(v)
	if t > uint64(^uintptr(0)) {
		return ^uintptr(0)
	}

	return uintptr(t)
}
