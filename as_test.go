package asprim_test

import (
	"asprim"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(-7), asprim.AsInt32(int32(-7)))
	assert.Equal(t, uint64(math.MaxUint64), asprim.AsUint64(uint64(math.MaxUint64)))
	assert.Equal(t, float32(1.5), asprim.AsFloat32(float32(1.5)))
	assert.Equal(t, math.Pi, asprim.AsFloat64(math.Pi))
	assert.Equal(t, asprim.MaxUint128, asprim.AsUint128(asprim.MaxUint128))
	assert.Equal(t, asprim.MinInt128, asprim.AsInt128(asprim.MinInt128))
}

func TestIntegerTruncation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(44), asprim.AsUint8(300))
	assert.Equal(t, uint8(44), asprim.AsUint8(int16(300)))
	assert.Equal(t, int8(44), asprim.AsInt8(uint64(300)))
	assert.Equal(t, uint8(255), asprim.AsUint8(asprim.Int128From64(-1)))
	assert.Equal(t, int64(0), asprim.AsInt64(asprim.MinInt128))
	assert.Equal(t, uint16(0xcdef), asprim.AsUint16(uint64(0x89abcdef)))
}

func TestCrossSignSameWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(4294967295), asprim.AsUint32(int32(-1)))
	assert.Equal(t, int32(-1), asprim.AsInt32(uint32(4294967295)))
	assert.Equal(t, int8(-128), asprim.AsInt8(uint8(128)))
	assert.Equal(t, asprim.MaxUint128, asprim.AsUint128(asprim.Int128From64(-1)))
}

func TestSignExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(-1), asprim.AsInt64(int8(-1)))
	assert.Equal(t, uint64(math.MaxUint64), asprim.AsUint64(int8(-1)))
	assert.Equal(t, asprim.MaxUint128, asprim.AsUint128(int8(-1)))
	assert.Equal(t, asprim.Int128From64(-300), asprim.AsInt128(int16(-300)))

	// widening an unsigned source zero-extends
	assert.Equal(t, int64(255), asprim.AsInt64(uint8(255)))
	assert.Equal(t, asprim.Int128FromUint64(255), asprim.AsInt128(uint8(255)))
}

func TestFloatToIntegerSaturation(t *testing.T) {
	t.Parallel()

	t.Run("above range", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint8(255), asprim.AsUint8(math.MaxFloat64))
		assert.Equal(t, uint16(math.MaxUint16), asprim.AsUint16(65536.0))
		assert.Equal(t, uint32(math.MaxUint32), asprim.AsUint32(float32(1e10)))
		assert.Equal(t, uint64(math.MaxUint64), asprim.AsUint64(0x1p64))
		assert.Equal(t, int8(math.MaxInt8), asprim.AsInt8(128.0))
		assert.Equal(t, int16(math.MaxInt16), asprim.AsInt16(1e6))
		assert.Equal(t, int32(math.MaxInt32), asprim.AsInt32(2.5e9))
		assert.Equal(t, int64(math.MaxInt64), asprim.AsInt64(math.Inf(1)))
		assert.Equal(t, asprim.MaxInt128, asprim.AsInt128(0x1p127))
		assert.Equal(t, asprim.MaxUint128, asprim.AsUint128(0x1p128))
	})

	t.Run("below range", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint8(0), asprim.AsUint8(-math.MaxFloat64))
		assert.Equal(t, uint64(0), asprim.AsUint64(-1.5))
		assert.Equal(t, uint32(0), asprim.AsUint32(float32(-0.5)))
		assert.Equal(t, int8(math.MinInt8), asprim.AsInt8(-129.0))
		assert.Equal(t, int16(math.MinInt16), asprim.AsInt16(-32769.0))
		assert.Equal(t, int32(math.MinInt32), asprim.AsInt32(-1e10))
		assert.Equal(t, int64(math.MinInt64), asprim.AsInt64(math.Inf(-1)))
		assert.Equal(t, asprim.MinInt128, asprim.AsInt128(-0x1p127))
		assert.True(t, asprim.AsUint128(math.Inf(-1)).IsZero())
	})

	t.Run("just inside range", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int8(127), asprim.AsInt8(127.9))
		assert.Equal(t, int8(-128), asprim.AsInt8(-128.9))
		assert.Equal(t, uint8(255), asprim.AsUint8(255.9))
	})
}

func TestFloatNaN(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	assert.Equal(t, 0, asprim.AsInt(nan))
	assert.Equal(t, int8(0), asprim.AsInt8(nan))
	assert.Equal(t, int16(0), asprim.AsInt16(nan))
	assert.Equal(t, int32(0), asprim.AsInt32(nan))
	assert.Equal(t, int64(0), asprim.AsInt64(nan))
	assert.Equal(t, uint(0), asprim.AsUint(nan))
	assert.Equal(t, uint8(0), asprim.AsUint8(nan))
	assert.Equal(t, uint16(0), asprim.AsUint16(nan))
	assert.Equal(t, uint32(0), asprim.AsUint32(nan))
	assert.Equal(t, uint64(0), asprim.AsUint64(nan))
	assert.Equal(t, uintptr(0), asprim.AsUintptr(nan))
	assert.True(t, asprim.AsInt128(nan).IsZero())
	assert.True(t, asprim.AsUint128(nan).IsZero())

	// a float32 NaN behaves the same
	assert.Equal(t, int64(0), asprim.AsInt64(float32(nan)))
	assert.Equal(t, uint8(0), asprim.AsUint8(float32(nan)))
}

func TestFloatTruncatesTowardZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(2), asprim.AsInt64(2.9))
	assert.Equal(t, int64(-2), asprim.AsInt64(-2.9))
	assert.Equal(t, uint8(44), asprim.AsUint8(44.9))
	assert.Equal(t, uint64(0), asprim.AsUint64(0.999))
	assert.Equal(t, asprim.Int128From64(-1), asprim.AsInt128(-1.9))
}

func TestFloatToFloat(t *testing.T) {
	t.Parallel()

	// widening is exact
	assert.Equal(t, float64(float32(math.Pi)), asprim.AsFloat64(float32(math.Pi)))

	// narrowing overflows to infinity
	assert.True(t, math.IsInf(float64(asprim.AsFloat32(math.MaxFloat64)), 1))
	assert.True(t, math.IsInf(float64(asprim.AsFloat32(-1e39)), -1))
}

func TestIntegerToFloatRounding(t *testing.T) {
	t.Parallel()

	// uint64 max rounds up to 2^64
	assert.Equal(t, 0x1p64, asprim.AsFloat64(uint64(math.MaxUint64)))

	// 2^24+1 is an exact tie in float32 and rounds to the even neighbor
	assert.Equal(t, float32(16777216), asprim.AsFloat32(int32(16777217)))

	assert.Equal(t, -1.0, asprim.AsFloat64(int8(-1)))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int16(-1234), asprim.AsInt16(asprim.AsInt64(int16(-1234))))
	assert.Equal(t, uint8(200), asprim.AsUint8(asprim.AsFloat32(uint8(200))))
	assert.Equal(t, int32(-77), asprim.AsInt32(asprim.AsInt128(int32(-77))))
	assert.Equal(t, uint64(1<<52), asprim.AsUint64(asprim.AsFloat64(uint64(1<<52))))
}

func TestAs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(1.0), asprim.As[float32](asprim.Int128From64(1)))
	assert.Equal(t, 1.0, asprim.As[float64](uint8(1)))
	assert.Equal(t, uint8(44), asprim.As[uint8](300))
	assert.Equal(t, asprim.MaxUint128, asprim.As[asprim.Uint128](int8(-1)))
	assert.Equal(t, int32(-7), asprim.As[int32](int32(-7)))
	assert.Equal(t, uintptr(300), asprim.As[uintptr](300.7))
	assert.Equal(t, asprim.Int128From64(5), asprim.As[asprim.Int128](uint16(5)))
}
