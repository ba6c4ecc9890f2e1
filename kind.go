package asprim

import "math/bits"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the type tag of a supported numeric variant.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindUintptr
	KindFloat32
	KindFloat64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindOf reports the kind of a value of any supported variant.
func KindOf[S Numeric](v S) Kind {
	switch any(v).(type) {
	default:
		return 0
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case Int128:
		return KindInt128
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case Uint128:
		return KindUint128
	case uintptr:
		return KindUintptr
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	}
}

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64, KindInt128,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUint128,
		KindUintptr:
		return true
	}
}

func (k Kind) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64, KindInt128,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUint128,
		KindUintptr:
		return true
	}
}

func (k Kind) Bits() int {
	switch k {
	default:
		panic("bits amount requested for invalid kind: " + k.String())
	case KindInt, KindUint, KindUintptr:
		return bits.UintSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindInt128, KindUint128:
		return 128
	}
}
