package asprim

type (
	// Signed matches the built-in signed integer types.
	//
	// These type sets intentionally have no ~ approximation: conversion
	// semantics are defined for the primitive types themselves, and the
	// dispatch in the As functions switches on the exact dynamic type.
	Signed interface {
		int | int8 | int16 | int32 | int64
	}

	// Unsigned matches the built-in unsigned integer types, uintptr included.
	Unsigned interface {
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
	}

	// Float matches the built-in floating-point types.
	Float interface {
		float32 | float64
	}

	// Primitive matches every built-in numeric type.
	Primitive interface {
		Signed | Unsigned | Float
	}

	// Numeric matches every supported variant: the built-in numeric types
	// plus the 128-bit integer values provided by this package.
	Numeric interface {
		Primitive | Int128 | Uint128
	}
)
