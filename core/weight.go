package core

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Weight is the set of numeric types a Graph may carry on its arcs.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Infinity returns the "unreachable" sentinel for W: +Inf for floating point
// types and the largest representable value for integer types.
func Infinity[W Weight]() W {
	var zero W
	switch reflect.ValueOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(1)
		return W(inf)
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return W(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return W(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return W(v)
	case reflect.Int, reflect.Int64:
		v := int64(math.MaxInt64)
		return W(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return W(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return W(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return W(v)
	default: // uint, uint64, uintptr
		v := uint64(math.MaxUint64)
		return W(v)
	}
}

// IsInfinite reports whether w is the Infinity sentinel (or beyond it).
func IsInfinite[W Weight](w W) bool {
	return w >= Infinity[W]()
}

// ValidWeight reports whether w may be stored on an arc: not negative, not NaN
// and below the Infinity sentinel (+Inf for floats, the type's max for integers).
func ValidWeight[W Weight](w W) bool {
	if math.IsNaN(float64(w)) {
		return false
	}

	return w >= 0 && !IsInfinite(w)
}

// AddWeights returns a+b for non-negative a and b. ok is false when the sum
// would reach or pass the Infinity sentinel; the returned value is then
// Infinity[W]().
func AddWeights[W Weight](a, b W) (sum W, ok bool) {
	inf := Infinity[W]()
	if a >= inf || b >= inf || b > inf-a {
		return inf, false
	}
	sum = a + b
	if sum >= inf {
		return inf, false
	}

	return sum, true
}

// LessWeight is the strict ordering used for relaxation and greedy selection.
// Ties are never "less", so the first candidate found is kept.
func LessWeight[W Weight](a, b W) bool { return a < b }
