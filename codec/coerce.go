package codec

import "math"

// toBits coerces a Go numeric value to a 64-bit two's-complement bit
// pattern. Integer field writes keep only the low-order bytes for their
// width, which gives fixed-width store semantics: out-of-range values wrap
// rather than error. Floats truncate toward zero first; NaN and infinities
// store as zero.
func toBits(value any) (uint64, bool) {
	switch v := value.(type) {
	case int:
		return uint64(int64(v)), true
	case int8:
		return uint64(int64(v)), true
	case int16:
		return uint64(int64(v)), true
	case int32:
		return uint64(int64(v)), true
	case int64:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case float32:
		return floatBits(float64(v)), true
	case float64:
		return floatBits(v), true
	}
	return 0, false
}

func floatBits(f float64) uint64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return uint64(int64(math.Trunc(f)))
}

// toFloat64 coerces a Go numeric value for a float field.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
