package hvac

import (
	"math"
	"strconv"
)

// BoundedUnit is a physical quantity with a plausible field range.
type BoundedUnit interface {
	Value() float64
	MaxValue() float64
	MinValue() float64
}

// InRange reports if the unit lies within its plausible range. NaN
// and infinities are never in range.
func InRange(u BoundedUnit) bool {
	v := u.Value()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= u.MinValue() && v <= u.MaxValue()
}

func IsFinite(u BoundedUnit) bool {
	v := u.Value()
	return math.IsNaN(v) == false && math.IsInf(v, 0) == false
}

// Temperature in degree Fahrenheit.
type Temperature float64

func (t Temperature) Value() float64    { return float64(t) }
func (t Temperature) MaxValue() float64 { return 250 }
func (t Temperature) MinValue() float64 { return -60 }

func (t Temperature) String() string {
	return strconv.FormatFloat(float64(t), 'f', -1, 64)
}

// FlowRate is a volumetric air flow in cubic feet per minute.
type FlowRate float64

func (f FlowRate) Value() float64    { return float64(f) }
func (f FlowRate) MaxValue() float64 { return 100000 }
func (f FlowRate) MinValue() float64 { return 0 }

func (f FlowRate) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}
