package chroma

import (
	"fmt"
	"math"
)

// AngleScalar is the set of payload types an angle can wrap.
type AngleScalar interface {
	~int16 | ~int32 | ~float32
}

// canonAngle reduces v modulo period into [0, period).
// Shared by every angle type; integer payloads pass through float64
// losslessly (int16 and int32 are exactly representable).
func canonAngle[T AngleScalar](v, period T) T {
	m := T(math.Mod(float64(v), float64(period)))
	if m < 0 {
		m += period
		// for a tiny negative remainder the sum rounds up to the
		// period itself in float32; that is the one value the type
		// must never hold
		if m >= period {
			m = 0
		}
	}
	return m
}

func checkFiniteAngle[T AngleScalar](v T) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("chroma: non-finite angle value %v", f))
	}
}

// Deg is an angle in degrees, always in [0, 360).
//
// Every constructor and every arithmetic method canonicalizes its result,
// so an out-of-range value is never observable. Constructing from NaN or
// ±Inf panics; out-of-range finite values wrap silently.
type Deg[T AngleScalar] struct {
	v T
}

// NewDeg wraps v into [0, 360). Panics if v is NaN or infinite.
func NewDeg[T AngleScalar](v T) Deg[T] {
	checkFiniteAngle(v)
	return Deg[T]{canonAngle(v, T(360))}
}

// Value returns the canonical payload in [0, 360).
func (d Deg[T]) Value() T { return d.v }

// Add returns d + o, wrapped.
func (d Deg[T]) Add(o Deg[T]) Deg[T] { return NewDeg(d.v + o.v) }

// Sub returns d − o, wrapped.
func (d Deg[T]) Sub(o Deg[T]) Deg[T] { return NewDeg(d.v - o.v) }

// Mul returns d·o, wrapped.
func (d Deg[T]) Mul(o Deg[T]) Deg[T] { return NewDeg(d.v * o.v) }

// Div returns d/o, wrapped. For float payloads, dividing by zero panics
// (the quotient is not a finite angle).
func (d Deg[T]) Div(o Deg[T]) Deg[T] { return NewDeg(d.v / o.v) }

// Mod returns d mod o, wrapped. Panics if o is zero.
func (d Deg[T]) Mod(o Deg[T]) Deg[T] {
	if o.v == 0 {
		panic("chroma: angle modulo by zero")
	}
	return NewDeg(T(math.Mod(float64(d.v), float64(o.v))))
}

// Inv returns the angle mirrored around the 0°/180° axis, i.e. 360° − d.
func (d Deg[T]) Inv() Deg[T] { return NewDeg(T(360) - d.v) }

func (d Deg[T]) String() string { return fmt.Sprintf("%v°", d.v) }

// TwoPi is the period of Rad as a single-precision constant.
const TwoPi = float32(2 * math.Pi)

// Rad is an angle in radians, always in [0, 2π).
//
// The period is 2π rounded to float32, so results may land arbitrarily
// close below the period due to floating rounding at the wrap boundary.
// Construction from NaN or ±Inf panics.
type Rad struct {
	v float32
}

// NewRad wraps v into [0, 2π). Panics if v is NaN or infinite.
func NewRad(v float32) Rad {
	checkFiniteAngle(v)
	return Rad{canonAngle(v, TwoPi)}
}

// Value returns the canonical payload in [0, 2π).
func (r Rad) Value() float32 { return r.v }

// Add returns r + o, wrapped.
func (r Rad) Add(o Rad) Rad { return NewRad(r.v + o.v) }

// Sub returns r − o, wrapped.
func (r Rad) Sub(o Rad) Rad { return NewRad(r.v - o.v) }

// Mul returns r·o, wrapped.
func (r Rad) Mul(o Rad) Rad { return NewRad(r.v * o.v) }

// Div returns r/o, wrapped. Dividing by zero panics.
func (r Rad) Div(o Rad) Rad { return NewRad(r.v / o.v) }

// Mod returns r mod o, wrapped. Panics if o is zero.
func (r Rad) Mod(o Rad) Rad {
	if o.v == 0 {
		panic("chroma: angle modulo by zero")
	}
	return NewRad(float32(math.Mod(float64(r.v), float64(o.v))))
}

func (r Rad) String() string { return fmt.Sprintf("%v rad", r.v) }
