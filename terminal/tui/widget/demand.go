package widget

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedDemand is the panic value for negative extents or max < min
var ErrMalformedDemand = errors.New("malformed demand")

// Axis is satisfied by the two phantom axis types
type Axis interface {
	Horizontal | Vertical
}

// Horizontal tags demands and extents measured in columns
type Horizontal struct{}

// Vertical tags demands and extents measured in rows
type Vertical struct{}

// Demand is the space requirement along one axis
// The maximum is either a bound or absent (unbounded), never a sentinel
type Demand[A Axis] struct {
	min     int
	max     int
	bounded bool
}

type (
	WidthDemand  = Demand[Horizontal]
	HeightDemand = Demand[Vertical]
)

// Demand2D is what every widget reports
type Demand2D struct {
	Width  WidthDemand
	Height HeightDemand
}

// demands constructs Demand values for one axis
type demands[A Axis] struct{}

var (
	// Cols constructs width demands
	Cols demands[Horizontal]
	// Rows constructs height demands
	Rows demands[Vertical]
)

// Exact demands exactly n cells
func (demands[A]) Exact(n int) Demand[A] {
	return newDemand[A](n, n, true)
}

// FromTo demands at least lo and at most hi cells
func (demands[A]) FromTo(lo, hi int) Demand[A] {
	return newDemand[A](lo, hi, true)
}

// AtLeast demands n cells and accepts any surplus
func (demands[A]) AtLeast(n int) Demand[A] {
	return newDemand[A](n, 0, false)
}

func newDemand[A Axis](lo, hi int, bounded bool) Demand[A] {
	if lo < 0 || (bounded && hi < lo) {
		panic(fmt.Errorf("%w: min %d, max %d", ErrMalformedDemand, lo, hi))
	}
	return Demand[A]{min: lo, max: hi, bounded: bounded}
}

// Min returns the minimum extent
func (d Demand[A]) Min() int {
	return d.min
}

// Max returns the maximum extent, ok is false when unbounded
func (d Demand[A]) Max() (n int, ok bool) {
	return d.max, d.bounded
}

// IsExact reports min == max
func (d Demand[A]) IsExact() bool {
	return d.bounded && d.max == d.min
}

// Add sums two demands, the result is unbounded if either side is
func (d Demand[A]) Add(o Demand[A]) Demand[A] {
	return Demand[A]{
		min:     d.min + o.min,
		max:     d.max + o.max,
		bounded: d.bounded && o.bounded,
	}.normalized()
}

// Join returns the pairwise maximum, unbounded if either side is
func (d Demand[A]) Join(o Demand[A]) Demand[A] {
	return Demand[A]{
		min:     max(d.min, o.min),
		max:     max(d.max, o.max),
		bounded: d.bounded && o.bounded,
	}.normalized()
}

// normalized zeroes the max of unbounded demands so equal demands compare equal
func (d Demand[A]) normalized() Demand[A] {
	if !d.bounded {
		d.max = 0
	}
	return d
}

// String formats as "n", "lo..hi" or "lo.."
func (d Demand[A]) String() string {
	switch {
	case d.IsExact():
		return strconv.Itoa(d.min)
	case d.bounded:
		return strconv.Itoa(d.min) + ".." + strconv.Itoa(d.max)
	default:
		return strconv.Itoa(d.min) + ".."
	}
}

// String formats as "width×height"
func (d Demand2D) String() string {
	return d.Width.String() + "×" + d.Height.String()
}
