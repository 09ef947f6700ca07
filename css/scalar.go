package css

// Unit is the measurement kind of a Scalar.
type Unit int

const (
	UnitCells   Unit = iota // absolute terminal cells
	UnitFr                  // weighted fraction of leftover space
	UnitPercent             // percentage of the parent dimension
	UnitVw                  // percentage of the viewport width
	UnitVh                  // percentage of the viewport height
	UnitAuto                // size to content
)

// Scalar is a numeric style value paired with its unit. Resolution against
// concrete parent and viewport sizes is the layout engine's job; styling
// only carries the pair around. An auto scalar always has Value 0.
type Scalar struct {
	Value float64
	Unit  Unit
}

func Cells(v float64) Scalar   { return Scalar{Value: v, Unit: UnitCells} }
func Fr(v float64) Scalar      { return Scalar{Value: v, Unit: UnitFr} }
func Percent(v float64) Scalar { return Scalar{Value: v, Unit: UnitPercent} }
func Vw(v float64) Scalar      { return Scalar{Value: v, Unit: UnitVw} }
func Vh(v float64) Scalar      { return Scalar{Value: v, Unit: UnitVh} }
func Auto() Scalar             { return Scalar{Unit: UnitAuto} }

// IsAuto reports whether the scalar is the auto marker.
func (s Scalar) IsAuto() bool {
	return s.Unit == UnitAuto
}

func (s Scalar) String() string {
	switch s.Unit {
	case UnitFr:
		return formatNumber(s.Value) + "fr"
	case UnitPercent:
		return formatNumber(s.Value) + "%"
	case UnitVw:
		return formatNumber(s.Value) + "vw"
	case UnitVh:
		return formatNumber(s.Value) + "vh"
	case UnitAuto:
		return "auto"
	}
	return formatNumber(s.Value)
}

// ScalarBox holds one scalar per side, used by margin and padding.
type ScalarBox struct {
	Top    Scalar
	Right  Scalar
	Bottom Scalar
	Left   Scalar
}

// BoxAll gives every side the same scalar.
func BoxAll(v Scalar) ScalarBox {
	return ScalarBox{Top: v, Right: v, Bottom: v, Left: v}
}

// BoxSymmetric pairs a vertical scalar for top and bottom with a horizontal
// one for left and right.
func BoxSymmetric(vertical, horizontal Scalar) ScalarBox {
	return ScalarBox{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Box sets all four sides in top, right, bottom, left order.
func Box(top, right, bottom, left Scalar) ScalarBox {
	return ScalarBox{Top: top, Right: right, Bottom: bottom, Left: left}
}

func (b ScalarBox) String() string {
	return b.Top.String() + " " + b.Right.String() + " " + b.Bottom.String() + " " + b.Left.String()
}
