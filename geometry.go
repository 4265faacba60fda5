package treefx

import "math"

// EllipseSegments is the outline resolution used for ellipses.
const EllipseSegments = 16

// QuadSegments is the number of subdivisions per quadratic curve.
const QuadSegments = 8

// AppendEllipse appends segments points around an ellipse centred on the
// origin, counter-clockwise from (rx, 0).
func AppendEllipse(buf []Vec2, rx, ry float64, segments int) []Vec2 {
	if segments < 3 {
		segments = 3
	}
	for i := 0; i < segments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		buf = append(buf, Vec2{X: rx * cos, Y: ry * sin})
	}
	return buf
}

// AppendQuad appends segments points along a quadratic Bézier from p0
// (exclusive) to p1 (inclusive).
func AppendQuad(buf []Vec2, p0, c, p1 Vec2, segments int) []Vec2 {
	if segments < 1 {
		segments = 1
	}
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		u := 1 - t
		buf = append(buf, Vec2{
			X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
			Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
		})
	}
	return buf
}

// AppendBladeOutline appends the closed outline of a bent blade: from the
// root (0,0) up the outer curve to tip, and back down to (width, 0), both
// curves sharing control point c. The result has 2*QuadSegments+1 points;
// point i and point 2*QuadSegments-i face each other across the blade.
func AppendBladeOutline(buf []Vec2, tip, c Vec2, width float64) []Vec2 {
	root := Vec2{}
	buf = append(buf, root)
	buf = AppendQuad(buf, root, c, tip, QuadSegments)
	return AppendQuad(buf, tip, c, Vec2{X: width}, QuadSegments)
}
