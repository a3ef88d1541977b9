package vmath

// CirclesOverlap reports whether two circles intersect
// Strict: touching circles (distance == r1+r2) do not collide
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	d := b.Sub(a)
	sum := ra + rb
	return d.Dot(d) < sum*sum
}
