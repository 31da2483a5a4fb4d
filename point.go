package gls254

// Point is a GLS254 group element in extended coordinates (X, S, Z, T),
// with Z != 0, T = X*Z, affine x = X/Z and s = S/Z^2, on the curve
//
//	s^2 + x*s = (sqrt(b)*x^2 + u*x + sqrt(b))^2
//
// (equivalently, in extended form, S^2 + T*S equals the square of
// sqrt(b)*X^2 + u*T + sqrt(b)*Z^2). The group neutral is the affine
// point (0, sqrt(b)). A coordinate tuple is stable under the scaling
// (X, S, Z, T) -> (c*X, c^2*S, c*Z, c^2*T) for any nonzero c.
type Point struct {
	X, S, Z, T F254
}

// PointAffine is a point in affine (scaled) coordinates. The neutral is
// representable as (0, sqrt(b)), so no separate infinity flag is needed.
type PointAffine struct {
	X, S F254
}

// Neutral is the group's neutral element.
var Neutral = Point{X: f254Zero, S: f254SqrtB, Z: f254One, T: f254Zero}

var neutralAffine = PointAffine{X: f254Zero, S: f254SqrtB}

// BasePoint is the conventional generator of the prime-order subgroup.
var BasePoint = precompB[0].toExtended()

// The group law is evaluated through a birational map to the short
// Weierstrass curve W: eta^2 + xi*eta = xi^3 + u*xi^2 + b*xi, with
// xi = sqrt(b)*x and eta = sqrt(b)*(s + sqrt(b)*x^2 + u*x + sqrt(b)).
// The map sends the neutral to the 2-torsion point T2 = (0,0) of W, so
// P (+) Q here corresponds to P + Q + T2 on W; adding T2 at the end of
// every operation is a cheap coordinate swap. Lopez-Dahab projective
// coordinates (Xw/Zw, Yw/Zw^2) are used on W so that no inversion is
// needed until a point is normalized.
type wPoint struct {
	X, Y, Z F254
}

func (p Point) toW() wPoint {
	xw := p.X.mulSB()
	yw := p.S.mulSB().
		add(p.X.square().mulB()).
		add(p.T.mulSB().mulU()).
		add(p.Z.square().mulB())
	return wPoint{X: xw, Y: yw, Z: p.Z}
}

func (w wPoint) toExtended() Point {
	x := w.X
	z := w.Z.mulSB()
	s := w.X.square().
		add(w.X.mul(w.Z).mulU()).
		add(w.Y).
		add(w.Z.square().mulB()).
		mulSB()
	return Point{X: x, S: s, Z: z, T: x.mul(z)}
}

// translate adds the 2-torsion point (0,0) of W: in affine terms
// (xi, eta) -> (b/xi, b*(eta+xi)/xi^2), which in projective coordinates
// is a multiplication-light coordinate swap. The input is never the
// point at infinity or (0,0) itself when called from add and double.
func (w wPoint) translate() wPoint {
	return wPoint{
		X: w.Z.mulB(),
		Y: w.Y.add(w.X.mul(w.Z)).mulB(),
		Z: w.X,
	}
}

// wDouble doubles on W: lambda = (eta + xi^2 + b)/xi gives
// xi3 = lambda^2 + lambda + u.
func (w wPoint) double() wPoint {
	d := w.Y.add(w.X.square()).add(w.Z.square().mulB())
	e := w.X.mul(w.Z)
	e2 := e.square()
	x3 := d.square().add(d.mul(e)).add(e2.mulU())
	x4z2 := w.X.square().square().mul(w.Z.square())
	y3 := x4z2.mul(d.add(w.Y)).
		add(e.mul(d).mul(x3)).
		add(e2.mul(x3))
	return wPoint{X: x3, Y: y3, Z: e2}
}

// wAdd adds two distinct-x W points (the caller handles the B = 0
// degenerate cases by mask selection).
func wAdd(p, q wPoint) wPoint {
	z1s := p.Z.square()
	z2s := q.Z.square()
	a := p.Y.mul(z2s).add(q.Y.mul(z1s))
	b := p.X.mul(q.Z).add(q.X.mul(p.Z))
	z12 := p.Z.mul(q.Z)
	c := z12.mul(b)
	c2 := c.square()
	b3 := b.square().mul(b)
	x3 := a.square().add(a.mul(c)).add(c2.mulU()).add(z12.mul(b3))
	z23 := z2s.mul(q.Z)
	y3 := a.mul(c).mul(x3).
		add(c2.mul(x3)).
		add(a.mul(p.X).mul(z1s.mul(z23)).mul(b3)).
		add(p.Y.mul(z1s).mul(z2s.square()).mul(b3.mul(b)))
	return wPoint{X: x3, Y: y3, Z: c2}
}

func (p Point) isNeutralMask() uint64 {
	return p.X.isZeroMask()
}

// IsNeutral reports whether p is the group neutral.
func (p Point) IsNeutral() bool {
	return p.isNeutralMask() != 0
}

// Negate returns -p; negation in affine is s -> s + x, which lifts to
// S -> S + T in extended coordinates.
func (p Point) Negate() Point {
	return Point{X: p.X, S: p.S.add(p.T), Z: p.Z, T: p.T}
}

// condNeg negates p iff ctl is all-ones; ctl must be all-ones or zero.
func (p Point) condNeg(ctl uint64) Point {
	r := p
	r.S.cmov(p.S.add(p.T), ctl)
	return r
}

func (p PointAffine) negate() PointAffine {
	return PointAffine{X: p.X, S: p.S.add(p.X)}
}

func (p PointAffine) condNeg(ctl uint64) PointAffine {
	r := p
	r.S.cmov(p.S.add(p.X), ctl)
	return r
}

func (p PointAffine) toExtended() Point {
	return Point{X: p.X, S: p.S, Z: f254One, T: p.X}
}

// ToAffine normalizes p to affine coordinates (one inversion).
func (p Point) ToAffine() PointAffine {
	zi := p.Z.invert()
	return PointAffine{X: p.X.mul(zi), S: p.S.mul(zi.square())}
}

// cmov sets p to q if ctl is all-ones, leaves it alone if ctl is zero.
func (p *Point) cmov(q Point, ctl uint64) {
	p.X.cmov(q.X, ctl)
	p.S.cmov(q.S, ctl)
	p.Z.cmov(q.Z, ctl)
	p.T.cmov(q.T, ctl)
}

// Double returns 2*p.
func (p Point) Double() Point {
	r := p.toW().double().translate().toExtended()
	r.cmov(Neutral, p.isNeutralMask())
	return r
}

// xdouble applies n successive doublings; n is public.
func (p Point) xdouble(n int) Point {
	r := p
	for i := 0; i < n; i++ {
		r = r.Double()
	}
	return r
}

// Add returns p + q. The formula set is complete: the generic chord
// path, the doubling path and the neutral results are all computed (or
// cheaply derived) and the correct one is selected by masks, so no
// control flow depends on the operand values.
func (p Point) Add(q Point) Point {
	w1 := p.toW()
	w2 := q.toW()
	b := w1.X.mul(w2.Z).add(w2.X.mul(w1.Z))
	a := w1.Y.mul(w2.Z.square()).add(w2.Y.mul(w1.Z.square()))
	generic := wAdd(w1, w2).translate().toExtended()
	dbl := p.Double()

	bZero := b.isZeroMask()
	aZero := a.isZeroMask()
	r := generic
	r.cmov(dbl, bZero&aZero)
	r.cmov(Neutral, bZero&^aZero)
	pz := p.isNeutralMask()
	qz := q.isNeutralMask()
	r.cmov(q, pz)
	r.cmov(p, qz&^pz)
	return r
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Negate())
}

// addAffine adds an affine point to p.
func (p Point) addAffine(q PointAffine) Point {
	return p.Add(q.toExtended())
}

// addAffineAffine adds two affine points into extended coordinates.
func addAffineAffine(p, q PointAffine) Point {
	return p.toExtended().Add(q.toExtended())
}

// equalMask compares two group elements across coordinate scalings:
// X1*Z2 = X2*Z1 and S1*Z2^2 = S2*Z1^2.
func (p Point) equalMask(q Point) uint64 {
	t1 := p.X.mul(q.Z).add(q.X.mul(p.Z))
	t2 := p.S.mul(q.Z.square()).add(q.S.mul(p.Z.square()))
	return t1.isZeroMask() & t2.isZeroMask()
}

func (p Point) equal(q Point) bool {
	return p.equalMask(q) != 0
}

// encode writes the canonical 32-byte compressed form of p: the field
// element w = sqrt(s/x), with w = 0 for the neutral. Negating a point
// turns w into w+1, and the two points sharing an x with the translate
// pair 1/x resolve uniquely during decoding, so the encoding is
// injective on the group. s/x equals S/T in extended coordinates, and
// division by zero yields zero, which makes the neutral case fall out
// without a branch.
func (p Point) encode(dst []byte) {
	w := p.S.div(p.T).sqrt()
	w.encode(dst[:32])
}

// decode parses a canonical compressed point. It returns an all-ones
// mask on success; on any failure (reserved bits set, unsolvable
// quadratic, value outside the prime-order subgroup) it returns zero
// and the neutral point. Exactly one byte string decodes to each group
// element.
func decode(src []byte) (Point, uint32) {
	if len(src) != 32 {
		return Neutral, 0
	}
	w, okBits := decode32(src)
	if !okBits {
		return Neutral, 0
	}
	if w.isZero() {
		return Neutral, 0xFFFFFFFF
	}
	// From w^2 + w = v/x with v = sb*x^2 + u*x + sb, the candidate
	// x values are the roots of sb*x^2 + (u+e)*x + sb where e = w^2+w,
	// i.e. x = d*chi for d = (u+e)/sb and chi^2 + chi = 1/d^2.
	e := w.square().add(w)
	d := e.addU().mulB127(f127InvSqrtB)
	if d.isZero() {
		return Neutral, 0
	}
	idn := d.invert().square()
	if idn.trace() != 0 {
		return Neutral, 0
	}
	chi := idn.qsolve()
	x := d.mul(chi)
	if x.mulSB().trace() != 0 {
		x = x.add(d)
	}
	if x.mulSB().trace() != 0 {
		return Neutral, 0
	}
	s := w.square().mul(x)
	return PointAffine{X: x, S: s}.toExtended(), 0xFFFFFFFF
}

// encodeUncompressed writes the 64-byte affine form (x, s), used only
// by the raw ECDH entry point.
func (p Point) encodeUncompressed(dst []byte) {
	a := p.ToAffine()
	a.X.encode(dst[0:32])
	a.S.encode(dst[32:64])
}

// decodeUncompressed validates canonical coordinate encodings, the
// curve equation and prime-order subgroup membership.
func decodeUncompressed(src []byte) (Point, uint32) {
	if len(src) != 64 {
		return Neutral, 0
	}
	x, ok1 := decode32(src[0:32])
	s, ok2 := decode32(src[32:64])
	if !ok1 || !ok2 {
		return Neutral, 0
	}
	v := x.square().mulSB().add(x.mulU()).add(f254SqrtB)
	lhs := s.square().add(x.mul(s))
	if !lhs.equal(v.square()) {
		return Neutral, 0
	}
	if !x.isZero() && x.mulSB().trace() != 0 {
		return Neutral, 0
	}
	return PointAffine{X: x, S: s}.toExtended(), 0xFFFFFFFF
}

// f127InvSqrtB is 1/sqrt(b), computed once at startup.
var f127InvSqrtB = f127SqrtB.invert()
