package gls254

// F254 is an element of GF(2^254), the quadratic extension GF(2^127)[u]
// with u^2+u+1=0, represented as x = v0 + u*v1.
type F254 struct {
	v0, v1 F127
}

var (
	f254Zero = F254{}
	f254One  = F254{v0: f127One}
	// f254U is the extension generator u.
	f254U = F254{v1: f127One}
	// f254B is the curve constant b, embedded from F127.
	f254B = F254{v0: f127B}
	// f254SqrtB is sqrt(b) = 1 + z^27, embedded from F127.
	f254SqrtB = F254{v0: f127SqrtB}
)

func (a F254) isZero() bool { return a.v0.isZero() && a.v1.isZero() }

func (a F254) equal(b F254) bool { return a.v0.equal(b.v0) && a.v1.equal(b.v1) }

func (a *F254) cmov(b F254, flag uint64) {
	a.v0.cmov(b.v0, flag)
	a.v1.cmov(b.v1, flag)
}

func (a F254) add(b F254) F254 {
	return F254{v0: a.v0.add(b.v0), v1: a.v1.add(b.v1)}
}

func (a F254) addU() F254 {
	return F254{v0: a.v0, v1: a.v1.add(f127One)}
}

// addOne adds the multiplicative identity.
func (a F254) addOne() F254 {
	return F254{v0: a.v0.add(f127One), v1: a.v1}
}

// isZeroMask returns an all-ones 64-bit mask when a is zero.
func (a F254) isZeroMask() uint64 {
	return a.v0.isZeroMask() & a.v1.isZeroMask()
}

// mul implements Karatsuba multiplication for u^2=u+1: given a=(a0,a1),
// b=(b0,b1), t0=a0*b0, t1=a1*b1, t2=(a0+a1)*(b0+b1); result=(t0+t1, t2+t0).
func (a F254) mul(b F254) F254 {
	t0 := a.v0.mul(b.v0)
	t1 := a.v1.mul(b.v1)
	t2 := a.v0.add(a.v1).mul(b.v0.add(b.v1))
	return F254{v0: t0.add(t1), v1: t2.add(t0)}
}

// square collapses the general mul formula for a=b: result = (a0^2+a1^2, a1^2).
func (a F254) square() F254 {
	s0 := a.v0.square()
	s1 := a.v1.square()
	return F254{v0: s0.add(s1), v1: s1}
}

func (a F254) xsquare(n int) F254 {
	r := a
	for i := 0; i < n; i++ {
		r = r.square()
	}
	return r
}

// mulU multiplies a by u: u*(a0+u*a1) = a0*u + a1*u^2 = a0*u+a1*(u+1) = a1+(a0+a1)u.
func (a F254) mulU() F254 {
	t := a.v0.add(a.v1)
	return F254{v0: a.v1, v1: t}
}

// mulU1 multiplies a by u+1 = u^2.
func (a F254) mulU1() F254 {
	t := a.v0.add(a.v1)
	return F254{v0: t, v1: a.v0}
}

func (a F254) mulB127(c F127) F254 {
	return F254{v0: a.v0.mul(c), v1: a.v1.mul(c)}
}

func (a F254) mulSB() F254 {
	return F254{v0: a.v0.mulSB(), v1: a.v1.mulSB()}
}

func (a F254) mulB() F254 {
	return F254{v0: a.v0.mulB(), v1: a.v1.mulB()}
}

func (a F254) divZ() F254 {
	return F254{v0: a.v0.divZ(), v1: a.v1.divZ()}
}

func (a F254) divZ2() F254 {
	return F254{v0: a.v0.divZ2(), v1: a.v1.divZ2()}
}

// phi is the Frobenius automorphism x -> x^(2^127), which on a=(a0,a1)
// is (a0+a1, a1).
func (a F254) phi() F254 {
	return F254{v0: a.v0.add(a.v1), v1: a.v1}
}

// mulSelfPhi computes x*phi(x), which is always an element of GF(2^127).
func (a F254) mulSelfPhi() F127 {
	p := a.mul(a.phi())
	return p.v0
}

// invert computes the multiplicative inverse of a, or zero if a is zero:
// x^-1 = phi(x) / N(x), where N(x) = x*phi(x) is in GF(2^127). A zero
// input flows through as zero without a branch (invert(0) = 0 in F127).
func (a F254) invert() F254 {
	n := a.mulSelfPhi()
	ninv := n.invert()
	return a.phi().mulB127(ninv)
}

func (a F254) div(b F254) F254 {
	return a.mul(b.invert())
}

func (a F254) trace() uint64 { return a.v1.trace() }

// sqrt returns y with y^2=a: y1=sqrt(a1), y0=sqrt(a0+a1).
func (a F254) sqrt() F254 {
	y1 := a.v1.sqrt()
	y0 := a.v0.add(a.v1).sqrt()
	return F254{v0: y0, v1: y1}
}

// qsolve returns y with y^2+y = a + Tr(a)*u. Writing y = y0 + u*y1, the
// u-component needs y1^2+y1 = a1 + Tr(a1), solved by half-trace; of its
// two roots y1, y1+1, exactly one leaves Tr(a0 + y1^2) = 0 (the roots
// differ by Tr(1) = 1 there), and only that one makes the y0 half-trace
// solve its equation exactly, so the root is selected by mask before y0
// is computed.
func (a F254) qsolve() F254 {
	tr := a.v1.trace()
	a1adj := a.v1
	a1adj.cmov(a1adj.add(f127One), tr)
	y1 := a1adj.halftrace()
	bad := a.v0.add(y1.square()).trace()
	y1.cmov(y1.add(f127One), bad)
	y0 := a.v0.add(y1.square()).halftrace()
	return F254{v0: y0, v1: y1}
}

func (a F254) encode(dst []byte) {
	a.v0.encode(dst[0:16])
	a.v1.encode(dst[16:32])
}

func decode32Trunc(src []byte) F254 {
	return F254{v0: decode16Trunc(src[0:16]), v1: decode16Trunc(src[16:32])}
}

func decode32Reduce(src []byte) F254 {
	return F254{v0: decode16Reduce(src[0:16]), v1: decode16Reduce(src[16:32])}
}

func decode32(src []byte) (F254, bool) {
	v0, ok0 := decode16(src[0:16])
	v1, ok1 := decode16(src[16:32])
	return F254{v0: v0, v1: v1}, ok0 && ok1
}
