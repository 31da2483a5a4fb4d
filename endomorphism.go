package gls254

// zeta applies the GLS endomorphism on affine coordinates. Writing
// scaled_x = x0 + u*x1 and scaled_s = s0 + u*s1, zeta maps the point to
//
//	x' = (x0+x1) + u*x1
//	s' = (s0+s1+x0) + u*(s1+x0+x1)
//
// and -zeta (selected by an all-ones zn mask) differs only in which of
// x0, x1 folds into the s components:
//
//	s' = (s0+s1+x1) + u*(s1+x0)
//
// On the prime-order subgroup zeta acts as multiplication by mu, the
// square root of -1 modulo r used by the scalar split. The map is pure
// field addition; both variants are computed and the result selected by
// mask. The affine neutral (0, sqrt(b)) maps to itself.
func (p PointAffine) zeta(zn uint64) PointAffine {
	x0, x1 := p.X.v0, p.X.v1
	s0, s1 := p.S.v0, p.S.v1
	zx := F254{v0: x0.add(x1), v1: x1}
	zsPos := F254{v0: s0.add(s1).add(x0), v1: s1.add(x0).add(x1)}
	zsNeg := F254{v0: s0.add(s1).add(x1), v1: s1.add(x0)}
	zs := zsPos
	zs.cmov(zsNeg, zn)
	return PointAffine{X: zx, S: zs}
}

// makeWindowAffine8 fills win with 1*p .. 8*p in affine coordinates.
// All eight entries share a single field inversion (Montgomery's batch
// trick); the Z coordinates are nonzero by representation invariant, so
// no zero handling is needed.
func makeWindowAffine8(p Point) [8]PointAffine {
	var ext [8]Point
	ext[0] = p
	ext[1] = p.Double()
	for i := 2; i < 8; i++ {
		ext[i] = ext[i-1].Add(p)
	}
	var prefix [8]F254
	acc := f254One
	for i := range ext {
		prefix[i] = acc
		acc = acc.mul(ext[i].Z)
	}
	accInv := acc.invert()
	var win [8]PointAffine
	for i := 7; i >= 0; i-- {
		zi := accInv.mul(prefix[i])
		accInv = accInv.mul(ext[i].Z)
		win[i] = PointAffine{
			X: ext[i].X.mul(zi),
			S: ext[i].S.mul(zi.square()),
		}
	}
	return win
}

// lookup8Affine returns k*P in constant time for k in [-8, 8], where win
// holds 1*P .. 8*P; k = 0 yields the neutral. The selection scans every
// entry with an equality mask, and negative k negates by mask.
func lookup8Affine(win *[8]PointAffine, k int8) PointAffine {
	kw := uint32(int32(k))
	sign := uint64(int64(int32(k)) >> 8)
	abs := (kw ^ uint32(int32(k)>>7)) - uint32(int32(k)>>7)
	r := neutralAffine
	for i := uint32(0); i < 8; i++ {
		d := abs ^ (i + 1)
		m := uint64(int64(int32(d)-1) >> 32)
		r.X.cmov(win[i].X, m)
		r.S.cmov(win[i].S, m)
	}
	return r.condNeg(sign)
}

// recode4u64 Booth-recodes the low 64 bits of n (little-endian bytes)
// into 16 signed base-16 digits in [-8, 8], low digit first, returning
// the carry out of the top digit (the digits then stand for n - 2^64).
func recode4u64(n []byte) (sd [16]int8, carry uint32) {
	var cc uint32
	for i := 0; i < 8; i++ {
		x := uint32(n[i])
		d := (x & 0x0F) + cc
		m := (8 - d) >> 8
		sd[(i<<1)+0] = int8(d - (m & 16))
		cc = m & 1

		d = (x >> 4) + cc
		m = (8 - d) >> 8
		sd[(i<<1)+1] = int8(d - (m & 16))
		cc = m & 1
	}
	return sd, cc
}

// recode4u128 is the 16-byte analogue producing 32 digits; the input
// must be below 2^127, which guarantees a zero final carry.
func recode4u128(n []byte) (sd [32]int8) {
	var cc uint32
	for i := 0; i < 16; i++ {
		x := uint32(n[i])
		d := (x & 0x0F) + cc
		m := (8 - d) >> 8
		sd[(i<<1)+0] = int8(d - (m & 16))
		cc = m & 1

		d = (x >> 4) + cc
		m = (8 - d) >> 8
		sd[(i<<1)+1] = int8(d - (m & 16))
		cc = m & 1
	}
	return sd
}

// ScalarMul computes k*p through the GLS decomposition: k splits into
// two half-width scalars, the window is built over sign-adjusted p, and
// a single ladder of 4-bit Booth digits walks both halves, folding the
// second half through zeta (or -zeta, matching the relative sign of the
// two halves) at lookup time.
func ScalarMul(p Point, k Scalar) Point {
	n0, s0, n1, s1 := k.split()

	q := p.condNeg(s0)
	win := makeWindowAffine8(q)
	zn := s0 ^ s1

	sd0 := recode4u128(n0[:])
	sd1 := recode4u128(n1[:])

	pa := lookup8Affine(&win, sd0[31])
	qa := lookup8Affine(&win, sd1[31]).zeta(zn)
	r := addAffineAffine(pa, qa)
	for i := 30; i >= 0; i-- {
		r = r.xdouble(4)
		pa = lookup8Affine(&win, sd0[i])
		qa = lookup8Affine(&win, sd1[i]).zeta(zn)
		r = r.Add(addAffineAffine(pa, qa))
	}
	return r
}

// ScalarMulGen computes k*BasePoint using the four precomputed windows
// of 1..8 times (2^{0,32,64,96})*B, so only seven 4-bit doubling runs
// are needed; the split's signs are restored by a final conditional
// negation since the tables hold the unsigned multiples.
func ScalarMulGen(k Scalar) Point {
	n0, s0, n1, s1 := k.split()
	zn := s0 ^ s1
	sd0 := recode4u128(n0[:])
	sd1 := recode4u128(n1[:])

	q := addAffineAffine(lookup8Affine(&precompB, sd0[7]),
		lookup8Affine(&precompB32, sd0[15]))
	q = q.Add(addAffineAffine(lookup8Affine(&precompB64, sd0[23]),
		lookup8Affine(&precompB96, sd0[31])))
	q = q.Add(addAffineAffine(lookup8Affine(&precompB, sd1[7]).zeta(zn),
		lookup8Affine(&precompB32, sd1[15]).zeta(zn)))
	q = q.Add(addAffineAffine(lookup8Affine(&precompB64, sd1[23]).zeta(zn),
		lookup8Affine(&precompB96, sd1[31]).zeta(zn)))

	for i := 6; i >= 0; i-- {
		q = q.xdouble(4)
		q = q.Add(addAffineAffine(lookup8Affine(&precompB, sd0[i]),
			lookup8Affine(&precompB32, sd0[i+8])))
		q = q.Add(addAffineAffine(lookup8Affine(&precompB64, sd0[i+16]),
			lookup8Affine(&precompB96, sd0[i+24])))
		q = q.Add(addAffineAffine(lookup8Affine(&precompB, sd1[i]).zeta(zn),
			lookup8Affine(&precompB32, sd1[i+8]).zeta(zn)))
		q = q.Add(addAffineAffine(lookup8Affine(&precompB64, sd1[i+16]).zeta(zn),
			lookup8Affine(&precompB96, sd1[i+24]).zeta(zn)))
	}
	return q.condNeg(s0)
}
