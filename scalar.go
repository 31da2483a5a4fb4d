package gls254

import (
	"crypto/subtle"
	"unsafe"
)

// Scalar is an element of Z/rZ, where r = 2^253 + r0 is the prime order of
// the GLS254 base point's subgroup. Internally it is a fixed 8x32-bit-limb
// (i256) integer, least-significant limb first; all modular arithmetic
// below is built on addcarry/subborrow limb chains and partial reduction
// rather than a variable-time bignum library, so every operation runs in
// time independent of the scalar's value. The external encoding is 32
// bytes, unsigned little-endian.
type Scalar struct {
	v i256
}

type i128 [4]uint32
type i256 [8]uint32
type i384 [12]uint32
type i512 [16]uint32

func addC32(cc, x, y uint32) (uint32, uint32) {
	w := uint64(x) + uint64(y) + uint64(cc)
	return uint32(w), uint32(w >> 32)
}

func subB32(cc, x, y uint32) (uint32, uint32) {
	w := uint64(x) - uint64(y) - uint64(cc)
	return uint32(w), uint32(w >> 63)
}

func getU32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putU32LE(dst []byte, x uint32) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
}

func i256Decode(b []byte) i256 {
	var d i256
	for i := 0; i < 8; i++ {
		d[i] = getU32LE(b[4*i:])
	}
	return d
}

func i256Encode(a i256, dst []byte) {
	for i := 0; i < 8; i++ {
		putU32LE(dst[4*i:], a[i])
	}
}

func i256IsZero(a i256) bool {
	x := a[0] | a[1] | a[2] | a[3] | a[4] | a[5] | a[6] | a[7]
	return x == 0
}

// i256Cmp returns -1, 0 or 1 as a<b, a==b, a>b, via a subtract-with-borrow
// pass (no early exit, so the cost is independent of where the inputs
// differ).
func i256Cmp(a, b i256) int {
	var cc uint32
	var diffAny uint32
	for i := 0; i < 8; i++ {
		_, ncc := subB32(cc, a[i], b[i])
		cc = ncc
		diffAny |= a[i] ^ b[i]
	}
	if diffAny == 0 {
		return 0
	}
	if cc != 0 {
		return -1
	}
	return 1
}

// i128AbsEncode writes the absolute value of signed 128-bit a (two's
// complement) to dst (16 bytes, little-endian), returning the sign mask
// (0xFFFFFFFF if negative, 0 otherwise), matching i128_abs_encode.
func i128AbsEncode(dst []byte, a i128) uint32 {
	s := uint32(int32(a[3]) >> 31)
	var cc uint32
	for i := 0; i < 4; i++ {
		x, ncc := subB32(cc, a[i]^s, s)
		cc = ncc
		putU32LE(dst[4*i:], x)
	}
	return s
}

func sub128trunc(a, b i128) i128 {
	var d i128
	var cc uint32
	for i := 0; i < 4; i++ {
		d[i], cc = subB32(cc, a[i], b[i])
	}
	return d
}

func mul128x128trunc(a, b i128) i128 {
	var t i128
	f := b[0]
	var g uint32
	for i := 0; i < 4; i++ {
		z := uint64(f)*uint64(a[i]) + uint64(g)
		t[i] = uint32(z)
		g = uint32(z >> 32)
	}
	for j := 1; j < 4; j++ {
		f = b[j]
		g = 0
		for i := 0; i < 4-j; i++ {
			z := uint64(f)*uint64(a[i]) + uint64(g) + uint64(t[i+j])
			t[i+j] = uint32(z)
			g = uint32(z >> 32)
		}
	}
	return t
}

func mul128x128(a, b i128) i256 {
	var d i256
	f := b[0]
	var g uint32
	for i := 0; i < 4; i++ {
		z := uint64(f)*uint64(a[i]) + uint64(g)
		d[i] = uint32(z)
		g = uint32(z >> 32)
	}
	d[4] = g
	for j := 1; j < 4; j++ {
		f = b[j]
		g = 0
		for i := 0; i < 4; i++ {
			z := uint64(f)*uint64(a[i]) + uint64(g) + uint64(d[i+j])
			d[i+j] = uint32(z)
			g = uint32(z >> 32)
		}
		d[j+4] = g
	}
	return d
}

func mul256x128(a i256, b i128) i384 {
	var al, ah i128
	copy(al[:], a[0:4])
	copy(ah[:], a[4:8])
	dl := mul128x128(al, b)
	dh := mul128x128(ah, b)
	var d i384
	copy(d[0:4], dl[0:4])
	var cc uint32
	d[4], cc = addC32(0, dl[4], dh[0])
	for i := 1; i < 4; i++ {
		d[4+i], cc = addC32(cc, dl[4+i], dh[i])
	}
	for i := 4; i < 8; i++ {
		d[4+i], cc = addC32(cc, 0, dh[i])
	}
	return d
}

func mul256x256(a, b i256) i512 {
	var al, ah i128
	copy(al[:], a[0:4])
	copy(ah[:], a[4:8])
	dl := mul256x128(b, al)
	dh := mul256x128(b, ah)
	var d i512
	copy(d[0:4], dl[0:4])
	var cc uint32
	d[4], cc = addC32(0, dl[4], dh[0])
	for i := 1; i < 8; i++ {
		d[4+i], cc = addC32(cc, dl[4+i], dh[i])
	}
	for i := 8; i < 12; i++ {
		d[4+i], cc = addC32(cc, 0, dh[i])
	}
	return d
}

// r = 2^253 + r0, r0 = 83877821160623817322862211711964450037.
var scalarR0 = i128{0xF43A8CF5, 0x3CBDE37C, 0xDC1A1DAD, 0x3F1A47DE}

const scalarRTop = uint32(0x20000000)

// (r+1)/2.
var scalarRhf = i256{
	0x7A1D467B, 0x9E5EF1BE, 0x6E0D0ED6, 0x1F8D23EF,
	0x00000000, 0x00000000, 0x00000000, 0x10000000,
}

// (r-1)/2, padded to 384 bits.
var scalarHRpad = i384{
	0x7A1D467A, 0x9E5EF1BE, 0x6E0D0ED6, 0x1F8D23EF,
	0x00000000, 0x00000000, 0x00000000, 0x10000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000,
}

// 8*r0 (mod 2^128).
var scalarR0x8m = i128{0xA1D467A8, 0xE5EF1BE7, 0xE0D0ED69, 0xF8D23EF6}

// 16*r (mod 2^256).
var scalarRx16m = i256{
	0x43A8CF50, 0xCBDE37CF, 0xC1A1DAD3, 0xF1A47DED,
	0x00000003, 0x00000000, 0x00000000, 0x00000000,
}

const scalarRx16Top = uint32(0x00000002)

// GLS decomposition basis vectors vES and vET.
var (
	basisVES = i128{0x3FA56696, 0x639973CF, 0xFFFFFFFF, 0x3FFFFFFF}
	basisVET = i128{0xC05A9969, 0x9C668C30, 0x00000000, 0x40000000}
)

// scalarMU is mu, the square root of -1 mod r used both in the GLS scalar
// split and in combining the two 64-bit halves of a Schnorr challenge into
// a single scalar.
var scalarMU = Scalar{v: i256{
	0x89A1F614, 0x1B8487FC, 0xFAE163FC, 0x1EEFADF1,
	0x363FE499, 0x9F58BDDA, 0x0F54BC93, 0x17E6D0D0,
}}

// scalarReduce interprets src (any length, unsigned little-endian) as an
// integer and reduces it modulo r: the value is consumed from its most
// significant end in 128-bit chunks, each step shifting the running
// residue up by 128 bits through a 384-bit partial reduction.
func scalarReduce(src []byte) Scalar {
	nchunks := (len(src) + 15) / 16
	if nchunks == 0 {
		return Scalar{}
	}
	var padded []byte
	if len(src)%16 != 0 {
		padded = make([]byte, nchunks*16)
		copy(padded, src)
	} else {
		padded = src
	}
	var state i256
	for ci := nchunks - 1; ci >= 0; ci-- {
		var wide i384
		copy(wide[4:12], state[0:8])
		for i := 0; i < 4; i++ {
			wide[i] = getU32LE(padded[16*ci+4*i:])
		}
		state = modrReduce384Partial(wide)
	}
	return Scalar{v: modrReduce256Finish(state)}
}

// modrReduce256Partial reduces a (widened by extra high bits ah, i.e. up to
// 285 bits) modulo r, producing a result below 2*r (254 bits), matching
// modr_reduce256_partial.
func modrReduce256Partial(a i256, ah uint32) i256 {
	var t i256
	ah = (ah << 3) | (a[7] >> 29)
	copy(t[0:7], a[0:7])
	t[7] = a[7] & 0x1FFFFFFF

	var u [5]uint32
	var x uint32
	for i := 0; i < 4; i++ {
		z := uint64(ah)*uint64(scalarR0[i]) + uint64(x)
		u[i] = uint32(z)
		x = uint32(z >> 32)
	}
	u[4] = x

	var cc uint32
	t[0], cc = subB32(0, t[0], u[0])
	for i := 1; i < 5; i++ {
		t[i], cc = subB32(cc, t[i], u[i])
	}
	for i := 5; i < 8; i++ {
		t[i], cc = subB32(cc, t[i], 0)
	}

	x = -cc
	var d i256
	d[0], cc = addC32(0, t[0], x&scalarR0[0])
	for i := 1; i < 4; i++ {
		d[i], cc = addC32(cc, t[i], x&scalarR0[i])
	}
	for i := 4; i < 7; i++ {
		d[i], cc = addC32(cc, t[i], 0)
	}
	d[7], _ = addC32(cc, t[7], x&scalarRTop)
	return d
}

// modrReduce256Finish conditionally subtracts r from a (assumed < 2*r).
func modrReduce256Finish(a i256) i256 {
	var t i256
	var cc uint32
	t[0], cc = subB32(0, a[0], scalarR0[0])
	for i := 1; i < 4; i++ {
		t[i], cc = subB32(cc, a[i], scalarR0[i])
	}
	for i := 4; i < 7; i++ {
		t[i], cc = subB32(cc, a[i], 0)
	}
	t[7], cc = subB32(cc, a[7], scalarRTop)

	m := -cc
	var d i256
	for i := 0; i < 8; i++ {
		d[i] = t[i] ^ (m & (t[i] ^ a[i]))
	}
	return d
}

// modrReduce384Partial reduces a 384-bit value modulo r into a result
// below 2*r, matching modr_reduce384_partial.
func modrReduce384Partial(a i384) i256 {
	var a1 i128
	copy(a1[:], a[8:12])
	t := mul128x128(a1, scalarR0x8m)

	var tWide i384
	copy(tWide[0:8], t[0:8])
	var cc uint32
	tWide[0], cc = subB32(0, a[0], tWide[0])
	for i := 1; i < 8; i++ {
		tWide[i], cc = subB32(cc, a[i], tWide[i])
	}
	t8 := -cc

	tWide[4], cc = subB32(0, tWide[4], a1[0])
	for i := 1; i < 4; i++ {
		tWide[4+i], cc = subB32(cc, tWide[4+i], a1[i])
	}
	t8 -= cc

	m := uint32(int32(t8) >> 31)
	tWide[0], cc = addC32(0, tWide[0], m&scalarRx16m[0])
	for i := 1; i < 8; i++ {
		tWide[i], cc = addC32(cc, tWide[i], m&scalarRx16m[i])
	}
	t8, _ = addC32(cc, t8, m&scalarRx16Top)

	var t256 i256
	copy(t256[:], tWide[0:8])
	return modrReduce256Partial(t256, t8)
}

func modrMul256x256(a, b i256) i256 {
	x := mul256x256(a, b)
	var e i384
	copy(e[:], x[4:16])
	t256 := modrReduce384Partial(e)
	copy(e[0:4], x[0:4])
	copy(e[4:12], t256[0:8])
	t256 = modrReduce384Partial(e)
	return modrReduce256Finish(t256)
}

func (s *Scalar) setInt(x uint64) {
	s.v = i256{uint32(x), uint32(x >> 32)}
}

func scalarRFull() i256 {
	return i256{scalarR0[0], scalarR0[1], scalarR0[2], scalarR0[3], 0, 0, 0, scalarRTop}
}

// setBytes decodes a little-endian 32-byte scalar, reducing modulo r. It
// returns true if the input was >= r (an overflow occurred).
func (s *Scalar) setBytes(b []byte) bool {
	t := i256Decode(b)
	overflow := i256Cmp(t, scalarRFull()) >= 0
	t = modrReduce256Partial(t, 0)
	t = modrReduce256Finish(t)
	s.v = t
	return overflow
}

// setBytesSeckey decodes a secret key scalar, rejecting zero and
// out-of-range encodings outright (returns false).
func (s *Scalar) setBytesSeckey(b []byte) bool {
	t := i256Decode(b)
	if i256IsZero(t) || i256Cmp(t, scalarRFull()) >= 0 {
		return false
	}
	s.v = t
	return true
}

func (s Scalar) bytes(dst []byte) {
	i256Encode(s.v, dst[:32])
}

// scalarIsReduced reports whether the 32 little-endian bytes encode a value
// strictly below r.
func scalarIsReduced(b []byte) bool {
	return i256Cmp(i256Decode(b), scalarRFull()) < 0
}

func (s Scalar) isZero() bool { return i256IsZero(s.v) }

func (s Scalar) equal(o Scalar) bool {
	var a, b [32]byte
	s.bytes(a[:])
	o.bytes(b[:])
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

func (s *Scalar) add(a, b Scalar) {
	var td i256
	var cc uint32
	td[0], cc = addC32(0, a.v[0], b.v[0])
	for i := 1; i < 8; i++ {
		td[i], cc = addC32(cc, a.v[i], b.v[i])
	}
	td = modrReduce256Partial(td, cc)
	s.v = modrReduce256Finish(td)
}

func (s *Scalar) sub(a, b Scalar) {
	var td i256
	var cc uint32
	td[0], cc = subB32(0, a.v[0], b.v[0])
	for i := 1; i < 8; i++ {
		td[i], cc = subB32(cc, a.v[i], b.v[i])
	}
	m := -cc
	var t8 uint32
	td[0], cc = addC32(0, td[0], m&scalarR0x8m[0])
	for i := 1; i < 4; i++ {
		td[i], cc = addC32(cc, td[i], m&scalarR0x8m[i])
	}
	td[4], cc = addC32(cc, td[4], m&1)
	for i := 5; i < 8; i++ {
		td[i], cc = addC32(cc, td[i], 0)
	}
	t8 = cc

	td = modrReduce256Partial(td, t8)
	s.v = modrReduce256Finish(td)
}

func (s *Scalar) mul(a, b Scalar) {
	s.v = modrMul256x256(a.v, b.v)
}

func (s *Scalar) negate(a Scalar) {
	var zero Scalar
	s.sub(zero, a)
}

// condNeg negates s if the low bit of flag is set, by mask rather than
// branch.
func (s *Scalar) condNeg(flag uint64) {
	var neg Scalar
	neg.negate(*s)
	s.cmov(neg, flag)
}

// half sets s = a/2 mod r.
func (s *Scalar) half(a Scalar) {
	x := a.v
	m := -(x[0] & 1)
	for i := 0; i < 7; i++ {
		x[i] = (x[i] >> 1) | (x[i+1] << 31)
	}
	x[7] = x[7] >> 1

	var cc uint32
	x[0], cc = addC32(0, x[0], m&scalarRhf[0])
	for i := 1; i < 8; i++ {
		x[i], cc = addC32(cc, x[i], m&scalarRhf[i])
	}

	x = modrReduce256Partial(x, 0)
	s.v = modrReduce256Finish(x)
}

func (s *Scalar) cmov(a Scalar, flag uint64) {
	mask := uint32(-(flag & 1))
	for i := range s.v {
		s.v[i] ^= mask & (s.v[i] ^ a.v[i])
	}
}

func (s *Scalar) clear() {
	s.v = i256{}
}

// mulDivrRounded sets d = round(k*e/r) for k < r, e < 2^127-2, matching
// mul_divr_rounded.
func mulDivrRounded(k i256, e i128) i128 {
	z := mul256x128(k, e)

	var cc uint32
	for i := 0; i < 12; i++ {
		z[i], cc = addC32(cc, z[i], scalarHRpad[i])
	}

	var z0 i256
	copy(z0[0:7], z[0:7])
	z0[7] = z[7] & 0x1FFFFFFF
	g := z[7] >> 29
	var z1 i128
	for i := 0; i < 4; i++ {
		z1[i] = (z[i+8] << 3) | g
		g = z[i+8] >> 29
	}

	t := mul128x128(z1, scalarR0)

	cc = 0
	for i := 0; i < 8; i++ {
		_, cc = subB32(cc, z0[i], t[i])
	}
	var d i128
	for i := 0; i < 4; i++ {
		d[i], cc = subB32(cc, z1[i], 0)
	}
	return d
}

// splitMu splits the (fully reduced) scalar k into k0,k1 such that
// k = k0 + k1*mu mod r, both signed 128-bit, matching split_mu.
func splitMu(k i256) (k0, k1 i128) {
	c := mulDivrRounded(k, basisVET)
	d := mulDivrRounded(k, basisVES)

	var k0v i128
	copy(k0v[:], k[0:4])
	w := mul128x128trunc(d, basisVES)
	k0v = sub128trunc(k0v, w)
	w = mul128x128trunc(c, basisVET)
	k0v = sub128trunc(k0v, w)

	k1v := mul128x128trunc(d, basisVET)
	w = mul128x128trunc(c, basisVES)
	k1v = sub128trunc(k1v, w)

	return k0v, k1v
}

// split decomposes s as s = sgn(s0)*n0 + mu*sgn(s1)*n1 (mod r) with
// n0, n1 < 2^127 written out as 16 little-endian bytes each, and s0, s1
// all-ones masks flagging the negative components.
func (s Scalar) split() (n0 [16]byte, s0 uint64, n1 [16]byte, s1 uint64) {
	t := modrReduce256Partial(s.v, 0)
	t = modrReduce256Finish(t)
	a0, a1 := splitMu(t)
	sign0 := i128AbsEncode(n0[:], a0)
	sign1 := i128AbsEncode(n1[:], a1)
	s0 = uint64(sign0) | uint64(sign0)<<32
	s1 = uint64(sign1) | uint64(sign1)<<32
	return
}

func memclear(ptr unsafe.Pointer, n uintptr) {
	for i := uintptr(0); i < n; i++ {
		*(*byte)(unsafe.Pointer(uintptr(ptr) + i)) = 0
	}
}
