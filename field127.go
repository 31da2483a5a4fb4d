package gls254

import "crypto/subtle"

// F127 is an element of GF(2^127) = GF(2)[z]/(z^127 + z^63 + 1), represented
// as a binary polynomial in two 64-bit limbs: lo holds coefficients of
// z^0..z^63, hi holds coefficients of z^64..z^126. Bit 63 of hi (which would
// represent z^127) is always zero in a normalized element.
type F127 struct {
	lo, hi uint64
}

var (
	f127Zero = F127{}
	f127One  = F127{lo: 1}
	// f127SqrtB is sqrt(b) = 1 + z^27, the curve's sqrt(b) constant.
	f127SqrtB = F127{lo: 1 | (1 << 27)}
	// f127B is b = 1 + z^54.
	f127B = F127{lo: 1 | (1 << 54)}
)

// bitElem127 returns the field element z^k for 0 <= k <= 126.
func bitElem127(k int) F127 {
	if k < 64 {
		return F127{lo: uint64(1) << uint(k)}
	}
	return F127{hi: uint64(1) << uint(k-64)}
}

func (a F127) isZero() bool {
	return (a.lo | a.hi) == 0
}

func (a F127) equal(b F127) bool {
	var x, y [16]byte
	a.encode(x[:])
	b.encode(y[:])
	return subtle.ConstantTimeCompare(x[:], y[:]) == 1
}

// cmov sets a to b if flag is 1, leaves a unchanged if flag is 0.
func (a *F127) cmov(b F127, flag uint64) {
	mask := -(flag & 1)
	a.lo ^= mask & (a.lo ^ b.lo)
	a.hi ^= mask & (a.hi ^ b.hi)
}

func (a F127) add(b F127) F127 {
	return F127{lo: a.lo ^ b.lo, hi: a.hi ^ b.hi}
}

// getBit returns bit k (0 or 1) of a, for 0 <= k <= 126.
func (a F127) getBit(k int) uint64 {
	if k < 64 {
		return (a.lo >> uint(k)) & 1
	}
	return (a.hi >> uint(k-64)) & 1
}

// setBit sets bit k of a to val (0 or 1), for 0 <= k <= 126.
func (a *F127) setBit(k int, val uint64) {
	a.xorBit(k, a.getBit(k)^(val&1))
}

// xorBit adds val (0 or 1) to bit k of a, for 0 <= k <= 126.
func (a *F127) xorBit(k int, val uint64) {
	if k < 64 {
		a.lo ^= (val & 1) << uint(k)
	} else {
		a.hi ^= (val & 1) << uint(k-64)
	}
}

// isZeroMask returns an all-ones 64-bit mask when a is zero, else zero.
func (a F127) isZeroMask() uint64 {
	v := a.lo | a.hi
	// fold to a single bit, then spread
	v |= v >> 32
	v |= v >> 16
	v |= v >> 8
	v |= v >> 4
	v |= v >> 2
	v |= v >> 1
	return (v & 1) - 1
}

// trace returns Tr(a), the GF(2)-linear functional sum_{i=0}^{126} a^(2^i).
// For the trinomial z^127+z^63+1, Tr(z^i)=0 for all 0<i<127 and Tr(1)=1 (127
// is odd), so Tr collapses to the constant-term bit of a.
func (a F127) trace() uint64 {
	return a.lo & 1
}

// clmul64 computes the carry-less (GF(2)[z]) product of x and y as a
// 128-bit value (hi,lo), via a constant-time mask-based shift-and-xor.
func clmul64(x, y uint64) (hi, lo uint64) {
	for i := uint(0); i < 64; i++ {
		mask := -((y >> i) & 1)
		lo ^= mask & (x << i)
		if i > 0 {
			hi ^= mask & (x >> (64 - i))
		}
	}
	return
}

// mulWide multiplies two 127-bit polynomials into a 256-bit polynomial
// product, returned as four 64-bit words d0 (least significant) .. d3.
func mulWide(a, b F127) (d0, d1, d2, d3 uint64) {
	h00, l00 := clmul64(a.lo, b.lo)
	h01, l01 := clmul64(a.lo, b.hi)
	h10, l10 := clmul64(a.hi, b.lo)
	h11, l11 := clmul64(a.hi, b.hi)

	d0 = l00
	d1 = h00 ^ l01 ^ l10
	d2 = h01 ^ h10 ^ l11
	d3 = h11
	return
}

// reduce127 reduces a 256-bit polynomial (d0..d3) modulo z^127+z^63+1,
// returning the unique 127-bit representative. Folding is applied a fixed
// three times, which is sufficient for any product of two 127-bit inputs
// (degree <= 252) and is a no-op once the value is already reduced, so the
// operation is safe (and constant-time) to always run fully.
func reduce127(d0, d1, d2, d3 uint64) F127 {
	for iter := 0; iter < 3; iter++ {
		h0 := (d1 >> 63) | (d2 << 1)
		h1 := (d2 >> 63) | (d3 << 1)

		lowD0 := d0
		lowD1 := d1 &^ (uint64(1) << 63)

		k0 := h0 << 63
		k1 := (h0 >> 1) | (h1 << 63)
		k2 := h1 >> 1

		d0 = lowD0 ^ h0 ^ k0
		d1 = lowD1 ^ h1 ^ k1
		d2 = k2
		d3 = 0
	}
	return F127{lo: d0, hi: d1}
}

func (a F127) mul(b F127) F127 {
	return reduce127(mulWide(a, b))
}

// spread32 inserts a zero bit between each bit of x (Morton/interleave
// spreading), used to implement squaring: in characteristic 2,
// (sum a_i z^i)^2 = sum a_i z^(2i).
func spread32(x uint32) uint64 {
	v := uint64(x)
	v = (v | (v << 16)) & 0x0000FFFF0000FFFF
	v = (v | (v << 8)) & 0x00FF00FF00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F0F0F0F0F
	v = (v | (v << 2)) & 0x3333333333333333
	v = (v | (v << 1)) & 0x5555555555555555
	return v
}

func (a F127) square() F127 {
	w0 := uint32(a.lo)
	w1 := uint32(a.lo >> 32)
	w2 := uint32(a.hi)
	w3 := uint32(a.hi >> 32)
	return reduce127(spread32(w0), spread32(w1), spread32(w2), spread32(w3))
}

// xsquare performs n successive squarings of a.
func (a F127) xsquare(n int) F127 {
	r := a
	for i := 0; i < n; i++ {
		r = r.square()
	}
	return r
}

// divZ divides a by z, using the relation z^127 = z^63 + 1: if the constant
// term is 1, it is rewritten as z^127+z^63 before shifting right, so that
// every term is divisible by z.
func (a F127) divZ() F127 {
	drop := a.lo & 1
	r := F127{lo: (a.lo >> 1) | (a.hi << 63), hi: a.hi >> 1}
	mask := -drop
	r.hi ^= mask & (uint64(1) << 62) // z^126
	r.lo ^= mask & (uint64(1) << 62) // z^62
	return r
}

func (a F127) divZ2() F127 {
	return a.divZ().divZ()
}

func (a F127) mulSB() F127 { return a.mul(f127SqrtB) }
func (a F127) mulB() F127  { return a.mul(f127B) }

// invert computes the multiplicative inverse of a, or zero if a is zero,
// as a^(2^127-2) via a fixed Itoh-Tsujii addition chain: each step builds
// a^(2^k-1) from smaller k, ending with k=126, then one final squaring.
func (a F127) invert() F127 {
	t1 := a
	t2 := t1.square().mul(t1)
	t3 := t2.square().mul(t1)
	t6 := t3.xsquare(3).mul(t3)
	t7 := t6.square().mul(t1)
	t14 := t7.xsquare(7).mul(t7)
	t15 := t14.square().mul(t1)
	t30 := t15.xsquare(15).mul(t15)
	t31 := t30.square().mul(t1)
	t62 := t31.xsquare(31).mul(t31)
	t63 := t62.square().mul(t1)
	t126 := t63.xsquare(63).mul(t63)
	return t126.square()
}

func (a F127) div(b F127) F127 {
	return a.mul(b.invert())
}

func compressEven(x uint64) uint32 {
	x &= 0x5555555555555555
	x = (x | (x >> 1)) & 0x3333333333333333
	x = (x | (x >> 2)) & 0x0F0F0F0F0F0F0F0F
	x = (x | (x >> 4)) & 0x00FF00FF00FF00FF
	x = (x | (x >> 8)) & 0x0000FFFF0000FFFF
	x = (x | (x >> 16)) & 0x00000000FFFFFFFF
	return uint32(x)
}

func compressOdd(x uint64) uint32 { return compressEven(x >> 1) }

// sqrt computes the unique square root of a, exploiting the linearity of
// squaring in characteristic 2 by de-interleaving even/odd-indexed bits.
func (a F127) sqrt() F127 {
	eLo := compressEven(a.lo)
	eHi := compressEven(a.hi)
	oLo := compressOdd(a.lo)
	oHi := compressOdd(a.hi)
	e := uint64(eLo) | (uint64(eHi) << 32)
	o := uint64(oLo) | (uint64(oHi) << 32)
	return F127{lo: e}.add(F127{lo: o}.mul(f127SqrtZ))
}

// halftrace returns h such that h^2+h=a when Tr(a)=0 (an arbitrary but
// deterministic solution is produced when Tr(a)=1, per the contract used by
// qsolve in field254.go), via the standard half-trace sum over even
// Frobenius powers.
func (a F127) halftrace() F127 {
	acc := a
	t := a
	for j := 1; j <= 63; j++ {
		t = t.square().square()
		acc = acc.add(t)
	}
	return acc
}

// f127SqrtZ = sqrt(z) = z^(2^126), computed once at init and used by sqrt().
var f127SqrtZ = computeSqrtZ()

func computeSqrtZ() F127 {
	z := bitElem127(1)
	return z.xsquare(126)
}

func (a F127) encode(dst []byte) {
	putUint64LE(dst[0:8], a.lo)
	putUint64LE(dst[8:16], a.hi&^(uint64(1)<<63))
}

func decode16Trunc(src []byte) F127 {
	return F127{lo: getUint64LE(src[0:8]), hi: getUint64LE(src[8:16]) &^ (uint64(1) << 63)}
}

// decode16Reduce folds the top bit of the 128-bit input back into the
// field via z^127 = z^63 + 1 instead of rejecting or ignoring it.
func decode16Reduce(src []byte) F127 {
	lo := getUint64LE(src[0:8])
	hi := getUint64LE(src[8:16])
	top := hi >> 63
	return F127{lo: lo ^ top ^ (top << 63), hi: hi &^ (uint64(1) << 63)}
}

// decode16 decodes a canonical encoding, returning ok=false if the reserved
// top bit of the last byte is set.
func decode16(src []byte) (F127, bool) {
	hi := getUint64LE(src[8:16])
	ok := hi>>63 == 0
	return F127{lo: getUint64LE(src[0:8]), hi: hi &^ (uint64(1) << 63)}, ok
}

func putUint64LE(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * uint(i)))
	}
}

func getUint64LE(src []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(src[i]) << (8 * uint(i))
	}
	return v
}
