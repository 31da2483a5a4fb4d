package gls254

import (
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/blake2s"
)

func TestZetaFormulas(t *testing.T) {
	p := decodeHexPoint(t, katDecodeOK[3]).xdouble(3)
	win := makeWindowAffine8(p)
	a := win[4]
	x0, x1 := a.X.v0, a.X.v1
	s0, s1 := a.S.v0, a.S.v1

	z := a.zeta(0)
	if !z.X.v0.equal(x0.add(x1)) || !z.X.v1.equal(x1) {
		t.Fatal("zeta(0) x components")
	}
	if !z.S.v0.equal(s0.add(s1).add(x0)) || !z.S.v1.equal(s1.add(x0).add(x1)) {
		t.Fatal("zeta(0) s components")
	}
	zn := a.zeta(^uint64(0))
	if !zn.X.v0.equal(x0.add(x1)) || !zn.X.v1.equal(x1) {
		t.Fatal("zeta(-1) x components")
	}
	if !zn.S.v0.equal(s0.add(s1).add(x1)) || !zn.S.v1.equal(s1.add(x0)) {
		t.Fatal("zeta(-1) s components")
	}
	// the all-ones mask selects -zeta: zeta(-1)(P) = -zeta(P)
	if !zn.toExtended().equal(z.toExtended().Negate()) {
		t.Fatal("zeta(-1) != -zeta(0)")
	}
	// zeta acts as multiplication by mu on the subgroup
	zp := ScalarMul(a.toExtended(), scalarMU)
	if !zp.equal(z.toExtended()) {
		t.Fatal("zeta != [mu]")
	}
	// zeta^2 = -1
	zz := z.zeta(0)
	if !zz.toExtended().equal(a.toExtended().Negate()) {
		t.Fatal("zeta^2 != -1")
	}
}

func TestWindowAndLookup(t *testing.T) {
	for i := 1; i < len(katDecodeOK); i += 5 {
		p := decodeHexPoint(t, katDecodeOK[i]).xdouble(3)
		win := makeWindowAffine8(p)
		q := Neutral
		for j := 0; j < 8; j++ {
			q = q.Add(p)
			// win[j] scaled by q's Z must reproduce q's coordinates
			z2 := q.Z.square()
			if !win[j].X.mul(z2).equal(q.T) || !win[j].S.mul(z2).equal(q.S) {
				t.Fatalf("window entry %d mismatch", j)
			}
			r := win[j].toExtended()
			if !r.equal(q) || !r.X.equal(r.T) || !r.Z.equal(f254One) {
				t.Fatalf("window entry %d fromAffine", j)
			}
		}
		for k := -8; k <= 8; k++ {
			got := lookup8Affine(&win, int8(k))
			var want PointAffine
			switch {
			case k < 0:
				want = win[-k-1].negate()
			case k == 0:
				want = neutralAffine
			default:
				want = win[k-1]
			}
			if !got.X.equal(want.X) || !got.S.equal(want.S) {
				t.Fatalf("lookup8Affine(%d)", k)
			}
		}
		if !addAffineAffine(win[2], win[4]).equal(win[7].toExtended()) {
			t.Fatal("3P + 5P != 8P")
		}
	}
}

func TestRecode4(t *testing.T) {
	n := []byte{0xf5, 0x8c, 0x3a, 0xf4, 0x7c, 0xe3, 0xbd, 0x3c,
		0xad, 0x1d, 0x1a, 0xdc, 0xde, 0x47, 0x1a, 0x3f}
	sd := recode4u128(n)
	// reconstruct sum(sd[i] * 16^i) in two 64-bit halves; it must equal
	// the input value exactly (the final carry is zero below 2^127)
	var hi, lo uint64
	for i := 31; i >= 0; i-- {
		if sd[i] < -8 || sd[i] > 8 {
			t.Fatalf("digit %d out of range", i)
		}
		hi = hi<<4 | lo>>60
		lo <<= 4
		old := lo
		lo += uint64(int64(sd[i]))
		if sd[i] >= 0 && lo < old {
			hi++
		} else if sd[i] < 0 && lo > old {
			hi--
		}
	}
	if lo != getUint64LE(n[0:8]) || hi != getUint64LE(n[8:16]) {
		t.Fatalf("recode4u128 reconstructs %016x:%016x", hi, lo)
	}

	// the 64-bit variant reconstructs modulo 2^64, with the carry
	// accounting for the subtracted 2^64
	sd64, cc := recode4u64(n[:8])
	var v uint64
	for i := 15; i >= 0; i-- {
		v = v<<4 + uint64(int64(sd64[i]))
	}
	if v != getUint64LE(n[0:8]) {
		t.Fatalf("recode4u64 reconstructs %016x", v)
	}
	if cc > 1 {
		t.Fatalf("unexpected carry %d", cc)
	}
}

func TestScalarMulKAT(t *testing.T) {
	// k*B for a fixed scalar, from the reference implementation.
	kb, _ := hex.DecodeString("d2d85b649ca1cb28cf6a710ea180864b48be872c7a9585fafc01ff8259ee4e09")
	var k Scalar
	k.setBytes(kb)
	q := ScalarMul(BasePoint, k)
	want := "6832ca87b11a5efd7718bc3cff30dc7e2fe8dd0309aa4744208c43157cc1eb46"
	if got := encodeHex(q); got != want {
		t.Fatalf("mul KAT: got %s", got)
	}
	// 2^120 * B
	p := BasePoint.xdouble(120)
	want = "18e08856b0ee260dd4bb2c94e52044378415677408e515f7fb22fbd6215c2a4b"
	if got := encodeHex(p); got != want {
		t.Fatalf("xdouble KAT: got %s", got)
	}
}

func TestScalarMulProperties(t *testing.T) {
	var k Scalar
	k.setInt(1)
	if !ScalarMul(BasePoint, k).equal(BasePoint) {
		t.Fatal("1*B != B")
	}
	k.setInt(0)
	if !ScalarMul(BasePoint, k).IsNeutral() {
		t.Fatal("0*B != neutral")
	}
	// small multiples against repeated addition
	acc := BasePoint
	for n := uint64(2); n <= 9; n++ {
		acc = acc.Add(BasePoint)
		k.setInt(n)
		if !ScalarMul(BasePoint, k).equal(acc) {
			t.Fatalf("%d*B mismatch", n)
		}
	}
	// (r-1)*B + B is the neutral, i.e. B has order r
	var r1 Scalar
	r1.setInt(1)
	var rm Scalar
	rm.negate(r1) // r-1
	p := ScalarMul(BasePoint, rm)
	if !p.Add(BasePoint).IsNeutral() {
		t.Fatal("(r-1)*B + B != neutral")
	}
}

func TestScalarMulGen(t *testing.T) {
	for i := 0; i < 10; i++ {
		seed := []byte{byte(i)}
		d := blake2s.Sum256(seed)
		var k Scalar
		k.setBytes(d[:])
		p1 := ScalarMul(BasePoint, k)
		p2 := ScalarMulGen(k)
		if !p1.equal(p2) {
			t.Fatalf("mulgen mismatch for seed %d", i)
		}
	}
}

func TestPrecompTables(t *testing.T) {
	// the tables are 1..8 times 2^(32j)*B
	base := BasePoint
	for j, tab := range [][8]PointAffine{precompB, precompB32, precompB64, precompB96} {
		acc := base
		for i := 0; i < 8; i++ {
			if !tab[i].toExtended().equal(acc) {
				t.Fatalf("table %d entry %d mismatch", j, i)
			}
			acc = acc.Add(base)
		}
		base = base.xdouble(32)
	}
}
