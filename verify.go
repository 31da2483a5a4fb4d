package gls254

// Verify checks a 48-byte signature against a public key. This is the
// one deliberately variable-time operation in the package: public keys,
// signatures and verification data are public, so it trades the
// constant-time discipline for skipping zero digits. The recomputed
// nonce point is d*G - e*P for signature scalar d and challenge scalar
// e = cb0 + mu*cb1; both multiplications run in one joint ladder that
// combines a window over -P (with zeta covering the mu*cb1 component)
// and the generator's precomputed windows (with the signature scalar's
// GLS split signs folded into the digit lookups).
func Verify(pk *PublicKey, sig Signature, hashName string, data []byte) bool {
	if pk.pp.IsNeutral() {
		return false
	}
	if !scalarIsReduced(sig[16:48]) {
		return false
	}

	var d Scalar
	d.setBytes(sig[16:48])
	v0, t0, v1, t1 := d.split()

	negP := pk.pp.Negate()
	win := makeWindowAffine8(negP)

	sd0, cc0 := recode4u64(sig[0:8])
	sd1, cc1 := recode4u64(sig[8:16])
	sd2 := recode4u128(v0[:])
	sd3 := recode4u128(v1[:])

	// The 64-bit Booth recodings may carry out, in which case the digit
	// string stands for cb - 2^64; seed the ladder with the missing
	// 2^64 multiple of the corresponding term.
	var R Point
	switch {
	case cc0 != 0 && cc1 != 0:
		R = addAffineAffine(win[0], win[0].zeta(0))
	case cc0 != 0:
		R = negP
	case cc1 != 0:
		R = win[0].zeta(0).toExtended()
	default:
		R = Neutral
	}

	for i := 15; i >= 0; i-- {
		R = R.xdouble(4)

		if k0, k1 := sd0[i], sd1[i]; k0 != 0 || k1 != 0 {
			R = addVar(R, term{win, k0, false, 0}, term{win, k1, true, 0})
		}
		if k0, k1 := sd2[i], sd2[i+16]; k0 != 0 || k1 != 0 {
			R = addVar(R, term{precompB, signDigit(k0, t0), false, 0},
				term{precompB64, signDigit(k1, t0), false, 0})
		}
		if k0, k1 := sd3[i], sd3[i+16]; k0 != 0 || k1 != 0 {
			R = addVar(R, term{precompB, k0, true, t1},
				term{precompB64, k1, true, t1})
		}
	}

	expect := makeChallenge(R, pk.enc[:], hashName, data)
	var got [16]byte
	copy(got[:], sig[0:16])
	return expect == got
}

// signDigit folds an all-ones sign mask into a Booth digit, matching a
// conditional negation of the looked-up point.
func signDigit(k int8, s uint64) int8 {
	if s != 0 {
		return -k
	}
	return k
}

// term is one digit lookup of a joint-ladder step: a window, a Booth
// digit, and whether (and with which sign mask) zeta applies.
type term struct {
	win      [8]PointAffine
	k        int8
	useZeta  bool
	zetaSign uint64
}

func (t term) point() PointAffine {
	p := lookup8Affine(&t.win, t.k)
	if t.useZeta {
		p = p.zeta(t.zetaSign)
	}
	return p
}

// addVar adds the two digit terms to R, skipping zero digits
// (variable-time; at least one digit is nonzero by the caller's check).
func addVar(R Point, a, b term) Point {
	switch {
	case a.k != 0 && b.k != 0:
		return R.Add(addAffineAffine(a.point(), b.point()))
	case a.k != 0:
		return R.addAffine(a.point())
	default:
		return R.addAffine(b.point())
	}
}
