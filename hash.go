package gls254

import "golang.org/x/crypto/blake2s"

// Hasher wraps a BLAKE2s-256 context, the protocol's sole hash
// primitive: key derivation, challenges, hash-to-point and the ECDH KDF
// all run through it.
type Hasher struct {
	h hashState
}

type hashState interface {
	Write([]byte) (int, error)
	Sum([]byte) []byte
	Reset()
}

// NewHasher creates a fresh BLAKE2s-256 hash context.
func NewHasher() *Hasher {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err)
	}
	return &Hasher{h: h}
}

func (h *Hasher) Write(data []byte) { h.h.Write(data) }

// Finalize writes the 32-byte digest to out32.
func (h *Hasher) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	sum := h.h.Sum(nil)
	copy(out32, sum)
}

// Clear drops the wrapped state so key-derived material does not linger
// in a reusable context.
func (h *Hasher) Clear() {
	h.h = nil
}

func enc64le(dst []byte, x uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(x >> (8 * uint(i)))
	}
}

// Domain-separation prefixes: raw data is tagged 0x52, data pre-hashed
// under a named function is tagged 0x48 followed by the NUL-terminated
// name.
const (
	tagRaw   = 0x52
	tagNamed = 0x48
)

func writeDomainTag(h *Hasher, hashName string) {
	if hashName == "" {
		h.Write([]byte{tagRaw})
		return
	}
	h.Write([]byte{tagNamed})
	h.Write([]byte(hashName))
	h.Write([]byte{0})
}

// HashToPoint hashes data (optionally pre-hashed under a named
// function) to a group element: two independently tagged 32-byte blobs
// are derived and mapped to the curve, and their sum is returned. The
// per-blob map is biased; summing two independent applications makes
// the output indistinguishable from uniform.
func HashToPoint(hashName string, data []byte) Point {
	var blob1, blob2 [32]byte
	h1 := NewHasher()
	h1.Write([]byte{0x01})
	writeDomainTag(h1, hashName)
	h1.Write(data)
	h1.Finalize(blob1[:])

	h2 := NewHasher()
	h2.Write([]byte{0x02})
	writeDomainTag(h2, hashName)
	h2.Write(data)
	h2.Finalize(blob2[:])

	return MapToPoint(blob1[:]).Add(MapToPoint(blob2[:]))
}

// MapToPoint deterministically maps 32 bytes to a curve point in the
// prime-order subgroup. The bytes decode (with reduction) to a field
// element that, after a trace fix-up, serves as the square of the
// invariant g = sqrt(b)*(x + 1/x) of a candidate point: x then comes
// out of the quadratic xi^2 + g'*xi + b over the internal Weierstrass
// model, solvable whenever Tr(b/g^2) = 0. A candidate list c, c+z^2,
// u*c, u^2*c is scanned in order; the traces of b/c, b/(u*c) and
// b/(u^2*c) can never all be 1 (their sum is the trace of an element of
// the subfield times u-conjugates, which vanishes), so a solvable
// candidate always exists away from a handful of degenerate inputs
// that map to the neutral. The output is therefore total but biased;
// HashToPoint cancels the bias.
func MapToPoint(src []byte) Point {
	if len(src) != 32 {
		return Neutral
	}
	c := decode32Reduce(src)
	// Force Tr(c) = 1 and clear the z-coefficient of the u component,
	// normalizing the candidate before the scan.
	trFix := 1 - c.trace()
	c.v1.xorBit(0, trFix)
	c.v1.xorBit(1, c.v1.getBit(1))

	cands := [4]F254{
		c,
		{v0: c.v0.add(F127{lo: 4}), v1: c.v1},
		c.mulU(),
		c.mulU().mulU(),
	}
	var g2 F254
	found := false
	for _, cand := range cands {
		if cand.isZero() {
			continue
		}
		if f254B.div(cand).trace() == 0 {
			g2 = cand
			found = true
			break
		}
	}
	if !found {
		return Neutral
	}
	g := g2.sqrt()
	chi := f254B.div(g2).qsolve()
	xi := g.mul(chi)
	if xi.trace() != 0 {
		xi = xi.add(g)
	}
	x := xi.mulB127(f127InvSqrtB)
	// Solve the curve equation for s: with v = sb*x^2 + u*x + sb, the
	// two roots of m^2 + m = (v/x)^2 give s = x*m and s + x.
	v := x.square().mulSB().add(x.mulU()).add(f254SqrtB)
	t := v.div(x).square()
	m := t.qsolve()
	s := x.mul(m)
	return PointAffine{X: x, S: s}.toExtended()
}

// makeChallenge computes the 16-byte Schnorr challenge binding the
// nonce point R, the signer's encoded public key and the message.
func makeChallenge(R Point, pubEnc []byte, hashName string, data []byte) [16]byte {
	var tmp [32]byte
	R.encode(tmp[:])
	h := NewHasher()
	h.Write(tmp[:])
	h.Write(pubEnc)
	writeDomainTag(h, hashName)
	h.Write(data)
	var full [32]byte
	h.Finalize(full[:])
	var out [16]byte
	copy(out[:], full[:16])
	return out
}
