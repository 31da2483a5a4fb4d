package gls254

import "crypto/rand"

// PrivateKey holds a reduced secret scalar together with its derived,
// pre-encoded public key.
type PrivateKey struct {
	sec Scalar
	pub PublicKey
}

// PublicKey holds the decoded point and its 32-byte compressed
// encoding. The raw encoding is preserved even when decoding failed
// (the point then being the neutral): ECDH needs the attacker-supplied
// bytes to keep its failure path indistinguishable.
type PublicKey struct {
	pp  Point
	enc [32]byte
}

// GenerateKey creates a new private key from fresh system entropy.
func GenerateKey() (*PrivateKey, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	return NewKeyFromSeed(seed[:]), nil
}

// NewKeyFromSeed derives a private key deterministically from an
// arbitrary-length seed, hashing it under the keygen domain prefix and
// reducing the digest modulo the group order.
func NewKeyFromSeed(seed []byte) *PrivateKey {
	h := NewHasher()
	h.Write([]byte("GLS254 keygen:"))
	h.Write(seed)
	var secBytes [32]byte
	h.Finalize(secBytes[:])

	sk := &PrivateKey{sec: scalarReduce(secBytes[:])}
	sk.pub.pp = ScalarMulGen(sk.sec)
	sk.pub.pp.encode(sk.pub.enc[:])
	return sk
}

// DecodePrivateKey decodes a 32-byte secret scalar, rejecting zero and
// out-of-range encodings. On failure the returned key is zeroed (its
// point is the neutral) alongside the error; operations on such a key
// still run deterministically but produce unusable results.
func DecodePrivateKey(src []byte) (*PrivateKey, error) {
	if len(src) != 32 {
		return &PrivateKey{pub: PublicKey{pp: Neutral}}, ErrMalformedScalar
	}
	var sec Scalar
	if !sec.setBytesSeckey(src) {
		return &PrivateKey{pub: PublicKey{pp: Neutral}}, ErrMalformedScalar
	}
	sk := &PrivateKey{sec: sec}
	sk.pub.pp = ScalarMulGen(sec)
	sk.pub.pp.encode(sk.pub.enc[:])
	return sk, nil
}

// Bytes returns the 32-byte little-endian secret scalar encoding.
func (sk *PrivateKey) Bytes() []byte {
	dst := make([]byte, 32)
	sk.sec.bytes(dst)
	return dst
}

// Public returns the derived public key.
func (sk *PrivateKey) Public() *PublicKey {
	return &sk.pub
}

// DecodePublicKey decodes a 32-byte compressed point. The original
// bytes are retained in the returned key even on failure, with the
// point set to the neutral; the neutral itself is also rejected as a
// public key.
func DecodePublicKey(src []byte) (*PublicKey, error) {
	pk := &PublicKey{pp: Neutral}
	if len(src) != 32 {
		return pk, ErrMalformedPoint
	}
	copy(pk.enc[:], src)
	p, ok := decode(src)
	if ok == 0 || p.IsNeutral() {
		pk.pp = Neutral
		return pk, ErrMalformedPoint
	}
	pk.pp = p
	return pk, nil
}

// Bytes returns the 32-byte compressed encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	dst := make([]byte, 32)
	copy(dst, pk.enc[:])
	return dst
}
