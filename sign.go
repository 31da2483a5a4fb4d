package gls254

import "unsafe"

// Signature is a 48-byte signature: the 16-byte challenge cb followed
// by the 32-byte scalar cb0*sec + mu*cb1*sec + k mod r, where cb0, cb1
// are the two 64-bit halves of cb and k the per-signature nonce.
type Signature [48]byte

// Sign produces a deterministic signature over data (optionally
// pre-hashed under a named hash function). The nonce scalar is derived
// by hashing the secret scalar, the encoded public key, the
// length-prefixed caller seed, the domain tag and the message; an empty
// seed yields fully deterministic signatures, a varying seed (a clock,
// random bytes) hardens against fault attacks without affecting
// verifiability.
func (sk *PrivateKey) Sign(seed []byte, hashName string, data []byte) Signature {
	h := NewHasher()
	var secBytes [32]byte
	sk.sec.bytes(secBytes[:])
	h.Write(secBytes[:])
	h.Write(sk.pub.enc[:])
	var lenBuf [8]byte
	enc64le(lenBuf[:], uint64(len(seed)))
	h.Write(lenBuf[:])
	h.Write(seed)
	writeDomainTag(h, hashName)
	h.Write(data)
	var kBytes [32]byte
	h.Finalize(kBytes[:])

	k := scalarReduce(kBytes[:])
	R := ScalarMulGen(k)
	cb := makeChallenge(R, sk.pub.enc[:], hashName, data)

	c := scalarReduce(cb[0:8])
	d := scalarReduce(cb[8:16])
	d.mul(d, scalarMU)
	c.add(c, d)
	c.mul(c, sk.sec)
	c.add(c, k)

	var sig Signature
	copy(sig[0:16], cb[:])
	c.bytes(sig[16:48])

	memclear(unsafe.Pointer(&kBytes[0]), 32)
	memclear(unsafe.Pointer(&secBytes[0]), 32)
	k.clear()
	return sig
}
