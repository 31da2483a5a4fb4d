package gls254

import "unsafe"

// ECDH combines sk with a peer's public key into a 32-byte shared key.
// If the peer key failed to decode (its point is the neutral), a key is
// still produced, derived from the local secret scalar instead of the
// shared point, so outsiders cannot guess it and the two outcomes only
// differ in the returned flag. The key derivation hashes the two public
// encodings in lexicographic order, a success/failure tag byte, and the
// raw shared secret, making the output symmetric between the parties.
func (sk *PrivateKey) ECDH(peer *PublicKey) (shared [32]byte, ok bool) {
	bad := peer.pp.isNeutralMask()

	var secBytes [32]byte
	sk.sec.bytes(secBytes[:])

	p := ScalarMul(peer.pp, sk.sec)
	var raw [32]byte
	p.encode(raw[:])
	mask := byte(bad)
	for i := 0; i < 32; i++ {
		raw[i] ^= mask & (raw[i] ^ secBytes[i])
	}

	// Order the two public keys by a constant-time borrow chain, then
	// swap by mask.
	a, b := &sk.pub.enc, &peer.enc
	var cc uint32
	for i := 31; i >= 0; i-- {
		cc = (uint32(a[i]) - uint32(b[i]) - cc) >> 31
	}
	zx := cc - 1
	var tmp [64]byte
	for i := 0; i < 32; i++ {
		z1 := uint32(a[i])
		z2 := uint32(b[i])
		zz := zx & (z1 ^ z2)
		tmp[i] = byte(z1 ^ zz)
		tmp[i+32] = byte(z2 ^ zz)
	}

	tag := byte(0x53) - (byte(bad) & (0x53 - 0x46))
	h := NewHasher()
	h.Write(tmp[:])
	h.Write([]byte{tag})
	h.Write(raw[:])
	h.Finalize(shared[:])

	memclear(unsafe.Pointer(&secBytes[0]), 32)
	memclear(unsafe.Pointer(&raw[0]), 32)
	return shared, bad == 0
}

// ECDHRaw is the benchmark-oriented variant working on 64-byte
// uncompressed points: the peer point is public here, so invalid input
// is rejected up front instead of masked. The scaled result is
// re-normalized and written back in uncompressed form.
func ECDHRaw(dst, src []byte, k Scalar) bool {
	p, ok := decodeUncompressed(src)
	if ok == 0 {
		return false
	}
	r := ScalarMul(p, k)
	r.encodeUncompressed(dst[:64])
	return true
}
