package gls254

import (
	"bytes"
	"testing"
)

func TestKeyRoundTrip(t *testing.T) {
	for i := 0; i < 8; i++ {
		sk := NewKeyFromSeed([]byte{byte(i)})
		enc := sk.Bytes()
		sk2, err := DecodePrivateKey(enc)
		if err != nil {
			t.Fatalf("seed %d: decode private: %v", i, err)
		}
		if !bytes.Equal(sk2.Bytes(), enc) {
			t.Fatalf("seed %d: private roundtrip", i)
		}
		if !sk.pub.pp.equal(sk2.pub.pp) {
			t.Fatalf("seed %d: derived public keys differ", i)
		}
		pk, err := DecodePublicKey(sk.Public().Bytes())
		if err != nil {
			t.Fatalf("seed %d: decode public: %v", i, err)
		}
		if !pk.pp.equal(sk.pub.pp) {
			t.Fatalf("seed %d: public roundtrip", i)
		}
		if !bytes.Equal(pk.Bytes(), sk.Public().Bytes()) {
			t.Fatalf("seed %d: public encoding changed", i)
		}
	}
}

func TestGenerateKey(t *testing.T) {
	sk, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	if sk.sec.isZero() {
		t.Fatal("generated zero secret")
	}
	if sk.pub.pp.IsNeutral() {
		t.Fatal("generated neutral public key")
	}
}

func TestDecodePrivateKeyRejects(t *testing.T) {
	var zero [32]byte
	if _, err := DecodePrivateKey(zero[:]); err == nil {
		t.Fatal("accepted zero private key")
	}
	var big [32]byte
	for i := range big {
		big[i] = 0xFF
	}
	if _, err := DecodePrivateKey(big[:]); err == nil {
		t.Fatal("accepted out-of-range private key")
	}
	if _, err := DecodePrivateKey(zero[:16]); err == nil {
		t.Fatal("accepted short private key")
	}
}

func TestDecodePublicKeyRejects(t *testing.T) {
	// the neutral is a valid encoding but not a valid public key
	var zero [32]byte
	pk, err := DecodePublicKey(zero[:])
	if err == nil {
		t.Fatal("accepted neutral public key")
	}
	if !pk.pp.IsNeutral() {
		t.Fatal("failed decode did not store neutral")
	}
	// the caller's bytes must be preserved for ECDH masking
	bad := make([]byte, 32)
	bad[0] = 0xAB
	bad[15] = 0x80
	pk, err = DecodePublicKey(bad)
	if err == nil {
		t.Fatal("accepted reserved-bit encoding")
	}
	if !bytes.Equal(pk.Bytes(), bad) {
		t.Fatal("failed decode did not preserve input bytes")
	}
}
