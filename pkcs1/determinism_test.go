package pkcs1

import (
	"bytes"
	"math/big"
	"testing"
)

// The primitives and codec hold no state: identical inputs must always
// produce identical outputs, byte for byte.

func TestCodecDeterminism(t *testing.T) {
	x := new(big.Int).SetBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01})

	first, err := I2OSP(x, 8)
	if err != nil {
		t.Fatalf("I2OSP: %v", err)
	}
	for i := 0; i < 16; i++ {
		again, err := I2OSP(x, 8)
		if err != nil {
			t.Fatalf("I2OSP (repeat %d): %v", i, err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("I2OSP not deterministic: %x vs %x", first, again)
		}
		if OS2IP(again).Cmp(x) != 0 {
			t.Fatalf("OS2IP not deterministic at repeat %d", i)
		}
	}
}

func TestPrimitiveDeterminism(t *testing.T) {
	k := newTestKey()
	m := big.NewInt(1234)

	first, err := RSAEP(k, m)
	if err != nil {
		t.Fatalf("RSAEP: %v", err)
	}
	for i := 0; i < 16; i++ {
		again, err := RSAEP(k, m)
		if err != nil {
			t.Fatalf("RSAEP (repeat %d): %v", i, err)
		}
		if first.Cmp(again) != 0 {
			t.Fatalf("RSAEP not deterministic: %s vs %s", first, again)
		}
	}
}

func TestPrimitivesDoNotMutateArguments(t *testing.T) {
	k := newTestKey()
	m := big.NewInt(65)
	nBefore := new(big.Int).Set(k.n)
	mBefore := new(big.Int).Set(m)

	if _, err := RSAEP(k, m); err != nil {
		t.Fatalf("RSAEP: %v", err)
	}
	if k.n.Cmp(nBefore) != 0 {
		t.Fatalf("modulus mutated")
	}
	if m.Cmp(mBefore) != 0 {
		t.Fatalf("message representative mutated")
	}
}
