package pkcs1

import (
	"encoding/hex"
	"math/big"
	"testing"
)

// Codec vectors shared with internal/tools/pkcs1_vector_gen. Values are
// decimal, encodings are hex at the stated width.
var codecVectors = []struct {
	value string
	width int
	hex   string
}{
	{"0", 1, "00"},
	{"0", 3, "000000"},
	{"1", 1, "01"},
	{"255", 1, "ff"},
	{"255", 2, "00ff"},
	{"256", 2, "0100"},
	{"65537", 3, "010001"},
	{"9202000", 3, "8c6950"},
	{"9202000", 4, "008c6950"},
	{"18446744073709551615", 8, "ffffffffffffffff"},
	{"18446744073709551616", 9, "010000000000000000"},
}

func TestConformanceVectors_Codec(t *testing.T) {
	for _, v := range codecVectors {
		x, ok := new(big.Int).SetString(v.value, 10)
		if !ok {
			t.Fatalf("bad vector value %q", v.value)
		}
		want, err := hex.DecodeString(v.hex)
		if err != nil {
			t.Fatalf("bad vector hex %q: %v", v.hex, err)
		}

		got, err := I2OSP(x, v.width)
		if err != nil {
			t.Fatalf("I2OSP(%s, %d): %v", v.value, v.width, err)
		}
		if hex.EncodeToString(got) != hex.EncodeToString(want) {
			t.Fatalf("I2OSP(%s, %d): got %x want %x", v.value, v.width, got, want)
		}
		if OS2IP(want).Cmp(x) != 0 {
			t.Fatalf("OS2IP(%s): got %s want %s", v.hex, OS2IP(want), v.value)
		}
	}
}

// Primitive vectors over the textbook key n=3233, e=17, d=2753.
var primitiveVectors = []struct {
	message    int64
	ciphertext int64
	signature  int64
}{
	{0, 0, 0},
	{1, 1, 1},
	{65, 2790, 588},
	{123, 855, 2746},
	{3232, 3232, 3232},
}

func TestConformanceVectors_Primitives(t *testing.T) {
	k := newTestKey()
	for _, v := range primitiveVectors {
		m := big.NewInt(v.message)

		c, err := RSAEP(k, m)
		if err != nil {
			t.Fatalf("RSAEP(%d): %v", v.message, err)
		}
		if c.Int64() != v.ciphertext {
			t.Fatalf("RSAEP(%d): got %s want %d", v.message, c, v.ciphertext)
		}
		back, err := RSADP(k, c)
		if err != nil {
			t.Fatalf("RSADP(%d): %v", v.ciphertext, err)
		}
		if back.Cmp(m) != 0 {
			t.Fatalf("RSADP(RSAEP(%d)): got %s", v.message, back)
		}

		s, err := RSASP1(k, m)
		if err != nil {
			t.Fatalf("RSASP1(%d): %v", v.message, err)
		}
		if s.Int64() != v.signature {
			t.Fatalf("RSASP1(%d): got %s want %d", v.message, s, v.signature)
		}
		rec, err := RSAVP1(k, s)
		if err != nil {
			t.Fatalf("RSAVP1(%d): %v", v.signature, err)
		}
		if rec.Cmp(m) != 0 {
			t.Fatalf("RSAVP1(RSASP1(%d)): got %s", v.message, rec)
		}
	}
}
