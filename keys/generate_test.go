package keys

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	circlmath "github.com/cloudflare/circl/math"

	"github.com/nfgallimore/rsa/pkcs1"
)

func TestGenerateSafe(t *testing.T) {
	// Small modulus keeps safe-prime search fast; correctness does not
	// depend on the size.
	priv, err := GenerateSafe(rand.Reader, 128)
	if err != nil {
		t.Fatalf("GenerateSafe: %v", err)
	}

	if priv.N.BitLen() != 128 {
		t.Fatalf("modulus bit length: got %d want 128", priv.N.BitLen())
	}
	if priv.E != 65537 {
		t.Fatalf("public exponent: got %d want 65537", priv.E)
	}
	if len(priv.Primes) != 2 {
		t.Fatalf("expected 2 primes, got %d", len(priv.Primes))
	}
	for _, p := range priv.Primes {
		if !circlmath.IsSafePrime(p) {
			t.Fatalf("prime %s is not a safe prime", p)
		}
	}
	if err := priv.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// The generated pair must be algebraically usable.
	m := big.NewInt(424242)
	s, err := pkcs1.RSASP1(FromPrivate(priv), m)
	if err != nil {
		t.Fatalf("RSASP1: %v", err)
	}
	got, err := pkcs1.RSAVP1(FromPublic(&priv.PublicKey), s)
	if err != nil {
		t.Fatalf("RSAVP1: %v", err)
	}
	if got.Cmp(m) != 0 {
		t.Fatalf("verify(sign(m)) = %s, want %s", got, m)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerateSafe_PropagatesRandomnessErrors(t *testing.T) {
	if _, err := GenerateSafe(failingReader{}, 128); err == nil {
		t.Fatalf("expected error from failing randomness source")
	}
}

func TestGenerateSafe_RejectsBadSizes(t *testing.T) {
	if _, err := GenerateSafe(rand.Reader, 32); err == nil {
		t.Fatalf("expected error for tiny modulus")
	}
	if _, err := GenerateSafe(rand.Reader, 127); err == nil {
		t.Fatalf("expected error for odd bit length")
	}
}
