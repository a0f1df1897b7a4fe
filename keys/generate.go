package keys

import (
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"

	circlmath "github.com/cloudflare/circl/math"
)

// Generate returns a new RSA key pair with a modulus of the given bit length.
func Generate(random io.Reader, bits int) (*rsa.PrivateKey, error) {
	return rsa.GenerateKey(random, bits)
}

// GenerateSafe returns a new RSA key pair whose modulus is the product of
// two distinct safe primes, with public exponent 65537.
//
// Safe-prime generation is substantially slower than Generate and the
// resulting keys are interchangeable with ordinary ones; some protocols
// require strong moduli, which is the only reason to prefer this.
func GenerateSafe(random io.Reader, bits int) (*rsa.PrivateKey, error) {
	if bits < 64 {
		return nil, fmt.Errorf("modulus of %d bits is too small", bits)
	}
	if bits%2 != 0 {
		return nil, fmt.Errorf("modulus bit length must be even, got %d", bits)
	}

	e := big.NewInt(65537)
	one := big.NewInt(1)
	for {
		p, err := circlmath.SafePrime(random, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := circlmath.SafePrime(random, bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		n := new(big.Int).Mul(p, q)
		if n.BitLen() != bits {
			continue
		}

		p1 := new(big.Int).Sub(p, one)
		q1 := new(big.Int).Sub(q, one)
		phi := new(big.Int).Mul(p1, q1)
		d := new(big.Int)
		if d.ModInverse(e, phi) == nil {
			// e divides p-1 or q-1; pick new primes.
			continue
		}

		key := &rsa.PrivateKey{
			PublicKey: rsa.PublicKey{N: n, E: 65537},
			D:         d,
			Primes:    []*big.Int{p, q},
		}
		key.Precompute()
		return key, nil
	}
}
