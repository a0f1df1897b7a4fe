package keys

import (
	"crypto/rsa"
	"math/big"

	"github.com/nfgallimore/rsa/pkcs1"
)

// Public is a concrete (modulus, public exponent) pair implementing
// pkcs1.PublicKey.
type Public struct {
	N *big.Int
	E *big.Int
}

func (k Public) Public() (n, e *big.Int) { return k.N, k.E }

// Private is a concrete (modulus, private exponent) pair implementing
// pkcs1.PrivateKey.
type Private struct {
	N *big.Int
	D *big.Int
}

func (k Private) Private() (n, d *big.Int) { return k.N, k.D }

// FromPublic adapts a crypto/rsa public key to its (n, e) view.
func FromPublic(pub *rsa.PublicKey) Public {
	return Public{N: pub.N, E: big.NewInt(int64(pub.E))}
}

// FromPrivate adapts a crypto/rsa private key to its (n, d) view.
func FromPrivate(priv *rsa.PrivateKey) Private {
	return Private{N: priv.N, D: priv.D}
}

// Size returns the modulus length in octets. This is the k of RFC 3447: the
// exact width of ciphertext and signature octet strings produced with I2OSP.
func Size(pub pkcs1.PublicKey) int {
	n, _ := pub.Public()
	return (n.BitLen() + 7) / 8
}
