package pkcs1

import "math/big"

// PublicKey provides read access to an RSA public key as the ordered pair
// (modulus n, public exponent e).
//
// Implementations own the integers; the primitives never mutate them.
type PublicKey interface {
	Public() (n, e *big.Int)
}

// PrivateKey provides read access to an RSA private key as the ordered pair
// (modulus n, private exponent d).
type PrivateKey interface {
	Private() (n, d *big.Int)
}

// ModExp computes base^exponent mod modulus for nonnegative base and
// exponent and a positive modulus.
//
// Implementations are trusted to be total and exact. The primitives perform
// no validation of the modulus or exponent; that is the key provider's
// responsibility.
type ModExp func(base, exponent, modulus *big.Int) *big.Int

// DefaultModExp is the math/big backed modular exponentiation.
func DefaultModExp(base, exponent, modulus *big.Int) *big.Int {
	return new(big.Int).Exp(base, exponent, modulus)
}

// Primitives evaluates the four RSA primitives with a configurable modular
// exponentiation. The zero value uses DefaultModExp.
//
// All methods are pure and safe for concurrent use.
type Primitives struct {
	ModExp ModExp
}

func (p Primitives) modExp() ModExp {
	if p.ModExp == nil {
		return DefaultModExp
	}
	return p.ModExp
}

// RSAEP computes the ciphertext representative c = m^e mod n
// (RFC 3447 section 5.1.1).
//
// Fails with an OutOfRange error when m is not in [0, n); the
// exponentiation is not invoked in that case.
func (p Primitives) RSAEP(pub PublicKey, m *big.Int) (*big.Int, error) {
	n, e := pub.Public()
	if err := checkRange("RSAEP", "message", m, n); err != nil {
		return nil, err
	}
	return p.modExp()(m, e, n), nil
}

// RSADP computes the message representative m = c^d mod n
// (RFC 3447 section 5.1.2).
//
// Fails with an OutOfRange error when c is not in [0, n).
func (p Primitives) RSADP(priv PrivateKey, c *big.Int) (*big.Int, error) {
	n, d := priv.Private()
	if err := checkRange("RSADP", "ciphertext", c, n); err != nil {
		return nil, err
	}
	return p.modExp()(c, d, n), nil
}

// RSASP1 computes the signature representative s = m^d mod n
// (RFC 3447 section 5.2.1). Same math as RSADP, distinct role.
//
// Fails with an OutOfRange error when m is not in [0, n).
func (p Primitives) RSASP1(priv PrivateKey, m *big.Int) (*big.Int, error) {
	n, d := priv.Private()
	if err := checkRange("RSASP1", "message", m, n); err != nil {
		return nil, err
	}
	return p.modExp()(m, d, n), nil
}

// RSAVP1 computes the message representative m = s^e mod n
// (RFC 3447 section 5.2.2). Same math as RSAEP, distinct role.
//
// Fails with an OutOfRange error when s is not in [0, n).
func (p Primitives) RSAVP1(pub PublicKey, s *big.Int) (*big.Int, error) {
	n, e := pub.Public()
	if err := checkRange("RSAVP1", "signature", s, n); err != nil {
		return nil, err
	}
	return p.modExp()(s, e, n), nil
}

func checkRange(op, representative string, rep, n *big.Int) error {
	if rep.Sign() < 0 || rep.Cmp(n) >= 0 {
		return newError(KindOutOfRange, op, representative, representative+" representative out of range")
	}
	return nil
}

// RSAEP computes c = m^e mod n with the default modular exponentiation.
func RSAEP(pub PublicKey, m *big.Int) (*big.Int, error) {
	return Primitives{}.RSAEP(pub, m)
}

// RSADP computes m = c^d mod n with the default modular exponentiation.
func RSADP(priv PrivateKey, c *big.Int) (*big.Int, error) {
	return Primitives{}.RSADP(priv, c)
}

// RSASP1 computes s = m^d mod n with the default modular exponentiation.
func RSASP1(priv PrivateKey, m *big.Int) (*big.Int, error) {
	return Primitives{}.RSASP1(priv, m)
}

// RSAVP1 computes m = s^e mod n with the default modular exponentiation.
func RSAVP1(pub PublicKey, s *big.Int) (*big.Int, error) {
	return Primitives{}.RSAVP1(pub, s)
}
