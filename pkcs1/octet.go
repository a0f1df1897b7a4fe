package pkcs1

import "math/big"

// I2OSP converts a nonnegative integer to a big-endian octet string of
// exactly length octets (RFC 3447 section 4.1).
//
// The encoding is unsigned. Values whose minimal encoding is shorter than
// length are left-padded with zero octets. I2OSP fails with an
// IntegerTooLarge error when x is negative or does not fit, i.e.
// x >= 256^length; it never truncates.
func I2OSP(x *big.Int, length int) ([]byte, error) {
	if length < 0 {
		return nil, newError(KindIntegerTooLarge, "I2OSP", "", "negative octet string length")
	}
	if x.Sign() < 0 {
		return nil, newError(KindIntegerTooLarge, "I2OSP", "", "negative integer")
	}
	b := x.Bytes()
	if len(b) > length {
		return nil, newError(KindIntegerTooLarge, "I2OSP", "", "integer too large")
	}
	out := make([]byte, length)
	copy(out[length-len(b):], b)
	return out, nil
}

// I2OSPMinimal converts a nonnegative integer to its minimal-length
// big-endian octet string: no leading zero octet, and zero encodes to the
// empty octet string.
//
// The empty encoding of zero is deliberate. Callers that need a non-empty
// encoding of zero must request an explicit width with I2OSP(x, 1).
func I2OSPMinimal(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, newError(KindIntegerTooLarge, "I2OSP", "", "negative integer")
	}
	return x.Bytes(), nil
}

// OS2IP converts a big-endian octet string to a nonnegative integer
// (RFC 3447 section 4.2).
//
// OS2IP is total: it accepts any input including the empty octet string,
// which yields zero, and it inverts I2OSP for any requested length at least
// the minimal encoding length of the integer.
func OS2IP(octets []byte) *big.Int {
	return new(big.Int).SetBytes(octets)
}
