package keys

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"
)

// FingerprintCID returns a CIDv1 string using the "raw" multicodec and a
// sha2-256 multihash over the PKCS #1 DER encoding of the public key.
//
// The same key always yields the same CID, so it doubles as a
// content-addressed name for the public key bytes.
func FingerprintCID(pub *rsa.PublicKey) (string, error) {
	der := x509.MarshalPKCS1PublicKey(pub)
	sum, err := multihash.Sum(der, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}

// Fingerprint returns the hex digest of the PKCS #1 DER encoding of the
// public key. hashAlg must be one of: sha256, sha3-256.
func Fingerprint(pub *rsa.PublicKey, hashAlg string) (string, error) {
	der := x509.MarshalPKCS1PublicKey(pub)
	switch hashAlg {
	case "sha256":
		s := sha256.Sum256(der)
		return hex.EncodeToString(s[:]), nil
	case "sha3-256":
		s := sha3.Sum256(der)
		return hex.EncodeToString(s[:]), nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %q", hashAlg)
	}
}
