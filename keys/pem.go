package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

const (
	pemTypePrivate = "RSA PRIVATE KEY"
	pemTypePublic  = "RSA PUBLIC KEY"
)

// EncodePrivatePEM renders a private key as a PKCS #1 PEM block.
func EncodePrivatePEM(priv *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePrivate, Bytes: x509.MarshalPKCS1PrivateKey(priv)})
}

// EncodePublicPEM renders a public key as a PKCS #1 PEM block.
func EncodePublicPEM(pub *rsa.PublicKey) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: x509.MarshalPKCS1PublicKey(pub)})
}

// ParsePrivatePEM parses a PKCS #1 PEM private key.
func ParsePrivatePEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	if block.Type != pemTypePrivate {
		return nil, fmt.Errorf("unexpected PEM type %q, want %q", block.Type, pemTypePrivate)
	}
	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key.Precompute()
	return key, nil
}

// ParsePublicPEM parses a PKCS #1 PEM public key. A private-key block is
// accepted and reduced to its public half, so callers can point public-key
// operations at either file.
func ParsePublicPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	switch block.Type {
	case pemTypePublic:
		return x509.ParsePKCS1PublicKey(block.Bytes)
	case pemTypePrivate:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		return &key.PublicKey, nil
	default:
		return nil, fmt.Errorf("unexpected PEM type %q", block.Type)
	}
}
