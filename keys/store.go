package keys

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// KeyStore represents a simple local-first key management system.
//
// EXPERIMENTAL: this filesystem-backed storage surface is not part of the
// stable library API and may change in MINOR releases.
//
// Features:
// - Supports RSA keys only, stored as PKCS #1 PEM
// - Stores keys on the local filesystem (0600 private key files)
// - No external dependencies
//
// This type is designed to be straightforward and explicit.
type KeyStore struct {
	Directory string
}

type KeyEntry struct {
	Name        string
	Fingerprint string
}

func GetDefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".nfgallimore", "rsa-keys"), nil
}

func CreateKeyStore(directory string) (*KeyStore, error) {
	if directory == "" {
		var err error
		directory, err = GetDefaultDirectory()
		if err != nil {
			return nil, err
		}
	}
	return &KeyStore{Directory: directory}, nil
}

func (ks *KeyStore) privateKeyFilePath(name string) string {
	return filepath.Join(ks.Directory, name, "private.pem")
}

func CheckKeyName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			continue
		}
		return fmt.Errorf("invalid character %q in name", char)
	}
	return nil
}

func (ks *KeyStore) savePEMToFile(filePath string, pemBytes []byte, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o700); err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(filePath, flags, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.Write(pemBytes); err != nil {
		return err
	}
	return file.Close()
}

// Init stores a private key under the given name and returns its CID
// fingerprint and the file it was written to. Without overwrite, a key that
// already exists under that name is an error.
func (ks *KeyStore) Init(name string, priv *rsa.PrivateKey, overwrite bool) (fingerprint string, filePath string, err error) {
	if err := CheckKeyName(name); err != nil {
		return "", "", err
	}
	if priv == nil {
		return "", "", errors.New("missing private key")
	}
	filePath = ks.privateKeyFilePath(name)
	if err := ks.savePEMToFile(filePath, EncodePrivatePEM(priv), overwrite); err != nil {
		return "", "", err
	}
	fingerprint, err = FingerprintCID(&priv.PublicKey)
	if err != nil {
		return "", "", err
	}
	return fingerprint, filePath, nil
}

// Load reads the private key stored under name.
func (ks *KeyStore) Load(name string) (*rsa.PrivateKey, error) {
	if err := CheckKeyName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(ks.privateKeyFilePath(name))
	if err != nil {
		return nil, err
	}
	return ParsePrivatePEM(data)
}

// ExportPublic returns the PKCS #1 PEM encoding of the public half of the
// key stored under name. The private key never leaves the store.
func (ks *KeyStore) ExportPublic(name string) ([]byte, error) {
	priv, err := ks.Load(name)
	if err != nil {
		return nil, err
	}
	return EncodePublicPEM(&priv.PublicKey), nil
}

// List returns the stored keys sorted by name, with their CID fingerprints.
// Entries whose key material cannot be read are skipped.
func (ks *KeyStore) List() ([]KeyEntry, error) {
	entries, err := os.ReadDir(ks.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var result []KeyEntry
	for _, name := range names {
		priv, err := ks.Load(name)
		if err != nil {
			continue
		}
		fingerprint, err := FingerprintCID(&priv.PublicKey)
		if err != nil {
			continue
		}
		result = append(result, KeyEntry{Name: name, Fingerprint: fingerprint})
	}
	return result, nil
}
