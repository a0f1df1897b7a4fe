package keys

import (
	"os"
	"strings"
	"testing"
)

func TestKeyStore_InitLoadExport(t *testing.T) {
	ks, err := CreateKeyStore(t.TempDir())
	if err != nil {
		t.Fatalf("CreateKeyStore: %v", err)
	}
	priv := generateTestKey(t)

	fingerprint, filePath, err := ks.Init("alice", priv, false)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if fingerprint == "" {
		t.Fatalf("expected fingerprint")
	}

	info, err := os.Stat(filePath)
	if err != nil {
		t.Fatalf("stat key file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("key file permissions: got %o want 600", perm)
	}

	loaded, err := ks.Load("alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.N.Cmp(priv.N) != 0 || loaded.D.Cmp(priv.D) != 0 {
		t.Fatalf("loaded key differs")
	}

	pubPEM, err := ks.ExportPublic("alice")
	if err != nil {
		t.Fatalf("ExportPublic: %v", err)
	}
	if !strings.Contains(string(pubPEM), "BEGIN RSA PUBLIC KEY") {
		t.Fatalf("unexpected export: %s", pubPEM)
	}
	if strings.Contains(string(pubPEM), "PRIVATE") {
		t.Fatalf("private material leaked in public export")
	}

	// Re-init without overwrite must refuse.
	if _, _, err := ks.Init("alice", priv, false); err == nil {
		t.Fatalf("expected error on duplicate init")
	}
	if _, _, err := ks.Init("alice", priv, true); err != nil {
		t.Fatalf("Init with overwrite: %v", err)
	}
}

func TestKeyStore_List(t *testing.T) {
	ks, err := CreateKeyStore(t.TempDir())
	if err != nil {
		t.Fatalf("CreateKeyStore: %v", err)
	}

	entries, err := ks.List()
	if err != nil {
		t.Fatalf("List(empty): %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(entries))
	}

	for _, name := range []string{"zeta", "alpha"} {
		if _, _, err := ks.Init(name, generateTestKey(t), false); err != nil {
			t.Fatalf("Init(%s): %v", name, err)
		}
	}

	entries, err = ks.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "alpha" || entries[1].Name != "zeta" {
		t.Fatalf("entries not sorted by name: %+v", entries)
	}
	if entries[0].Fingerprint == entries[1].Fingerprint {
		t.Fatalf("distinct keys share a fingerprint")
	}
}

func TestCheckKeyName(t *testing.T) {
	if err := CheckKeyName("valid-name_1"); err != nil {
		t.Fatalf("CheckKeyName: %v", err)
	}
	for _, bad := range []string{"", "a/b", "dots.too", "spa ce"} {
		if err := CheckKeyName(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
