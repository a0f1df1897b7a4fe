package keys

import (
	"strings"
	"testing"
)

func TestPrivatePEMRoundTrip(t *testing.T) {
	priv := generateTestKey(t)

	pemBytes := EncodePrivatePEM(priv)
	if !strings.Contains(string(pemBytes), "BEGIN RSA PRIVATE KEY") {
		t.Fatalf("unexpected PEM header: %s", pemBytes)
	}

	parsed, err := ParsePrivatePEM(pemBytes)
	if err != nil {
		t.Fatalf("ParsePrivatePEM: %v", err)
	}
	if parsed.N.Cmp(priv.N) != 0 || parsed.D.Cmp(priv.D) != 0 {
		t.Fatalf("round-tripped key differs")
	}
}

func TestPublicPEMRoundTrip(t *testing.T) {
	priv := generateTestKey(t)

	pemBytes := EncodePublicPEM(&priv.PublicKey)
	if !strings.Contains(string(pemBytes), "BEGIN RSA PUBLIC KEY") {
		t.Fatalf("unexpected PEM header: %s", pemBytes)
	}

	parsed, err := ParsePublicPEM(pemBytes)
	if err != nil {
		t.Fatalf("ParsePublicPEM: %v", err)
	}
	if parsed.N.Cmp(priv.N) != 0 || parsed.E != priv.E {
		t.Fatalf("round-tripped key differs")
	}
}

func TestParsePublicPEM_AcceptsPrivateBlock(t *testing.T) {
	priv := generateTestKey(t)

	parsed, err := ParsePublicPEM(EncodePrivatePEM(priv))
	if err != nil {
		t.Fatalf("ParsePublicPEM(private block): %v", err)
	}
	if parsed.N.Cmp(priv.N) != 0 {
		t.Fatalf("public half mismatch")
	}
}

func TestParsePEM_Malformed(t *testing.T) {
	if _, err := ParsePrivatePEM([]byte("not pem at all")); err == nil {
		t.Fatalf("expected error for non-PEM input")
	}
	if _, err := ParsePublicPEM(nil); err == nil {
		t.Fatalf("expected error for empty input")
	}

	priv := generateTestKey(t)
	if _, err := ParsePrivatePEM(EncodePublicPEM(&priv.PublicKey)); err == nil {
		t.Fatalf("expected error for public block passed to ParsePrivatePEM")
	}
}
