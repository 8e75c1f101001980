package downloads

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestSigner(t *testing.T, ttl time.Duration) *Signer {
	t.Helper()
	s, err := NewSigner("test-secret", "https://shop.example.com", "basestation", ttl)
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	return s
}

func splitLink(t *testing.T, link string) (ref, token string) {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	return parts[len(parts)-1], u.Query().Get("token")
}

func TestSignerRoundTrip(t *testing.T) {
	s := newTestSigner(t, time.Hour)

	link, err := s.SignURL("1", 1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !strings.HasPrefix(link, "https://shop.example.com/v1/store/downloads/") {
		t.Fatalf("unexpected link shape: %s", link)
	}
	if strings.Contains(link, "/downloads/1?") {
		t.Fatal("raw file id must not appear in the link")
	}

	ref, token := splitLink(t, link)
	productID, fileID, err := s.Verify(ref, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if productID != "1" || fileID != 1 {
		t.Fatalf("unexpected claims: product=%q file=%d", productID, fileID)
	}
}

func TestSignerRejectsExpiredToken(t *testing.T) {
	s := newTestSigner(t, -time.Minute)

	link, err := s.SignURL("1", 1)
	if err != nil {
		t.Fatal(err)
	}
	ref, token := splitLink(t, link)
	if _, _, err := s.Verify(ref, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestSignerRejectsTamperedInputs(t *testing.T) {
	s := newTestSigner(t, time.Hour)

	link, _ := s.SignURL("1", 1)
	ref, token := splitLink(t, link)

	if _, _, err := s.Verify("bogusref", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for bad ref, got %v", err)
	}
	if _, _, err := s.Verify(ref, token+"x"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}

	other := newTestSigner(t, time.Hour)
	other.secret = "different-secret"
	if _, _, err := other.Verify(ref, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken across secrets, got %v", err)
	}
}

func TestNewSignerRequiresSecret(t *testing.T) {
	if _, err := NewSigner("", "https://x", "basestation", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
