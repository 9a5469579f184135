package config

import (
	"strings"
	"testing"

	"github.com/fernet/fernet-go"
)

func TestResolveCredentials_Plaintext(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("FLIGHTWATCH_API_URL", "https://api.example.com/v1/flights/")
	t.Setenv("FLIGHTWATCH_API_TOKEN", `"abc123"`)

	creds, err := ResolveCredentials(Load(""))
	if err != nil {
		t.Fatalf("ResolveCredentials() error: %v", err)
	}
	if creds.Host != "https://api.example.com/v1/flights" {
		t.Errorf("Host = %q, want trailing slash trimmed", creds.Host)
	}
	if creds.Token != "abc123" {
		t.Errorf("Token = %q, want quotes stripped", creds.Token)
	}
	if creds.Limit != 100 {
		t.Errorf("Limit = %d, want default 100", creds.Limit)
	}
}

func TestResolveCredentials_EncryptedToken(t *testing.T) {
	setupTestEnv(t)

	key := new(fernet.Key)
	if err := key.Generate(); err != nil {
		t.Fatalf("key.Generate() error: %v", err)
	}
	tok, err := fernet.EncryptAndSign([]byte("secret-token"), key)
	if err != nil {
		t.Fatalf("EncryptAndSign() error: %v", err)
	}
	if !strings.HasPrefix(string(tok), EncryptedTokenPrefix) {
		t.Fatalf("fernet token %q does not carry the expected prefix", tok)
	}

	t.Setenv("FLIGHTWATCH_ENCRYPTION_KEY", key.Encode())
	t.Setenv("FLIGHTWATCH_API_URL", "https://api.example.com")
	t.Setenv("FLIGHTWATCH_API_TOKEN", string(tok))

	creds, err := ResolveCredentials(Load(""))
	if err != nil {
		t.Fatalf("ResolveCredentials() error: %v", err)
	}
	if creds.Token != "secret-token" {
		t.Errorf("Token = %q, want decrypted value", creds.Token)
	}
}

func TestResolveCredentials_EncryptedTokenWrongKey(t *testing.T) {
	setupTestEnv(t)

	encKey := new(fernet.Key)
	if err := encKey.Generate(); err != nil {
		t.Fatal(err)
	}
	otherKey := new(fernet.Key)
	if err := otherKey.Generate(); err != nil {
		t.Fatal(err)
	}
	tok, err := fernet.EncryptAndSign([]byte("secret"), encKey)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("FLIGHTWATCH_ENCRYPTION_KEY", otherKey.Encode())
	t.Setenv("FLIGHTWATCH_API_URL", "https://api.example.com")
	t.Setenv("FLIGHTWATCH_API_TOKEN", string(tok))

	if _, err := ResolveCredentials(Load("")); err == nil {
		t.Fatal("expected an error for a token encrypted with a different key")
	}
}

func TestResolveCredentials_EncryptedTokenMissingKey(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("FLIGHTWATCH_API_URL", "https://api.example.com")
	t.Setenv("FLIGHTWATCH_API_TOKEN", EncryptedTokenPrefix+"AAAAAAAAAAAAAAAA")

	_, err := ResolveCredentials(Load(""))
	if err == nil || !strings.Contains(err.Error(), "FLIGHTWATCH_ENCRYPTION_KEY") {
		t.Fatalf("error = %v, want missing encryption key", err)
	}
}

func TestResolveCredentials_MissingPieces(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		token   string
		wantSub string
	}{
		{"no url", "", "tok", "missing API URL"},
		{"no token", "https://api.example.com", "", "missing API token"},
		{"bad scheme", "ftp://api.example.com", "tok", "does not look like a URL"},
		{"not a url", "just-a-hostname", "tok", "does not look like a URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnv(t)
			t.Setenv("FLIGHTWATCH_API_URL", tt.url)
			t.Setenv("FLIGHTWATCH_API_TOKEN", tt.token)

			_, err := ResolveCredentials(Load(""))
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %v, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestResolveCredentials_LimitFromConfig(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("FLIGHTWATCH_API_URL", "https://api.example.com")
	t.Setenv("FLIGHTWATCH_API_TOKEN", "tok")
	t.Setenv("FLIGHTWATCH_LIMIT", "42")

	creds, err := ResolveCredentials(Load(""))
	if err != nil {
		t.Fatal(err)
	}
	if creds.Limit != 42 {
		t.Errorf("Limit = %d, want 42", creds.Limit)
	}
}

func TestEncryptionKey_Missing(t *testing.T) {
	setupTestEnv(t)
	if _, err := EncryptionKey(); err == nil {
		t.Fatal("expected an error with no key set")
	}
}

func TestEncryptionKey_Invalid(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("FLIGHTWATCH_ENCRYPTION_KEY", "not-base64!!")
	if _, err := EncryptionKey(); err == nil {
		t.Fatal("expected an error for a malformed key")
	}
}
