package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/fernet/fernet-go"
)

// EncryptedTokenPrefix marks a Fernet-encrypted token value. Fernet
// tokens always begin with this sequence (version byte 0x80 plus zeroed
// high timestamp bytes in base64url).
const EncryptedTokenPrefix = "gAAAAA"

// Credentials is everything the fetch client needs to reach the API.
type Credentials struct {
	Host  string
	Token string
	Limit int
}

// ResolveCredentials resolves the API host, access token, and page-size
// limit from the given config. Encrypted tokens are decrypted with the key
// from FLIGHTWATCH_ENCRYPTION_KEY. Any missing or malformed piece is a
// hard error: nothing here degrades into a fetch status.
func ResolveCredentials(cfg Config) (Credentials, error) {
	host := clean(cfg.API.URL)
	if host == "" {
		return Credentials{}, fmt.Errorf("missing API URL: set api.url in %s or FLIGHTWATCH_API_URL", ConfigFile())
	}
	u, err := url.Parse(host)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Credentials{}, fmt.Errorf("api url does not look like a URL: %q", host)
	}

	token := clean(cfg.API.Token)
	if token == "" {
		return Credentials{}, fmt.Errorf("missing API token: set api.token in %s or FLIGHTWATCH_API_TOKEN", ConfigFile())
	}

	if strings.HasPrefix(token, EncryptedTokenPrefix) {
		key, err := EncryptionKey()
		if err != nil {
			return Credentials{}, err
		}
		msg := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{key})
		if msg == nil {
			return Credentials{}, fmt.Errorf("could not decrypt API token: wrong key or corrupted value")
		}
		token = string(msg)
	}

	limit := cfg.API.Limit
	if limit <= 0 {
		limit = DefaultConfig().API.Limit
	}

	return Credentials{
		Host:  strings.TrimRight(host, "/"),
		Token: token,
		Limit: limit,
	}, nil
}

// EncryptionKey reads and decodes the Fernet key from the environment.
func EncryptionKey() (*fernet.Key, error) {
	raw := clean(os.Getenv("FLIGHTWATCH_ENCRYPTION_KEY"))
	if raw == "" {
		return nil, fmt.Errorf("missing FLIGHTWATCH_ENCRYPTION_KEY in environment")
	}
	key, err := fernet.DecodeKey(raw)
	if err != nil {
		return nil, fmt.Errorf("FLIGHTWATCH_ENCRYPTION_KEY is not a valid Fernet key: generate one with 'flightwatch key generate'")
	}
	return key, nil
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, `'`)
	return s
}
