package s3sig

import "fmt"

// secretString redacts its value from fmt's default verbs so a
// Credentials struct can be logged or included in a panic message without
// leaking the secret access key. Grounded on
// github.com/restic/restic/internal/options's SecretString: an unset
// (empty) secret still formats as "", only a real value is masked, so a
// log line can distinguish "no secret configured" from "secret present".
type secretString []byte

func (s secretString) String() string {
	if len(s) == 0 {
		return ""
	}
	return "**redacted**"
}

func (s secretString) GoString() string {
	if len(s) == 0 {
		return `""`
	}
	return `"**redacted**"`
}

// Credentials holds an access-key id, a secret access key and an optional
// session token. It is immutable except for the secret buffer, which
// Wipe zeroizes in place.
//
// Go has no deterministic destructors, so unlike a language with RAII the
// secret is not zeroed automatically when a Credentials value is
// collected. Callers that need the zeroization guarantee must call Wipe
// explicitly once the value is no longer needed.
type Credentials struct {
	key    string
	secret secretString
	token  string
}

// NewCredentials builds a Credentials value from an access-key id and
// secret access key.
func NewCredentials(accessKeyID, secretAccessKey string) *Credentials {
	return &Credentials{key: accessKeyID, secret: secretString(secretAccessKey)}
}

// NewSessionCredentials builds a Credentials value carrying a temporary
// session token, as returned by an STS AssumeRole call (sourced by the
// caller; this library never performs that call itself).
func NewSessionCredentials(accessKeyID, secretAccessKey, sessionToken string) *Credentials {
	c := NewCredentials(accessKeyID, secretAccessKey)
	c.token = sessionToken
	return c
}

// Key returns the access-key id.
func (c *Credentials) Key() string { return c.key }

// Secret returns the secret access key. Prefer passing the Credentials
// value itself through the signing path instead of holding onto this
// return value any longer than necessary.
func (c *Credentials) Secret() string { return string(c.secret) }

// SessionToken returns the session token, or "" if none was set.
func (c *Credentials) SessionToken() string { return c.token }

// Wipe overwrites the secret access key's backing bytes with zeros. The
// Credentials value must not be used for signing again afterwards.
func (c *Credentials) Wipe() {
	for i := range c.secret {
		c.secret[i] = 0
	}
}

func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{Key: %q, Secret: %v, SessionToken: %v}", c.key, c.secret, redactToken(c.token))
}

func redactToken(tok string) string {
	if tok == "" {
		return `""`
	}
	return `"**redacted**"`
}
