package cookie

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Signer produces and checks value signatures. *signer.Signer implements it,
// and so does *Cookie, which lets a decoded record sign the response cookies
// with the same secret it was verified with.
type Signer interface {
	// Enabled reports whether a secret is configured.
	Enabled() bool
	// Sign returns the hex signature of payload, or false in unsigned mode.
	Sign(payload string) (string, bool)
	// Verify checks signature against payload in constant time.
	Verify(payload, signature string) bool
}

func enabled(s Signer) bool {
	return s != nil && s.Enabled()
}

// Cookie is the decoded content of a Cookie request header.
//
// Map holds plain and verified signed values. JSON holds the documents of
// `j:` tagged values keyed by cookie name. A name is never present in both.
type Cookie struct {
	signer Signer

	Map  map[string]string
	JSON map[string]any
}

func newCookie(s Signer) *Cookie {
	return &Cookie{
		signer: s,
		Map:    make(map[string]string),
		JSON:   make(map[string]any),
	}
}

// Signed reports whether the record was decoded in signed mode.
func (c *Cookie) Signed() bool {
	return c != nil && enabled(c.signer)
}

// Enabled is Signed, satisfying Signer.
func (c *Cookie) Enabled() bool {
	return c.Signed()
}

// Sign signs payload with the secret the record was decoded with.
func (c *Cookie) Sign(payload string) (string, bool) {
	if !c.Signed() {
		return "", false
	}
	return c.signer.Sign(payload)
}

// Verify checks a signature with the secret the record was decoded with.
func (c *Cookie) Verify(payload, signature string) bool {
	if !c.Signed() {
		return false
	}
	return c.signer.Verify(payload, signature)
}

// Get returns the plain value stored under name.
func (c *Cookie) Get(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.Map[name]
	return v, ok
}

// JSONValue returns the JSON document stored under name. A present name with
// a nil document means the cookie carried null or unparsable JSON.
func (c *Cookie) JSONValue(name string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.JSON[name]
	return v, ok
}

// DecodeJSON unmarshals the JSON document stored under name into dest.
func (c *Cookie) DecodeJSON(name string, dest any) error {
	doc, ok := c.JSONValue(name)
	if !ok {
		return ErrCookieNotFound
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidJSON, name, err)
	}
	return nil
}

// Len returns the number of entries across Map and JSON.
func (c *Cookie) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Map) + len(c.JSON)
}

func (c *Cookie) set(name string, v value) {
	switch v.kind {
	case jsonValue:
		delete(c.Map, name)
		c.JSON[name] = v.doc
	default:
		delete(c.JSON, name)
		c.Map[name] = v.text
	}
}
