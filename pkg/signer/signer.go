package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Algorithm names the digest construction used for signatures.
type Algorithm string

const (
	// HMACSHA256 signs with HMAC-SHA256. This is the default.
	HMACSHA256 Algorithm = "hmac-sha256"
	// HMACSHA3256 signs with HMAC over SHA3-256.
	HMACSHA3256 Algorithm = "hmac-sha3-256"
	// LegacySHA256 signs with SHA256(secret || payload). Only use it to
	// read cookies written by old deployments.
	LegacySHA256 Algorithm = "sha256"
)

// Signer computes and verifies hex signatures binding a secret to a payload.
// A Signer without a secret (or a nil *Signer) is in unsigned mode: Sign
// reports false and Verify rejects everything.
//
// A Signer is immutable after New and safe for concurrent use.
type Signer struct {
	secret    []byte
	previous  [][]byte
	algorithm Algorithm
}

// New returns a Signer for the given secret. An empty secret yields an
// unsigned Signer.
func New(secret []byte, opts ...Option) *Signer {
	s := &Signer{algorithm: HMACSHA256}
	if len(secret) > 0 {
		s.secret = clone(secret)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.secret == nil {
		s.previous = nil
	}
	return s
}

// Enabled reports whether the signer holds a secret.
func (s *Signer) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// Algorithm returns the configured signing algorithm.
func (s *Signer) Algorithm() Algorithm {
	if s == nil {
		return HMACSHA256
	}
	return s.algorithm
}

// Sign returns the lowercase hex signature of payload under the primary
// secret. The second result is false in unsigned mode.
func (s *Signer) Sign(payload string) (string, bool) {
	if !s.Enabled() {
		return "", false
	}
	return hex.EncodeToString(s.digest(s.secret, payload)), true
}

// Verify reports whether signature is valid for payload under the primary
// secret or any previous secret. Comparison is constant time.
func (s *Signer) Verify(payload, signature string) bool {
	if !s.Enabled() {
		return false
	}

	// Every secret is checked so the result does not leak which key matched.
	valid := 0
	for _, secret := range s.keys() {
		expected := hex.EncodeToString(s.digest(secret, payload))
		valid |= subtle.ConstantTimeCompare([]byte(signature), []byte(expected))
	}
	return valid == 1
}

func (s *Signer) keys() [][]byte {
	keys := make([][]byte, 0, 1+len(s.previous))
	keys = append(keys, s.secret)
	return append(keys, s.previous...)
}

func (s *Signer) digest(secret []byte, payload string) []byte {
	switch s.algorithm {
	case LegacySHA256:
		h := sha256.New()
		h.Write(secret)
		h.Write([]byte(payload))
		return h.Sum(nil)
	default:
		mac := hmac.New(s.hashFunc(), secret)
		mac.Write([]byte(payload))
		return mac.Sum(nil)
	}
}

func (s *Signer) hashFunc() func() hash.Hash {
	if s.algorithm == HMACSHA3256 {
		return sha3.New256
	}
	return sha256.New
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
