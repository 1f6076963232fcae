package signer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signedcookie/pkg/signer"
)

func TestSigner_Sign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secret  string
		opts    []signer.Option
		payload string
		want    string
	}{
		{
			name:    "hmac-sha256 literal vector",
			secret:  "@zzmp",
			payload: "thung",
			want:    "e99abddcf60cad18f8d4b993efae53e81410cf2b2855af0309f1ae46fa527fbb",
		},
		{
			name:    "hmac-sha256 empty payload",
			secret:  "@zzmp",
			payload: "",
			want:    "2a9f5a46ab857b3e78eb850a8f541d314a01e7e70f4ad09a0ea4f9194667a90c",
		},
		{
			name:    "hmac-sha3-256",
			secret:  "@zzmp",
			opts:    []signer.Option{signer.WithAlgorithm(signer.HMACSHA3256)},
			payload: "thung",
			want:    "430ceb430fbe4aa5a583180cbdbb41f638cb3291eb6c1a31c980a181b382f16d",
		},
		{
			name:    "legacy keyed hash",
			secret:  "@zzmp",
			opts:    []signer.Option{signer.WithAlgorithm(signer.LegacySHA256)},
			payload: "thung",
			want:    "2bc9a8b82a4a393ab67b2b8aaff0e3ab33cb4aca05ef4a0ba201141fbb029f42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := signer.New([]byte(tt.secret), tt.opts...)

			got, ok := s.Sign(tt.payload)
			require.True(t, ok)
			assert.Len(t, got, 64)
			assert.Equal(t, tt.want, got)
			assert.True(t, s.Verify(tt.payload, got))
		})
	}
}

func TestSigner_UnsignedMode(t *testing.T) {
	t.Parallel()

	t.Run("empty secret", func(t *testing.T) {
		t.Parallel()
		s := signer.New(nil)
		assert.False(t, s.Enabled())

		sig, ok := s.Sign("payload")
		assert.False(t, ok)
		assert.Empty(t, sig)
		assert.False(t, s.Verify("payload", ""))
	})

	t.Run("nil signer", func(t *testing.T) {
		t.Parallel()
		var s *signer.Signer
		assert.False(t, s.Enabled())
		assert.Equal(t, signer.HMACSHA256, s.Algorithm())

		_, ok := s.Sign("payload")
		assert.False(t, ok)
		assert.False(t, s.Verify("payload", strings.Repeat("0", 64)))
	})

	t.Run("previous secrets need a primary", func(t *testing.T) {
		t.Parallel()
		old := signer.New([]byte("old-secret"))
		sig, _ := old.Sign("payload")

		s := signer.New(nil, signer.WithPreviousSecrets([]byte("old-secret")))
		assert.False(t, s.Enabled())
		assert.False(t, s.Verify("payload", sig))
	})
}

func TestSigner_Verify(t *testing.T) {
	t.Parallel()
	s := signer.New([]byte("@zzmp"))
	sig, ok := s.Sign("thung")
	require.True(t, ok)

	tests := []struct {
		name      string
		payload   string
		signature string
		want      bool
	}{
		{"valid", "thung", sig, true},
		{"tampered payload", "thunG", sig, false},
		{"uppercase hex", "thung", strings.ToUpper(sig), false},
		{"truncated", "thung", sig[:63], false},
		{"extended", "thung", sig + "0", false},
		{"empty", "thung", "", false},
		{"zeros", "thung", strings.Repeat("0", 64), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Verify(tt.payload, tt.signature))
		})
	}
}

func TestSigner_Silo(t *testing.T) {
	t.Parallel()
	a := signer.New([]byte("secret-a"))
	b := signer.New([]byte("secret-b"))

	sig, ok := a.Sign("payload")
	require.True(t, ok)

	assert.True(t, a.Verify("payload", sig))
	assert.False(t, b.Verify("payload", sig))
}

func TestSigner_KeyRotation(t *testing.T) {
	t.Parallel()
	old := signer.New([]byte("old-secret"))
	oldSig, _ := old.Sign("payload")

	rotated := signer.New([]byte("new-secret"), signer.WithPreviousSecrets([]byte("old-secret"), nil))
	newSig, _ := rotated.Sign("payload")

	assert.True(t, rotated.Verify("payload", oldSig), "previous secret should still verify")
	assert.True(t, rotated.Verify("payload", newSig))
	assert.NotEqual(t, oldSig, newSig, "signing must use the primary secret")
	assert.False(t, old.Verify("payload", newSig))
}

func TestSigner_SecretIsCopied(t *testing.T) {
	t.Parallel()
	secret := []byte("mutable-secret")
	s := signer.New(secret)
	before, _ := s.Sign("payload")

	secret[0] = 'X'
	after, _ := s.Sign("payload")
	assert.Equal(t, before, after)
}

func TestWithAlgorithm_IgnoresUnknown(t *testing.T) {
	t.Parallel()
	s := signer.New([]byte("k"), signer.WithAlgorithm("md5"))
	assert.Equal(t, signer.HMACSHA256, s.Algorithm())
}
