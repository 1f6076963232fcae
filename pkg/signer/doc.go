// Package signer produces and verifies the authentication tags carried by
// signed cookies.
//
// A tag is the lowercase hex encoding of a keyed digest over the payload
// bytes. The default construction is HMAC-SHA256, so a 64 character tag:
//
//	s := signer.New([]byte("@zzmp"))
//	sig, _ := s.Sign("thung")
//	// sig == "e99abddcf60cad18f8d4b993efae53e81410cf2b2855af0309f1ae46fa527fbb"
//
// HMAC over SHA3-256 is available with WithAlgorithm(HMACSHA3256). The
// LegacySHA256 construction, SHA256(secret || payload), exists for reading
// cookies issued by older deployments and should not be used for new ones.
//
// # Unsigned mode
//
// A Signer built without a secret, as well as a nil *Signer, is valid and
// represents unsigned mode. Sign returns ("", false) and Verify always
// returns false. This is a normal state, not an error.
//
// # Verification
//
// Verify recomputes the tag and compares it with crypto/subtle, so timing
// does not reveal how many leading characters of a forged tag were right.
// Previous secrets registered with WithPreviousSecrets are accepted by
// Verify to allow key rotation; Sign always uses the primary secret.
//
// # Configuration
//
// Config is populated from the environment with github.com/caarlos0/env:
//
//	cfg := signer.DefaultConfig()
//	_ = env.Parse(&cfg) // COOKIE_SECRETS, COOKIE_SIGNING_ALGORITHM
//	s, err := signer.NewFromConfig(cfg)
package signer
