package signer

// Option configures a Signer.
type Option func(*Signer)

// WithAlgorithm selects the signing algorithm. Unknown values are ignored;
// use ParseAlgorithm to validate input first.
func WithAlgorithm(a Algorithm) Option {
	return func(s *Signer) {
		if a.valid() {
			s.algorithm = a
		}
	}
}

// WithPreviousSecrets adds secrets accepted by Verify but never used by Sign.
// Empty secrets are skipped.
func WithPreviousSecrets(secrets ...[]byte) Option {
	return func(s *Signer) {
		for _, secret := range secrets {
			if len(secret) > 0 {
				s.previous = append(s.previous, clone(secret))
			}
		}
	}
}
