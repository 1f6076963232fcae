// Package cookie parses Cookie request headers into structured data and
// renders signed, percent-encoded Set-Cookie values.
//
// # Wire format
//
// Cookies use the flat `name=value; name=value` grammar. Names and values are
// percent-encoded with URI component rules. After decoding, the first two
// bytes of a value select its kind:
//
//	s:<payload>.<hex signature>   signed value, signature after the last dot
//	j:<json document>             JSON value
//	anything else                 plain value
//
// A signed JSON cookie signs the whole `j:` tagged string, so it arrives as
// `s:j:{...}.<signature>`.
//
// # Decoding
//
// A Decoder turns one header into a *Cookie. Plain and verified signed
// values land in Cookie.Map, JSON values in Cookie.JSON. Decoding never
// fails; bad input is dropped entry by entry:
//
//   - a Decoder without a secret drops every `s:` value, since it cannot
//     verify it;
//   - a Decoder with a secret keeps only values whose signature verifies
//     (the silo property) and drops plain ones;
//   - an `s:` value without a dot is dropped as malformed;
//   - unparsable JSON is kept as a nil (null) document.
//
// Signatures are compared in constant time.
//
// # Encoding
//
// An Encoder renders `name=value` plus Attributes. With a secret the value
// becomes `s:<value>.<signature>`. FormatJSON serializes with sorted object
// keys so equal documents sign identically. A decoded *Cookie is itself a
// Signer, so a handler can re-sign with the secret the request was read with:
//
//	c := cookie.FromContext(r.Context())
//	n, _ := strconv.Atoi(c.Map["count"])
//	cookie.SetCookie(w, c, "count", strconv.Itoa(n+1), cookie.Aged(10))
//
// Attributes render in the order Expires, Max-Age, Domain, Path, Secure,
// HttpOnly, SameSite, then extensions sorted by name.
//
// # Usage
//
//	codec := cookie.New(signer.New([]byte(os.Getenv("COOKIE_SECRET"))), cookie.WithPath("/"))
//
//	mux := http.NewServeMux()
//	mux.Handle("/", codec.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		c := cookie.FromContext(r.Context())
//		_, _ = codec.SetJSONCookie(w, "prefs", map[string]any{"theme": "dark"})
//		_ = c
//	})))
//
// # Configuration
//
// Config is read from the environment with github.com/caarlos0/env. Only
// non-zero attribute fields become encoder defaults.
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	codec, err := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Only JSON helpers return errors: ErrInvalidJSON when a value cannot be
// marshaled or unmarshaled, ErrCookieNotFound from Cookie.DecodeJSON. Use
// errors.Is to check them.
package cookie
