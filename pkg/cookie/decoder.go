package cookie

import (
	"log/slog"
	"net/http"
	"strings"
)

// Decoder turns Cookie request headers into Cookie records.
//
// In unsigned mode values tagged `s:` are dropped because they cannot be
// verified. In signed mode only values carrying a valid signature are kept.
type Decoder struct {
	signer Signer
	logger *slog.Logger
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithLogger logs dropped entries at debug level. Values are never logged.
func WithLogger(l *slog.Logger) DecoderOption {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDecoder returns a Decoder verifying signatures with s. A nil s, or one
// without a secret, selects unsigned mode.
func NewDecoder(s Signer, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		signer: s,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Signed reports whether the decoder verifies signatures.
func (d *Decoder) Signed() bool {
	return enabled(d.signer)
}

// Decode parses a raw Cookie header value. It never fails: malformed or
// untrusted entries are dropped and an empty header gives an empty record.
// When a name repeats, the last acceptable entry wins.
func (d *Decoder) Decode(header string) *Cookie {
	c := newCookie(d.signer)
	if header == "" {
		return c
	}

	for part := range strings.SplitSeq(header, ";") {
		rawKey, rawValue, _ := strings.Cut(part, "=")

		name := decodeComponent(trimLeadingSpace(rawKey))
		if name == "" {
			continue
		}

		v, reason, ok := classify(d.signer, decodeComponent(trimLeadingSpace(rawValue)))
		if !ok {
			d.logger.Debug("cookie entry dropped",
				slog.String("name", name),
				slog.String("reason", string(reason)),
			)
			continue
		}
		c.set(name, v)
	}

	return c
}

// DecodeRequest decodes every Cookie header line of r.
func (d *Decoder) DecodeRequest(r *http.Request) *Cookie {
	if r == nil {
		return d.Decode("")
	}
	return d.Decode(strings.Join(r.Header.Values("Cookie"), ";"))
}
