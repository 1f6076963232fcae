package cookie

import (
	"net/http"
	"strings"
	"time"
)

const setCookieHeader = "Set-Cookie"

// Encoder renders Set-Cookie values. Names and values are always
// percent-encoded, so no input can produce a malformed header.
type Encoder struct {
	signer   Signer
	defaults Attributes
}

// NewEncoder returns an Encoder signing with s (nil for unsigned cookies).
// defaults are applied to every cookie before per-call options.
func NewEncoder(s Signer, defaults ...Option) *Encoder {
	return &Encoder{
		signer:   s,
		defaults: applyOptions(Attributes{}, defaults),
	}
}

// Format renders `name=value` followed by the attributes. In signed mode the
// value is written as `s:<value>.<signature>`.
func (e *Encoder) Format(name, value string, opts ...Option) string {
	attrs := applyOptions(e.defaults, opts)

	var b strings.Builder
	b.WriteString(encodeComponent(name))
	b.WriteByte('=')
	if sig, ok := e.sign(value); ok {
		b.WriteString(signedTag)
		b.WriteString(encodeComponent(value))
		b.WriteByte('.')
		b.WriteString(sig)
	} else {
		b.WriteString(encodeComponent(value))
	}
	b.WriteString(attrs.String())

	return b.String()
}

// FormatJSON renders v as a `j:` tagged JSON cookie. Object keys are sorted
// so the same document always yields the same bytes and signature.
func (e *Encoder) FormatJSON(name string, v any, opts ...Option) (string, error) {
	doc, err := canonicalJSON(v)
	if err != nil {
		return "", err
	}
	return e.Format(name, jsonTag+doc, opts...), nil
}

// SetCookie adds the rendered cookie to w's Set-Cookie header and returns it.
func (e *Encoder) SetCookie(w http.ResponseWriter, name, value string, opts ...Option) string {
	header := e.Format(name, value, opts...)
	w.Header().Add(setCookieHeader, header)
	return header
}

// SetJSONCookie adds a JSON cookie to w's Set-Cookie header.
func (e *Encoder) SetJSONCookie(w http.ResponseWriter, name string, v any, opts ...Option) (string, error) {
	header, err := e.FormatJSON(name, v, opts...)
	if err != nil {
		return "", err
	}
	w.Header().Add(setCookieHeader, header)
	return header, nil
}

// Delete instructs the client to drop the named cookie. Domain and Path
// must match the ones the cookie was set with; pass them in opts if they
// differ from the encoder defaults.
func (e *Encoder) Delete(w http.ResponseWriter, name string, opts ...Option) string {
	attrs := applyOptions(e.defaults, opts)
	attrs.MaxAge = -1
	attrs.Expires = time.Unix(0, 0)

	header := encodeComponent(name) + "=" + attrs.String()
	w.Header().Add(setCookieHeader, header)
	return header
}

func (e *Encoder) sign(value string) (string, bool) {
	if !enabled(e.signer) {
		return "", false
	}
	return e.signer.Sign(value)
}

// SetCookie writes a single cookie signed by s. Pass the decoded *Cookie of
// the current request to reuse its secret.
func SetCookie(w http.ResponseWriter, s Signer, name, value string, opts ...Option) string {
	return NewEncoder(s).SetCookie(w, name, value, opts...)
}

// SetJSONCookie writes a single JSON cookie signed by s.
func SetJSONCookie(w http.ResponseWriter, s Signer, name string, v any, opts ...Option) (string, error) {
	return NewEncoder(s).SetJSONCookie(w, name, v, opts...)
}
