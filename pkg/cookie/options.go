package cookie

import (
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Attributes are the cookie-av directives appended to a Set-Cookie value.
type Attributes struct {
	// Expires is omitted when zero.
	Expires time.Time
	// MaxAge=0 means no Max-Age attribute, MaxAge<0 renders Max-Age=0
	// and MaxAge>0 renders the number of seconds.
	MaxAge int
	// Domain is omitted unless it is a plain host name or IPv4 address.
	Domain string
	// Path loses any ';' and control bytes.
	Path   string
	Secure bool
	// HttpOnly is rendered as "HttpOnly" (RFC 6265), not "Http-Only".
	HttpOnly bool
	// SameSite is rendered for Lax, Strict and None only.
	SameSite http.SameSite
	// Extensions are rendered in key order as `key=value`, or as a bare
	// `key` when the value is empty. Names are reduced to token characters
	// and values lose any ';' and control bytes.
	Extensions map[string]string
}

type Option func(*Attributes)

func WithExpires(t time.Time) Option {
	return func(a *Attributes) {
		a.Expires = t
	}
}

func WithMaxAge(seconds int) Option {
	return func(a *Attributes) {
		a.MaxAge = seconds
	}
}

func WithDomain(domain string) Option {
	return func(a *Attributes) {
		a.Domain = domain
	}
}

func WithPath(path string) Option {
	return func(a *Attributes) {
		a.Path = path
	}
}

func WithSecure(secure bool) Option {
	return func(a *Attributes) {
		a.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(a *Attributes) {
		a.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(a *Attributes) {
		a.SameSite = sameSite
	}
}

// WithExtension adds a `name=value` extension attribute.
func WithExtension(name, value string) Option {
	return func(a *Attributes) {
		if name == "" {
			return
		}
		if a.Extensions == nil {
			a.Extensions = make(map[string]string)
		}
		a.Extensions[name] = value
	}
}

// WithFlag adds a value-less extension attribute such as Partitioned.
func WithFlag(name string) Option {
	return WithExtension(name, "")
}

// WithAttributes replaces the whole directive set.
func WithAttributes(attrs Attributes) Option {
	return func(a *Attributes) {
		*a = attrs
		a.Extensions = maps.Clone(attrs.Extensions)
	}
}

// Aged expires the cookie after the given number of seconds.
func Aged(seconds int) Option {
	return WithMaxAge(seconds)
}

// Secured marks the cookie Secure and HttpOnly.
func Secured() Option {
	return func(a *Attributes) {
		a.Secure = true
		a.HttpOnly = true
	}
}

// applyOptions creates a new Attributes value by copying base and applying
// opts. Neither base nor its extension map is modified.
func applyOptions(base Attributes, opts []Option) Attributes {
	result := base
	result.Extensions = maps.Clone(base.Extensions)

	for _, opt := range opts {
		opt(&result)
	}

	return result
}

// String renders the directives in a fixed order: Expires, Max-Age, Domain,
// Path, Secure, HttpOnly, SameSite, then extensions sorted by name. Each one
// is prefixed with "; ", so the result can be appended to `name=value`.
func (a Attributes) String() string {
	var b strings.Builder

	if !a.Expires.IsZero() {
		writeAttr(&b, "Expires", a.Expires.UTC().Format(http.TimeFormat))
	}
	switch {
	case a.MaxAge > 0:
		writeAttr(&b, "Max-Age", strconv.Itoa(a.MaxAge))
	case a.MaxAge < 0:
		writeAttr(&b, "Max-Age", "0")
	}
	if d := sanitizeDomain(a.Domain); d != "" {
		writeAttr(&b, "Domain", d)
	}
	if p := sanitizeAttrValue(a.Path); p != "" {
		writeAttr(&b, "Path", p)
	}
	if a.Secure {
		writeAttr(&b, "Secure", "")
	}
	if a.HttpOnly {
		writeAttr(&b, "HttpOnly", "")
	}
	if s := sameSiteString(a.SameSite); s != "" {
		writeAttr(&b, "SameSite", s)
	}
	for _, name := range slices.Sorted(maps.Keys(a.Extensions)) {
		clean := sanitizeAttrName(name)
		if clean == "" {
			continue
		}
		writeAttr(&b, clean, sanitizeAttrValue(a.Extensions[name]))
	}

	return b.String()
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString("; ")
	b.WriteString(name)
	if value != "" {
		b.WriteByte('=')
		b.WriteString(value)
	}
}

func sameSiteString(s http.SameSite) string {
	switch s {
	case http.SameSiteLaxMode:
		return "Lax"
	case http.SameSiteStrictMode:
		return "Strict"
	case http.SameSiteNoneMode:
		return "None"
	default:
		return ""
	}
}

// sanitizeAttrValue drops bytes that would end the attribute or break the
// header line: ';' and ASCII control characters.
func sanitizeAttrValue(v string) string {
	return strings.Map(func(r rune) rune {
		if r == ';' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, v)
}

// sanitizeAttrName keeps only RFC 7230 token characters.
func sanitizeAttrName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && isTokenByte(byte(r)) {
			return r
		}
		return -1
	}, name)
}

func isTokenByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0
}

// sanitizeDomain returns d when it is a host name made of letters, digits,
// '-' and '.', with an optional leading dot, and "" otherwise.
func sanitizeDomain(d string) string {
	if d == "" || len(d) > 255 {
		return ""
	}
	host := strings.TrimPrefix(d, ".")
	if host == "" || host[0] == '.' || host[len(host)-1] == '.' || strings.Contains(host, "..") {
		return ""
	}
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-', c == '.':
		default:
			return ""
		}
	}
	return d
}
