package cookie

import (
	"net/url"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// encodeComponent percent-encodes everything outside the URI unreserved set,
// so the result never contains cookie delimiters or whitespace.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// decodeComponent reverses encodeComponent without failing. Malformed percent
// sequences are kept literally and ill-formed UTF-8 is replaced with U+FFFD.
// If repair fails the result is empty.
func decodeComponent(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return repairUTF8(s)
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}
	return repairUTF8(string(buf))
}

func repairUTF8(s string) string {
	out, _, err := transform.String(runes.ReplaceIllFormed(), s)
	if err != nil {
		return ""
	}
	return out
}

// trimLeadingSpace strips the whitespace a client may put after `;` or `=`.
func trimLeadingSpace(s string) string {
	return strings.TrimLeft(s, " \t\r\n")
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
