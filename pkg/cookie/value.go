package cookie

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Wire tags. A decoded value starting with one of these selects its kind;
// anything else is a plain value.
const (
	signedTag = "s:"
	jsonTag   = "j:"
)

type valueKind uint8

const (
	plainValue valueKind = iota
	signedValue
	jsonValue
)

// value is one classified cookie entry before it is flattened into a Cookie.
type value struct {
	kind valueKind
	text string // plain and signed payloads
	doc  any    // parsed JSON document, nil for JSON null or a parse failure
}

// dropReason explains why an entry did not make it into a Cookie.
type dropReason string

const (
	dropUnverifiable     dropReason = "signed_value_without_secret"
	dropUnsigned         dropReason = "unsigned_value_in_signed_mode"
	dropMalformed        dropReason = "malformed_signature"
	dropInvalidSignature dropReason = "invalid_signature"
)

// classify applies the signature stage and then the JSON stage to a decoded
// value. ok is false when the entry must be dropped.
func classify(s Signer, raw string) (v value, reason dropReason, ok bool) {
	signed := enabled(s)
	kind := plainValue

	if payload, found := strings.CutPrefix(raw, signedTag); found {
		if !signed {
			return value{}, dropUnverifiable, false
		}
		dot := strings.LastIndexByte(payload, '.')
		if dot < 0 {
			return value{}, dropMalformed, false
		}
		if !s.Verify(payload[:dot], payload[dot+1:]) {
			return value{}, dropInvalidSignature, false
		}
		raw = payload[:dot]
		kind = signedValue
	} else if signed {
		return value{}, dropUnsigned, false
	}

	if doc, found := strings.CutPrefix(raw, jsonTag); found {
		return value{kind: jsonValue, doc: parseJSON(doc)}, "", true
	}

	return value{kind: kind, text: raw}, "", true
}

// parseJSON decodes a single JSON document. Numbers stay json.Number so they
// survive re-encoding unchanged. Invalid input yields nil (JSON null).
func parseJSON(s string) any {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil
	}
	return doc
}

// canonicalJSON renders v as compact JSON with object keys sorted at every
// level, so equal documents always produce the same bytes.
func canonicalJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", errors.Join(ErrInvalidJSON, err)
	}

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return "", errors.Join(ErrInvalidJSON, err)
	}

	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return "", errors.Join(ErrInvalidJSON, err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
