package cookie

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signedcookie/pkg/signer"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	s := signer.New([]byte("@zzmp"))
	sig := "e99abddcf60cad18f8d4b993efae53e81410cf2b2855af0309f1ae46fa527fbb"
	jsonSig, _ := s.Sign(`j:{"a":1}`)

	tests := []struct {
		name       string
		signer     Signer
		raw        string
		wantKind   valueKind
		wantText   string
		wantReason dropReason
		wantOK     bool
	}{
		{"plain", nil, "thing", plainValue, "thing", "", true},
		{"json unsigned", nil, `j:{"a":1}`, jsonValue, "", "", true},
		{"signed without secret", nil, "s:thung." + sig, 0, "", dropUnverifiable, false},
		{"signed", s, "s:thung." + sig, signedValue, "thung", "", true},
		{"signed json", s, `s:j:{"a":1}.` + jsonSig, jsonValue, "", "", true},
		{"plain with secret", s, "thung", 0, "", dropUnsigned, false},
		{"no dot", s, "s:thung", 0, "", dropMalformed, false},
		{"bad signature", s, "s:thung.abc", 0, "", dropInvalidSignature, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, reason, ok := classify(tt.signer, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
			if ok {
				assert.Equal(t, tt.wantKind, v.kind)
				assert.Equal(t, tt.wantText, v.text)
			}
		})
	}
}

func TestComponentCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		encoded string
	}{
		{"plain", "plain"},
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"j:{\"x\":1}", "j%3A%7B%22x%22%3A1%7D"},
		{"-_.~", "-_.~"},
		{"\r\n\t$=;", "%0D%0A%09%24%3D%3B"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.encoded, encodeComponent(tt.in))
			assert.Equal(t, tt.in, decodeComponent(tt.encoded))
		})
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()
	assert.Equal(t, map[string]any{"a": "b"}, parseJSON(`{"a":"b"}`))
	assert.Equal(t, true, parseJSON(" true "))
	assert.Nil(t, parseJSON(""))
	assert.Nil(t, parseJSON("null"))
	assert.Nil(t, parseJSON(`{"a":1} {"b":2}`))
}

func TestCanonicalJSON(t *testing.T) {
	t.Parallel()
	out, err := canonicalJSON(map[string]any{"z": 1, "a": map[string]any{"y": "<", "b": nil}})
	assert.NoError(t, err)
	assert.Equal(t, `{"a":{"b":null,"y":"<"},"z":1}`, out)
}
