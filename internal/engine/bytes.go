package engine

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/google/uuid"
)

// Encoding names the text form of a byte string.
type Encoding string

const (
	EncodingHex       Encoding = "hex"
	EncodingBase64    Encoding = "base64"
	EncodingBase64URL Encoding = "base64url"
)

// ParseEncoding resolves a requested encoding name. Unknown names fall back
// to hex.
func ParseEncoding(name string) Encoding {
	switch Encoding(name) {
	case EncodingBase64, EncodingBase64URL:
		return Encoding(name)
	default:
		return EncodingHex
	}
}

// Encode renders b in the given encoding.
func (enc Encoding) Encode(b []byte) string {
	switch enc {
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(b)
	case EncodingBase64URL:
		return base64.RawURLEncoding.EncodeToString(b)
	default:
		return hex.EncodeToString(b)
	}
}

// Bytes draws count fresh bytes and encodes them. The resolved encoding is
// returned alongside the value so callers can report a fallback.
func (e *Engine) Bytes(count int, encoding string) (string, Encoding, error) {
	if err := e.checkCount("count", count); err != nil {
		return "", "", err
	}
	b := make([]byte, count)
	if err := e.fill(b); err != nil {
		return "", "", err
	}
	enc := ParseEncoding(encoding)
	return enc.Encode(b), enc, nil
}

// UUID returns a version 4 UUID in canonical 8-4-4-4-12 form. The 16
// random bytes come from the engine's source; uuid sets the version and
// variant bits.
func (e *Engine) UUID() (string, error) {
	id, err := uuid.NewRandomFromReader(entropyReader{e})
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// entropyReader adapts the engine's checked fill to io.Reader.
type entropyReader struct{ e *Engine }

func (r entropyReader) Read(p []byte) (int, error) {
	if err := r.e.fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
