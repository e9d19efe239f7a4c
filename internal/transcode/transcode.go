// Package transcode converts binary values to and from the text encodings used on the wire.
//
// Every binary value is encoded with padded standard base64. Group key envelopes additionally
// combine a ciphertext and its nonce into a single string, separated by a colon.
package transcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/codahale/hush/internal"
	"github.com/codahale/hush/internal/sym"
)

// Separator divides the ciphertext and nonce halves of a combined value.
const Separator = ":"

// Encode returns the base64 encoding of b.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Decode returns the bytes represented by the base64 string s.
func Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrEncoding, err)
	}

	return b, nil
}

// Join returns the combined "<ciphertext>:<nonce>" form of the given values.
func Join(ciphertext, nonce []byte) string {
	return Encode(ciphertext) + Separator + Encode(nonce)
}

// Split parses a combined "<ciphertext>:<nonce>" value.
func Split(s string) (ciphertext, nonce []byte, err error) {
	ct, n, ok := strings.Cut(s, Separator)
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing separator", internal.ErrEncoding)
	}

	if ct == "" || n == "" {
		return nil, nil, fmt.Errorf("%w: empty component", internal.ErrEncoding)
	}

	if ciphertext, err = Decode(ct); err != nil {
		return nil, nil, err
	}

	if nonce, err = Decode(n); err != nil {
		return nil, nil, err
	}

	if len(nonce) != sym.NonceSize {
		return nil, nil, fmt.Errorf("%w: nonce is %d bytes", internal.ErrEncoding, len(nonce))
	}

	return ciphertext, nonce, nil
}
