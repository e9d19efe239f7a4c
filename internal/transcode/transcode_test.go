package transcode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/codahale/hush/internal"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	b := []byte("ok bud")

	d, err := Decode(Encode(b))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded value", b, d)
}

func TestDecodeBadInput(t *testing.T) {
	t.Parallel()

	if _, err := Decode("not*base64"); !errors.Is(err, internal.ErrEncoding) {
		t.Fatalf("expected ErrEncoding but was %v", err)
	}
}

func TestJoinAndSplit(t *testing.T) {
	t.Parallel()

	ct := []byte("this is a ciphertext")
	nonce := bytes.Repeat([]byte{0x23}, 12)

	s := Join(ct, nonce)

	ct2, nonce2, err := Split(s)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "ciphertext", ct, ct2)
	assert.Equal(t, "nonce", nonce, nonce2)
}

func TestSplitMalformed(t *testing.T) {
	t.Parallel()

	nonce := Encode(bytes.Repeat([]byte{0x23}, 12))

	for name, s := range map[string]string{
		"no separator":    "abcd" + nonce,
		"empty":           "",
		"no ciphertext":   ":" + nonce,
		"no nonce":        "YWJjZA==:",
		"bad ciphertext":  "!!!!:" + nonce,
		"bad nonce":       "YWJjZA==:!!!!",
		"short nonce":     "YWJjZA==:YWJjZA==",
		"only separator":  ":",
		"extra separator": "YWJjZA==:" + nonce + ":" + nonce,
	} {
		s := s

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := Split(s); !errors.Is(err, internal.ErrEncoding) {
				t.Fatalf("expected ErrEncoding but was %v", err)
			}
		})
	}
}
