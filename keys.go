package hush

import (
	"crypto/ecdh"
	"crypto/sha256"
	"encoding"
	"fmt"

	"github.com/codahale/hush/internal/transcode"
	"github.com/codahale/hush/internal/xdh"
	"github.com/mr-tron/base58"
)

// PublicKeySize is the length of an encoded public key in bytes.
const PublicKeySize = xdh.PublicKeySize

// PublicKey is a P-256 public key, used to encrypt messages and wrap group keys.
//
// It can be marshalled as a raw uncompressed point or as base64 text.
type PublicKey struct {
	k *ecdh.PublicKey
}

// ParsePublicKey decodes a raw uncompressed P-256 point. Returns ErrKeyImport if the point is the
// wrong length or is not on the curve.
func ParsePublicKey(data []byte) (*PublicKey, error) {
	k, err := xdh.ParsePublicKey(data)
	if err != nil {
		return nil, err
	}

	return &PublicKey{k: k}, nil
}

// Equal returns true if the given PublicKey is equal to the receiver.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.k.Equal(other.k)
}

// Fingerprint returns a short, human-readable identifier for the public key.
func (pk *PublicKey) Fingerprint() string {
	h := sha256.Sum256(pk.k.Bytes())

	return base58.Encode(h[:16])
}

// String returns the public key as base64 text.
func (pk *PublicKey) String() string {
	text, err := pk.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalBinary encodes the public key as a 65-byte uncompressed point.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.k.Bytes(), nil
}

// UnmarshalBinary decodes the public key from a 65-byte uncompressed point.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	k, err := xdh.ParsePublicKey(data)
	if err != nil {
		return err
	}

	pk.k = k

	return nil
}

// MarshalText encodes the public key as base64 text.
func (pk *PublicKey) MarshalText() ([]byte, error) {
	return []byte(transcode.Encode(pk.k.Bytes())), nil
}

// UnmarshalText decodes the results of MarshalText.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	data, err := transcode.Decode(string(text))
	if err != nil {
		return err
	}

	return pk.UnmarshalBinary(data)
}

// PrivateKey is a P-256 private key, used to decrypt messages and unwrap group keys.
//
// It should never be stored in plaintext. Use ProtectPrivateKey to encrypt it with a password.
type PrivateKey struct {
	k *ecdh.PrivateKey
}

// NewPrivateKey generates a new identity private key. Returns ErrKeyGeneration if the system's
// random number generator is unavailable.
func NewPrivateKey() (*PrivateKey, error) {
	k, err := xdh.GenerateKeys()
	if err != nil {
		return nil, err
	}

	return &PrivateKey{k: k}, nil
}

// ParsePrivateKey decodes the results of PrivateKey.MarshalText.
func ParsePrivateKey(text []byte) (*PrivateKey, error) {
	data, err := transcode.Decode(string(text))
	if err != nil {
		return nil, err
	}

	k, err := xdh.ParsePrivateKey(data)
	if err != nil {
		return nil, err
	}

	return &PrivateKey{k: k}, nil
}

// PublicKey returns the corresponding PublicKey for the receiver.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{k: sk.k.PublicKey()}
}

// MarshalText serializes the private key as the base64 encoding of its 32-byte scalar.
func (sk *PrivateKey) MarshalText() ([]byte, error) {
	return []byte(transcode.Encode(sk.k.Bytes())), nil
}

// String returns the fingerprint of the private key's public key.
func (sk *PrivateKey) String() string {
	return sk.PublicKey().Fingerprint()
}

var (
	_ encoding.BinaryMarshaler   = &PublicKey{}
	_ encoding.BinaryUnmarshaler = &PublicKey{}
	_ encoding.TextMarshaler     = &PublicKey{}
	_ encoding.TextUnmarshaler   = &PublicKey{}
	_ fmt.Stringer               = &PublicKey{}
	_ encoding.TextMarshaler     = &PrivateKey{}
	_ fmt.Stringer               = &PrivateKey{}
)
