// Package kem turns P-256 key exchanges into AES-256-GCM keys.
//
// A sender generates an ephemeral key pair, calculates the shared secret between the ephemeral
// private key and the recipient's public key, and derives a symmetric key from it with
// HKDF-SHA-256. The recipient re-derives the same key from their private key and the ephemeral
// public key.
package kem

import (
	"crypto/ecdh"
	"crypto/sha256"
	"io"

	"github.com/codahale/hush/internal"
	"github.com/codahale/hush/internal/sym"
	"github.com/codahale/hush/internal/xdh"
	"golang.org/x/crypto/hkdf"
)

// Info binds derived keys to this protocol version.
const Info = "hush/aes-256-gcm/v1"

// salt is the fixed, application-wide HKDF salt. HKDF treats an all-zero salt of the hash length
// the same as an absent one.
//
//nolint:gochecknoglobals // constant
var salt = make([]byte, sha256.Size)

// DeriveKey returns an AES-256 key derived from the given shared secret.
func DeriveKey(secret []byte) []byte {
	h := hkdf.New(sha256.New, secret, salt, []byte(Info))

	key := make([]byte, sym.KeySize)
	_, _ = io.ReadFull(h, key)

	return key
}

// Send generates an ephemeral key pair and derives a symmetric key shared with the holder of the
// recipient's private key. Returns the encoded ephemeral public key and the symmetric key.
func Send(pkR *ecdh.PublicKey) (pkE, key []byte, err error) {
	// Generate an ephemeral key pair.
	skE, err := xdh.GenerateKeys()
	if err != nil {
		return nil, nil, err
	}

	// Calculate the shared secret between the ephemeral private key and the recipient's public key.
	zz, err := xdh.SharedSecret(skE, pkR)
	if err != nil {
		return nil, nil, err
	}

	// The shared secret is only needed for the duration of the derivation.
	defer internal.Clear(zz)

	return skE.PublicKey().Bytes(), DeriveKey(zz), nil
}

// Receive derives the symmetric key from the recipient's private key and the encoded ephemeral
// public key.
func Receive(skR *ecdh.PrivateKey, pkE []byte) ([]byte, error) {
	// Decode the ephemeral public key.
	q, err := xdh.ParsePublicKey(pkE)
	if err != nil {
		return nil, err
	}

	// Calculate the shared secret between the recipient's private key and the ephemeral public key.
	zz, err := xdh.SharedSecret(skR, q)
	if err != nil {
		return nil, err
	}

	defer internal.Clear(zz)

	return DeriveKey(zz), nil
}
