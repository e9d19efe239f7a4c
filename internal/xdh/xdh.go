// Package xdh provides P-256 ECDH functionality.
//
// Each person has a long-term P-256 key pair and shares their public key with others. Public keys
// are encoded as uncompressed points; private keys as 32-byte big-endian scalars.
package xdh

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"

	"github.com/codahale/hush/internal"
)

const (
	PublicKeySize    = 65 // PublicKeySize is the length of an encoded public key in bytes.
	PrivateKeySize   = 32 // PrivateKeySize is the length of an encoded private key in bytes.
	SharedSecretSize = 32 // SharedSecretSize is the length of a shared secret in bytes.
)

// GenerateKeys generates a new P-256 key pair.
func GenerateKeys() (*ecdh.PrivateKey, error) {
	sk, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrKeyGeneration, err)
	}

	return sk, nil
}

// ParsePublicKey decodes an uncompressed P-256 point.
func ParsePublicKey(b []byte) (*ecdh.PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("%w: public key is %d bytes", internal.ErrKeyImport, len(b))
	}

	pk, err := ecdh.P256().NewPublicKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrKeyImport, err)
	}

	return pk, nil
}

// ParsePrivateKey decodes a P-256 scalar.
func ParsePrivateKey(b []byte) (*ecdh.PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: private key is %d bytes", internal.ErrKeyImport, len(b))
	}

	sk, err := ecdh.P256().NewPrivateKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrKeyImport, err)
	}

	return sk, nil
}

// SharedSecret performs a Diffie-Hellman key exchange using the given private key and public key.
// Returns the x-coordinate of the shared point.
func SharedSecret(sk *ecdh.PrivateKey, pk *ecdh.PublicKey) ([]byte, error) {
	if sk == nil || pk == nil {
		return nil, fmt.Errorf("%w: missing key", internal.ErrKeyExchange)
	}

	// Both keys must be on P-256.
	if sk.Curve() != ecdh.P256() || pk.Curve() != ecdh.P256() {
		return nil, fmt.Errorf("%w: keys are not on P-256", internal.ErrKeyExchange)
	}

	zz, err := sk.ECDH(pk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrKeyExchange, err)
	}

	return zz, nil
}
