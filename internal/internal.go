// Package internal contains the error values and helpers shared by hush's primitives.
//
// The subpackages of internal contain the primitives hush is built from.
package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyGeneration is returned when a key pair cannot be generated.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyImport is returned when a public or private key cannot be parsed.
	ErrKeyImport = errors.New("invalid key")

	// ErrEncoding is returned when a text value is not validly encoded.
	ErrEncoding = errors.New("invalid encoding")

	// ErrKeyExchange is returned when a shared secret cannot be derived from a pair of keys.
	ErrKeyExchange = errors.New("key exchange failed")

	// ErrDecryption is returned when a ciphertext cannot be decrypted, either due to an incorrect
	// key or tampering.
	ErrDecryption = errors.New("invalid ciphertext")

	// ErrWrongPassword is returned when a password-protected record cannot be decrypted. It wraps
	// ErrDecryption.
	ErrWrongPassword = fmt.Errorf("wrong password: %w", ErrDecryption)
)

// Clear overwrites the given slice with zeros.
func Clear(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Copy returns a copy of the given slice.
func Copy(b []byte) []byte {
	c := make([]byte, len(b))

	copy(c, b)

	return c
}
