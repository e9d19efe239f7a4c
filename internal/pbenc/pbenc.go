// Package pbenc implements password-based encryption with PBKDF2-HMAC-SHA-256 and AES-256-GCM.
//
// A 256-bit key is derived from the password and a random 16-byte salt with 100,000 iterations of
// PBKDF2. The plaintext is then encrypted with AES-256-GCM under a random 12-byte IV.
package pbenc

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/codahale/hush/internal"
	"github.com/codahale/hush/internal/sym"
	"golang.org/x/crypto/pbkdf2"
)

const (
	Iterations = 100_000       // Iterations is the fixed PBKDF2 iteration count.
	SaltSize   = 16            // SaltSize is the size of the random salt in bytes.
	IVSize     = sym.NonceSize // IVSize is the size of the random IV in bytes.
)

// DeriveKey derives an AES-256 key from the given password and salt.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, Iterations, sym.KeySize, sha256.New)
}

// Encrypt encrypts the plaintext with a key derived from the password and a random salt. Returns
// the ciphertext, the salt, and the IV.
func Encrypt(password, plaintext []byte) (ciphertext, salt, iv []byte, err error) {
	// Generate a random salt.
	salt = make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, nil, err
	}

	// Derive a key from the password and salt.
	key := DeriveKey(password, salt)
	defer internal.Clear(key)

	// Encrypt the plaintext with a random IV.
	ciphertext, iv, err = sym.Seal(key, plaintext)
	if err != nil {
		return nil, nil, nil, err
	}

	return ciphertext, salt, iv, nil
}

// Decrypt re-derives the key from the password and salt and decrypts the ciphertext. Returns
// internal.ErrWrongPassword if the ciphertext cannot be authenticated.
func Decrypt(password, salt, iv, ciphertext []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes", internal.ErrEncoding, len(salt))
	}

	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: IV is %d bytes", internal.ErrEncoding, len(iv))
	}

	// Re-derive the key from the password and salt.
	key := DeriveKey(password, salt)
	defer internal.Clear(key)

	plaintext, err := sym.Open(key, ciphertext, iv)
	if errors.Is(err, internal.ErrDecryption) {
		return nil, internal.ErrWrongPassword
	} else if err != nil {
		return nil, err
	}

	return plaintext, nil
}
