// Package sym provides AES-256-GCM authenticated encryption with random nonces.
package sym

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/codahale/hush/internal"
)

const (
	KeySize   = 32 // KeySize is the size of AEAD keys in bytes.
	NonceSize = 12 // NonceSize is the size of AEAD nonces in bytes.
	TagSize   = 16 // TagSize is the size of AEAD tags in bytes.
)

// NewAEAD returns a new AEAD using the given key.
func NewAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// Seal encrypts the plaintext with the given key and a freshly generated random nonce. Returns the
// ciphertext and the nonce.
func Seal(key, plaintext []byte) (ciphertext, nonce []byte, err error) {
	aead, err := NewAEAD(key)
	if err != nil {
		return nil, nil, err
	}

	// Generate a random nonce. Nonces are never derived or counted.
	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	return aead.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Open authenticates and decrypts the ciphertext with the given key and nonce. Returns
// internal.ErrDecryption if the ciphertext or nonce has been modified, or if the key is
// incorrect.
func Open(key, ciphertext, nonce []byte) ([]byte, error) {
	if len(nonce) != NonceSize || len(ciphertext) < TagSize {
		return nil, internal.ErrDecryption
	}

	aead, err := NewAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrDecryption, err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, internal.ErrDecryption
	}

	return plaintext, nil
}
