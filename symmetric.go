package hush

import (
	"github.com/codahale/hush/internal/sym"
)

// SymmetricKey is an AES-256-GCM key derived from a SharedSecret or a password. Its key material
// cannot be exported.
type SymmetricKey struct {
	k []byte
}

// Envelope is a ciphertext and the nonce used to produce it. Envelopes produced by an ephemeral
// exchange also carry the encoded ephemeral public key.
//
// Binary fields are encoded as base64 when marshalled as JSON.
type Envelope struct {
	Ciphertext         []byte `json:"encryptedData"`
	Nonce              []byte `json:"nonce"`
	EphemeralPublicKey []byte `json:"ephemeralPublicKey,omitempty"`
}

// Encrypt encrypts the plaintext with AES-256-GCM and a fresh random 96-bit nonce.
func (k *SymmetricKey) Encrypt(plaintext []byte) (*Envelope, error) {
	ciphertext, nonce, err := sym.Seal(k.k, plaintext)
	if err != nil {
		return nil, err
	}

	return &Envelope{Ciphertext: ciphertext, Nonce: nonce}, nil
}

// Decrypt authenticates and decrypts the envelope. Returns ErrDecryption if the envelope has been
// modified or was encrypted with a different key.
func (k *SymmetricKey) Decrypt(env *Envelope) ([]byte, error) {
	return sym.Open(k.k, env.Ciphertext, env.Nonce)
}
