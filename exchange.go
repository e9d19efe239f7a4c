package hush

import (
	"fmt"

	"github.com/codahale/hush/internal"
	"github.com/codahale/hush/internal/kem"
	"github.com/codahale/hush/internal/sym"
	"github.com/codahale/hush/internal/transcode"
	"github.com/codahale/hush/internal/xdh"
)

// SharedSecret is the result of an ECDH exchange. It can only be used to derive a SymmetricKey.
type SharedSecret struct {
	zz []byte
}

// DeriveSharedSecret calculates the shared secret between the given private key and public key.
// DeriveSharedSecret(a, b.PublicKey()) and DeriveSharedSecret(b, a.PublicKey()) are equal. Returns
// ErrKeyExchange if either key is missing or not on P-256.
func DeriveSharedSecret(sk *PrivateKey, pk *PublicKey) (*SharedSecret, error) {
	if sk == nil || pk == nil {
		return nil, errMissingKey
	}

	zz, err := xdh.SharedSecret(sk.k, pk.k)
	if err != nil {
		return nil, err
	}

	return &SharedSecret{zz: zz}, nil
}

// SymmetricKey derives an AES-256 key from the shared secret with HKDF-SHA-256, a fixed salt, and
// a fixed protocol label. The derivation is deterministic.
func (s *SharedSecret) SymmetricKey() *SymmetricKey {
	return &SymmetricKey{k: kem.DeriveKey(s.zz)}
}

// Equal returns true if both shared secrets are the same. It does not run in constant time.
func (s *SharedSecret) Equal(other *SharedSecret) bool {
	return other != nil && string(s.zz) == string(other.zz)
}

// EncryptFor encrypts the plaintext for the holder of the given public key using a fresh ephemeral
// key pair. The returned envelope carries the ephemeral public key.
func EncryptFor(pk *PublicKey, plaintext []byte) (*Envelope, error) {
	if pk == nil {
		return nil, errMissingKey
	}

	// Generate an ephemeral key pair and derive a symmetric key with the recipient's public key.
	pkE, key, err := kem.Send(pk.k)
	if err != nil {
		return nil, err
	}

	defer internal.Clear(key)

	// Encrypt the plaintext with a random nonce.
	ciphertext, nonce, err := sym.Seal(key, plaintext)
	if err != nil {
		return nil, err
	}

	return &Envelope{Ciphertext: ciphertext, Nonce: nonce, EphemeralPublicKey: pkE}, nil
}

// Decrypt decrypts an envelope produced by EncryptFor with the recipient's private key. Returns
// ErrDecryption if the envelope was encrypted for a different key or was modified.
func (sk *PrivateKey) Decrypt(env *Envelope) ([]byte, error) {
	if sk == nil {
		return nil, errMissingKey
	}

	// Re-derive the symmetric key from the private key and the ephemeral public key.
	key, err := kem.Receive(sk.k, env.EphemeralPublicKey)
	if err != nil {
		return nil, err
	}

	defer internal.Clear(key)

	return sym.Open(key, env.Ciphertext, env.Nonce)
}

// openText decodes the base64 fields of a wire envelope and decrypts it.
func openText(sk *PrivateKey, ciphertext, nonce, pkE string) ([]byte, error) {
	var (
		env Envelope
		err error
	)

	if env.Ciphertext, err = transcode.Decode(ciphertext); err != nil {
		return nil, err
	}

	if env.Nonce, err = transcode.Decode(nonce); err != nil {
		return nil, err
	}

	if env.EphemeralPublicKey, err = transcode.Decode(pkE); err != nil {
		return nil, err
	}

	return sk.Decrypt(&env)
}

//nolint:gochecknoglobals // constant
var errMissingKey = fmt.Errorf("%w: missing key", internal.ErrKeyExchange)
