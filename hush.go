// Package hush implements the cryptographic core of an end-to-end encrypted chat client.
//
// Every person has a long-term P-256 identity key pair. The private half never leaves the process
// unencrypted: at rest, it is protected with a key derived from the person's password. Direct
// messages are encrypted with AES-256-GCM under a key derived from an ephemeral ECDH exchange with
// the recipient's public key, and again under a second, independent exchange with the sender's
// own public key so the sender can read their sent history. Groups share a single random AES-256
// key, which is wrapped separately for each member's public key.
//
// All binary values are base64-encoded before they leave this package.
package hush

import (
	"github.com/codahale/hush/internal"
)

var (
	// ErrKeyGeneration is returned when a key pair cannot be generated.
	ErrKeyGeneration = internal.ErrKeyGeneration

	// ErrKeyImport is returned when a public or private key is malformed or not on P-256.
	ErrKeyImport = internal.ErrKeyImport

	// ErrEncoding is returned when base64 text or a combined envelope string is malformed.
	ErrEncoding = internal.ErrEncoding

	// ErrKeyExchange is returned when a shared secret cannot be derived from a pair of keys.
	ErrKeyExchange = internal.ErrKeyExchange

	// ErrDecryption is returned when a ciphertext cannot be decrypted, either due to an incorrect
	// key or tampering. The two cases are indistinguishable.
	ErrDecryption = internal.ErrDecryption

	// ErrWrongPassword is returned when a ProtectedRecord cannot be decrypted with the given
	// password. errors.Is(ErrWrongPassword, ErrDecryption) is true.
	ErrWrongPassword = internal.ErrWrongPassword
)
