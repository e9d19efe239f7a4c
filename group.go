package hush

import (
	"crypto/rand"
	"encoding"
	"fmt"

	"github.com/codahale/hush/internal"
	"github.com/codahale/hush/internal/sym"
	"github.com/codahale/hush/internal/transcode"
)

// GroupKeySize is the length of a group key in bytes.
const GroupKeySize = sym.KeySize

// GroupKey is a random AES-256 key shared by every member of a group.
//
// A group key is created once, when the group is formed, and distributed to each member wrapped
// with their public key. Its binary form is the value stored in a GroupKeyCache.
type GroupKey struct {
	k []byte
}

// GroupKeyEnvelope is a GroupKey wrapped for a single member.
type GroupKeyEnvelope struct {
	// EncryptedKey is "<base64 ciphertext>:<base64 nonce>".
	EncryptedKey string `json:"encryptedKey"`

	// EphemeralPublicKey is the base64 encoding of the wrapping ephemeral public key.
	EphemeralPublicKey string `json:"ephemeralPublicKey"`
}

// NewGroupKey generates a new random group key.
func NewGroupKey() (*GroupKey, error) {
	k := make([]byte, GroupKeySize)
	if _, err := rand.Read(k); err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrKeyGeneration, err)
	}

	return &GroupKey{k: k}, nil
}

// WrapFor wraps the group key for the holder of the given public key. Each call uses a fresh
// ephemeral key pair.
func (gk *GroupKey) WrapFor(pk *PublicKey) (*GroupKeyEnvelope, error) {
	env, err := EncryptFor(pk, gk.k)
	if err != nil {
		return nil, err
	}

	return &GroupKeyEnvelope{
		EncryptedKey:       transcode.Join(env.Ciphertext, env.Nonce),
		EphemeralPublicKey: transcode.Encode(env.EphemeralPublicKey),
	}, nil
}

// WrapForMembers wraps the group key independently for each member, keyed by member ID.
func (gk *GroupKey) WrapForMembers(members map[string]*PublicKey) (map[string]*GroupKeyEnvelope, error) {
	envelopes := make(map[string]*GroupKeyEnvelope, len(members))

	for id, pk := range members {
		env, err := gk.WrapFor(pk)
		if err != nil {
			return nil, fmt.Errorf("wrap for %q: %w", id, err)
		}

		envelopes[id] = env
	}

	return envelopes, nil
}

// UnwrapGroupKey recovers a group key from an envelope using the member's private key. Returns
// ErrEncoding if the envelope is malformed, ErrKeyImport if the ephemeral public key is invalid,
// and ErrDecryption if the envelope was not wrapped for the given private key or was modified.
func UnwrapGroupKey(env *GroupKeyEnvelope, sk *PrivateKey) (*GroupKey, error) {
	var (
		e   Envelope
		err error
	)

	// Split the combined ciphertext and nonce.
	if e.Ciphertext, e.Nonce, err = transcode.Split(env.EncryptedKey); err != nil {
		return nil, err
	}

	// Decode the ephemeral public key.
	if e.EphemeralPublicKey, err = transcode.Decode(env.EphemeralPublicKey); err != nil {
		return nil, err
	}

	// Re-derive the wrapping key and decrypt the group key.
	k, err := sk.Decrypt(&e)
	if err != nil {
		return nil, err
	}

	var gk GroupKey
	if err := gk.UnmarshalBinary(k); err != nil {
		return nil, err
	}

	return &gk, nil
}

// Encrypt encrypts a group message.
func (gk *GroupKey) Encrypt(plaintext []byte) (*Envelope, error) {
	return gk.symmetricKey().Encrypt(plaintext)
}

// Decrypt decrypts a group message. Returns ErrDecryption if the envelope was modified or was
// encrypted with a different group key.
func (gk *GroupKey) Decrypt(env *Envelope) ([]byte, error) {
	return gk.symmetricKey().Decrypt(env)
}

// Equal returns true if both group keys are the same. It does not run in constant time.
func (gk *GroupKey) Equal(other *GroupKey) bool {
	return other != nil && string(gk.k) == string(other.k)
}

// MarshalBinary returns the 32-byte group key.
func (gk *GroupKey) MarshalBinary() ([]byte, error) {
	return internal.Copy(gk.k), nil
}

// UnmarshalBinary sets the group key from a 32-byte value.
func (gk *GroupKey) UnmarshalBinary(data []byte) error {
	if len(data) != GroupKeySize {
		return fmt.Errorf("%w: group key is %d bytes", internal.ErrKeyImport, len(data))
	}

	gk.k = internal.Copy(data)

	return nil
}

func (gk *GroupKey) symmetricKey() *SymmetricKey {
	return &SymmetricKey{k: gk.k}
}

var (
	_ encoding.BinaryMarshaler   = &GroupKey{}
	_ encoding.BinaryUnmarshaler = &GroupKey{}
)
