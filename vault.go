package hush

import (
	"github.com/codahale/hush/internal"
	"github.com/codahale/hush/internal/pbenc"
	"github.com/codahale/hush/internal/transcode"
)

// PasswordIterations is the fixed number of PBKDF2-HMAC-SHA-256 iterations used to derive keys from
// passwords.
const PasswordIterations = pbenc.Iterations

// ProtectedRecord is a serialized private key encrypted with a key derived from a password.
type ProtectedRecord struct {
	EncryptedPrivateKey string `json:"encryptedPrivateKey"`
	Salt                string `json:"salt"`
	IV                  string `json:"iv"`
}

// DeriveKeyFromPassword derives an AES-256 key from the password and salt with PBKDF2-HMAC-SHA-256.
func DeriveKeyFromPassword(password, salt []byte) *SymmetricKey {
	return &SymmetricKey{k: pbenc.DeriveKey(password, salt)}
}

// Protect encrypts the serialized private key with the given password, using a random 16-byte salt
// and a random 12-byte IV.
func Protect(serialized, password []byte) (*ProtectedRecord, error) {
	ciphertext, salt, iv, err := pbenc.Encrypt(password, serialized)
	if err != nil {
		return nil, err
	}

	return &ProtectedRecord{
		EncryptedPrivateKey: transcode.Encode(ciphertext),
		Salt:                transcode.Encode(salt),
		IV:                  transcode.Encode(iv),
	}, nil
}

// Unprotect decrypts the record with the given password and returns the serialized private key.
// Returns ErrWrongPassword if the password is incorrect or the record has been modified, and
// ErrEncoding if the record is malformed.
func Unprotect(record *ProtectedRecord, password []byte) ([]byte, error) {
	ciphertext, err := transcode.Decode(record.EncryptedPrivateKey)
	if err != nil {
		return nil, err
	}

	salt, err := transcode.Decode(record.Salt)
	if err != nil {
		return nil, err
	}

	iv, err := transcode.Decode(record.IV)
	if err != nil {
		return nil, err
	}

	return pbenc.Decrypt(password, salt, iv, ciphertext)
}

// ProtectPrivateKey serializes the private key and encrypts it with the given password.
func ProtectPrivateKey(sk *PrivateKey, password []byte) (*ProtectedRecord, error) {
	text, err := sk.MarshalText()
	if err != nil {
		return nil, err
	}

	defer internal.Clear(text)

	return Protect(text, password)
}

// UnprotectPrivateKey decrypts the record with the given password and parses the private key.
func UnprotectPrivateKey(record *ProtectedRecord, password []byte) (*PrivateKey, error) {
	text, err := Unprotect(record, password)
	if err != nil {
		return nil, err
	}

	defer internal.Clear(text)

	return ParsePrivateKey(text)
}
