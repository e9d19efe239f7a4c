package pbenc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/codahale/hush/internal"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	password := []byte("this is a secure thing")
	message := []byte("this is a real message")

	ciphertext, salt, iv, err := Encrypt(password, message)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "salt length", SaltSize, len(salt))
	assert.Equal(t, "IV length", IVSize, len(iv))

	plaintext, err := Decrypt(password, salt, iv, ciphertext)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "plaintext", message, plaintext)
}

func TestBadPassword(t *testing.T) {
	t.Parallel()

	ciphertext, salt, iv, err := Encrypt([]byte("this is a secure thing"), []byte("this is a real message"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decrypt([]byte("boop"), salt, iv, ciphertext)
	if !errors.Is(err, internal.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword but was %v", err)
	}

	if !errors.Is(err, internal.ErrDecryption) {
		t.Fatalf("expected ErrWrongPassword to wrap ErrDecryption")
	}
}

func TestBadSalt(t *testing.T) {
	t.Parallel()

	password := []byte("this is a secure thing")

	ciphertext, salt, iv, err := Encrypt(password, []byte("this is a real message"))
	if err != nil {
		t.Fatal(err)
	}

	salt[0] ^= 1

	if _, err := Decrypt(password, salt, iv, ciphertext); !errors.Is(err, internal.ErrWrongPassword) {
		t.Errorf("modified salt: expected ErrWrongPassword but was %v", err)
	}

	if _, err := Decrypt(password, []byte("boop"), iv, ciphertext); !errors.Is(err, internal.ErrEncoding) {
		t.Errorf("short salt: expected ErrEncoding but was %v", err)
	}

	if _, err := Decrypt(password, salt, iv[:4], ciphertext); !errors.Is(err, internal.ErrEncoding) {
		t.Errorf("short IV: expected ErrEncoding but was %v", err)
	}
}

func TestDeriveKey(t *testing.T) {
	t.Parallel()

	salt := bytes.Repeat([]byte{0x23}, SaltSize)

	a := DeriveKey([]byte("correct-horse"), salt)
	b := DeriveKey([]byte("correct-horse"), salt)
	c := DeriveKey([]byte("wrong-horse"), salt)

	assert.Equal(t, "deterministic key", a, b)
	assert.Equal(t, "key length", 32, len(a))

	if bytes.Equal(a, c) {
		t.Error("different passwords derived the same key")
	}
}

func BenchmarkDeriveKey(b *testing.B) {
	salt := make([]byte, SaltSize)

	for i := 0; i < b.N; i++ {
		_ = DeriveKey([]byte("correct-horse"), salt)
	}
}
