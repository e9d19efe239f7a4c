package hush

import (
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestProtect(t *testing.T) {
	t.Parallel()

	serialized := []byte("MHcCAQEEIEt0aGlzIGlzIGEgcHJpdmF0ZSBrZXkhISE=")

	record, err := Protect(serialized, []byte("correct-horse"))
	if err != nil {
		t.Fatal(err)
	}

	plaintext, err := Unprotect(record, []byte("correct-horse"))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "serialized key", serialized, plaintext)
}

func TestUnprotectWrongPassword(t *testing.T) {
	t.Parallel()

	serialized := []byte("MHcCAQEEIEt0aGlzIGlzIGEgcHJpdmF0ZSBrZXkhISE=")

	record, err := Protect(serialized, []byte("correct-horse"))
	if err != nil {
		t.Fatal(err)
	}

	plaintext, err := Unprotect(record, []byte("wrong-horse"))
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword but was %v", err)
	}

	if plaintext != nil {
		t.Errorf("returned %q with a wrong password", plaintext)
	}
}

func TestProtectFreshSaltAndIV(t *testing.T) {
	t.Parallel()

	a, err := Protect([]byte("key"), []byte("correct-horse"))
	if err != nil {
		t.Fatal(err)
	}

	b, err := Protect([]byte("key"), []byte("correct-horse"))
	if err != nil {
		t.Fatal(err)
	}

	if a.Salt == b.Salt || a.IV == b.IV || a.EncryptedPrivateKey == b.EncryptedPrivateKey {
		t.Errorf("records share values: %+v %+v", a, b)
	}
}

func TestUnprotectMalformed(t *testing.T) {
	t.Parallel()

	record, err := Protect([]byte("key"), []byte("correct-horse"))
	if err != nil {
		t.Fatal(err)
	}

	for name, r := range map[string]ProtectedRecord{
		"bad ciphertext": {EncryptedPrivateKey: "!!", Salt: record.Salt, IV: record.IV},
		"bad salt":       {EncryptedPrivateKey: record.EncryptedPrivateKey, Salt: "!!", IV: record.IV},
		"bad iv":         {EncryptedPrivateKey: record.EncryptedPrivateKey, Salt: record.Salt, IV: "!!"},
		"short salt":     {EncryptedPrivateKey: record.EncryptedPrivateKey, Salt: "YWJjZA==", IV: record.IV},
	} {
		r := r

		if _, err := Unprotect(&r, []byte("correct-horse")); !errors.Is(err, ErrEncoding) {
			t.Errorf("%s: expected ErrEncoding but was %v", name, err)
		}
	}
}

func TestProtectPrivateKey(t *testing.T) {
	t.Parallel()

	sk, err := NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	record, err := ProtectPrivateKey(sk, []byte("correct-horse"))
	if err != nil {
		t.Fatal(err)
	}

	dsk, err := UnprotectPrivateKey(record, []byte("correct-horse"))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "public key", sk.PublicKey().String(), dsk.PublicKey().String())

	if _, err := UnprotectPrivateKey(record, []byte("wrong-horse")); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword but was %v", err)
	}
}

func TestDeriveKeyFromPassword(t *testing.T) {
	t.Parallel()

	salt := []byte("ayellowsubmarine")

	env, err := DeriveKeyFromPassword([]byte("correct-horse"), salt).Encrypt([]byte("ok bud"))
	if err != nil {
		t.Fatal(err)
	}

	plaintext, err := DeriveKeyFromPassword([]byte("correct-horse"), salt).Decrypt(env)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "plaintext", []byte("ok bud"), plaintext)

	if _, err := DeriveKeyFromPassword([]byte("wrong-horse"), salt).Decrypt(env); !errors.Is(err, ErrDecryption) {
		t.Errorf("expected ErrDecryption but was %v", err)
	}
}
