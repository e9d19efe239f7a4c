package boltstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/codahale/hush/store"
)

func TestSetAndGet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keys.db")

	s, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("group-1", []byte("value")); err != nil {
		t.Fatal(err)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Values survive reopening the database.
	s, err = Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	defer func() { _ = s.Close() }()

	got, err := s.Get("group-1")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "value", []byte("value"), got)

	if _, err := s.Get("group-2"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound but was %v", err)
	}
}

func TestOverwrite(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "keys.db"), nil)
	if err != nil {
		t.Fatal(err)
	}

	defer func() { _ = s.Close() }()

	if err := s.Set("group-1", []byte("one")); err != nil {
		t.Fatal(err)
	}

	if err := s.Set("group-1", []byte("two")); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get("group-1")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "value", []byte("two"), got)
}
