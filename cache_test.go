package hush

import (
	"errors"
	"testing"

	"github.com/codahale/hush/store"
	"github.com/codahale/hush/store/memstore"
)

func TestGroupKeyCache(t *testing.T) {
	t.Parallel()

	cache := GroupKeyCache{Store: memstore.New()}

	gk, err := NewGroupKey()
	if err != nil {
		t.Fatal(err)
	}

	if err := cache.Put("group-1", gk); err != nil {
		t.Fatal(err)
	}

	cached, err := cache.Get("group-1")
	if err != nil {
		t.Fatal(err)
	}

	if !cached.Equal(gk) {
		t.Error("cached key did not match")
	}

	if _, err := cache.Get("group-2"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound but was %v", err)
	}
}

func TestGroupKeyCacheCorruptValue(t *testing.T) {
	t.Parallel()

	s := memstore.New()
	if err := s.Set("group-1", []byte("boop")); err != nil {
		t.Fatal(err)
	}

	cache := GroupKeyCache{Store: s}
	if _, err := cache.Get("group-1"); !errors.Is(err, ErrKeyImport) {
		t.Errorf("expected ErrKeyImport but was %v", err)
	}
}
