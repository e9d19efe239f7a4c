package hush

import (
	"fmt"

	"github.com/codahale/hush/store"
)

// GroupKeyCache stores unwrapped group keys by group ID in a key-value store. Values are the raw
// 32-byte group keys.
//
// Nothing in this package caches keys on its own; callers decide when to Put and Get.
type GroupKeyCache struct {
	Store store.Store
}

// Put stores the group key under the given group ID.
func (c *GroupKeyCache) Put(groupID string, gk *GroupKey) error {
	b, err := gk.MarshalBinary()
	if err != nil {
		return err
	}

	return c.Store.Set(groupID, b)
}

// Get returns the group key stored under the given group ID. Returns store.ErrNotFound if there is
// none.
func (c *GroupKeyCache) Get(groupID string) (*GroupKey, error) {
	b, err := c.Store.Get(groupID)
	if err != nil {
		return nil, err
	}

	var gk GroupKey
	if err := gk.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("cached key for %q: %w", groupID, err)
	}

	return &gk, nil
}
