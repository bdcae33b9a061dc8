// Package store holds the key/value backends org state is persisted to.
package store

import (
	"context"
	"errors"
	"sort"
)

// ErrEmptyKey is returned for blank keys.
var ErrEmptyKey = errors.New("store: empty key")

// State is a flat binary key/value space. Keys are opaque byte strings built by the contract
// package from prefix bytes and ids.
type State interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists every key starting with prefix in byte order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Apply writes a batch all at once.
	Apply(ctx context.Context, b *Batch) error
}

type op struct {
	key   string
	value []byte
	del   bool
}

// Batch collects writes so a whole org snapshot lands together.
type Batch struct {
	ops []op
}

func (b *Batch) Set(key string, value []byte) {
	b.ops = append(b.ops, op{key: key, value: append([]byte(nil), value...)})
}

func (b *Batch) Delete(key string) {
	b.ops = append(b.ops, op{key: key, del: true})
}

// Len reports the number of queued writes.
func (b *Batch) Len() int { return len(b.ops) }

// prefixEnd returns the smallest key greater than every key with the prefix, or "" when
// no such key exists (prefix is all 0xff).
func prefixEnd(prefix string) string {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xff {
			b[i]++
			return string(b[:i+1])
		}
	}
	return ""
}

func sortedKeys(keys []string) []string {
	sort.Strings(keys)
	return keys
}
