// Package kv holds the durable key-value stores the ledger persists into.
//
// Values are opaque byte blobs (JSON in practice). Every backend wraps its
// failures in ErrUnavailable so callers can tell "store is down" apart from
// "key is absent", which is reported through the found flag instead.
package kv

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnavailable = errors.New("kv store unavailable")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%s %q: %w: %w", op, key, ErrUnavailable, err)
}
