package kv

import "context"

// Prefixed namespaces every key of an underlying Store.
type Prefixed struct {
	Store
	prefix string
}

func WithPrefix(s Store, prefix string) Store {
	if prefix == "" {
		return s
	}
	return &Prefixed{Store: s, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return p.Store.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.Store.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Delete(ctx context.Context, key string) error {
	return p.Store.Delete(ctx, p.prefix+key)
}
