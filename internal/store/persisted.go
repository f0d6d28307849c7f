package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"dante/internal/domain"
)

// ioTimeout bounds every backend call made on behalf of a store.
const ioTimeout = 5 * time.Second

// envelope is the persisted shape of every store: {"state": ..., "version": 0}.
type envelope[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// persisted holds one value of T and writes it through to kv under key.
// Write failures are logged, never returned: callers see mutations as infallible.
type persisted[T any] struct {
	kv  domain.KV
	key string
	log *zap.Logger

	mu    sync.RWMutex
	state T
}

func newPersisted[T any](kv domain.KV, key string, log *zap.Logger) *persisted[T] {
	if log == nil {
		log = zap.NewNop()
	}
	p := &persisted[T]{kv: kv, key: key, log: log.With(zap.String("key", key))}
	p.state = p.rehydrate()
	return p
}

// rehydrate reads the stored envelope. Missing, unreadable or corrupt data yields the zero value.
func (p *persisted[T]) rehydrate() T {
	var zero T

	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	b, err := p.kv.Get(ctx, p.key)
	if err != nil {
		p.log.Warn("discarding unreadable stored state", zap.Error(err))
		return zero
	}
	if b == nil {
		return zero
	}
	st, err := decodeEnvelope[T](b)
	if err != nil {
		p.log.Warn("discarding corrupt stored state", zap.Error(err))
		return zero
	}
	return st
}

func decodeEnvelope[T any](b []byte) (T, error) {
	var env envelope[T]
	if err := json.Unmarshal(b, &env); err != nil {
		var zero T
		return zero, err
	}
	if env.Version > envelopeVersion {
		var zero T
		return zero, fmt.Errorf("unsupported envelope version %d", env.Version)
	}
	return env.State, nil
}

func (p *persisted[T]) get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// set replaces the held value and writes it through.
func (p *persisted[T]) set(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = v
	p.flush(v)
}

// flush must be called with mu held so writes reach the backend in mutation order.
func (p *persisted[T]) flush(v T) {
	b, err := json.Marshal(envelope[T]{State: v, Version: envelopeVersion})
	if err != nil {
		p.log.Error("encode stored state", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	if err := p.kv.Set(ctx, p.key, b); err != nil {
		p.log.Error("persist stored state", zap.Error(err))
	}
}
