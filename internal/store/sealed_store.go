package store

import (
	"context"

	"dante/internal/domain"
)

// SealedKV encrypts every value with a passphrase before handing it to inner.
type SealedKV struct {
	inner      domain.KV
	passphrase string
	n, r, p    int
}

// SealedOption tunes a SealedKV.
type SealedOption func(*SealedKV)

// WithScryptParams overrides the scrypt cost parameters. Tests use small values.
func WithScryptParams(n, r, p int) SealedOption {
	return func(s *SealedKV) { s.n, s.r, s.p = n, r, p }
}

// NewSealedKV wraps inner so values are sealed at rest.
func NewSealedKV(inner domain.KV, passphrase string, opts ...SealedOption) *SealedKV {
	n, r, p := scryptParamsDefault()
	s := &SealedKV{inner: inner, passphrase: passphrase, n: n, r: r, p: p}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Get returns the opened value, or ErrWrongPassphrase if it cannot be opened.
func (s *SealedKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.inner.Get(ctx, key)
	if err != nil || b == nil {
		return b, err
	}
	return decrypt(s.passphrase, key, b)
}

func (s *SealedKV) Set(ctx context.Context, key string, value []byte) error {
	b, err := encrypt(s.passphrase, key, value, s.n, s.r, s.p)
	if err != nil {
		return err
	}
	return s.inner.Set(ctx, key, b)
}

func (s *SealedKV) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

var _ domain.KV = (*SealedKV)(nil)
