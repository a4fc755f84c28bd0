package storage

import (
	"context"
	"fmt"

	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// Encrypted seals every value with AES-256-GCM before handing it to the inner store.
type Encrypted struct {
	inner  Store
	cipher *utils.Cipher
}

func NewEncrypted(inner Store, cipher *utils.Cipher) *Encrypted {
	return &Encrypted{inner: inner, cipher: cipher}
}

func (s *Encrypted) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	plain, err := s.cipher.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("storage: decrypt %s: %w", key, err)
	}
	return plain, nil
}

func (s *Encrypted) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := s.cipher.Seal(value)
	if err != nil {
		return fmt.Errorf("storage: encrypt %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *Encrypted) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
