package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arkadym/careermate/internal/common"
	"github.com/arkadym/careermate/internal/cryptox"
)

const (
	secretFileName = "store.secret"
	saltLen        = 16
	secretLen      = 32
	nonceLen       = 12
)

// SealedStore wraps a Store and encrypts every value at rest with AES-GCM.
// The key is derived from a per-install random secret file, so tokens and the
// cached profile are not readable by casually copying the database file.
// Stored values are nonce || ciphertext.
type SealedStore struct {
	inner Store
	key   []byte
}

// NewSealedStore derives the sealing key from the secret file in dataDir,
// creating the secret on first run, and returns the wrapping store.
func NewSealedStore(inner Store, dataDir string) (*SealedStore, error) {
	secret, salt, err := loadOrCreateSecret(filepath.Join(dataDir, secretFileName))
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(secret)

	return &SealedStore{inner: inner, key: cryptox.DeriveStoreKey(secret, salt)}, nil
}

func loadOrCreateSecret(path string) (secret, salt []byte, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != saltLen+secretLen {
			return nil, nil, fmt.Errorf("secret file %s has unexpected size %d", path, len(data))
		}
		return data[saltLen:], data[:saltLen], nil
	}
	if !os.IsNotExist(err) {
		return nil, nil, err
	}

	data = common.GenerateRandByteArray(saltLen + secretLen)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, nil, fmt.Errorf("failed to write secret file: %w", err)
	}
	return data[saltLen:], data[:saltLen], nil
}

func (s *SealedStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	if len(sealed) < nonceLen {
		return nil, fmt.Errorf("sealed value for %s is truncated", key)
	}
	plaintext, err := cryptox.Open(sealed[nonceLen:], sealed[:nonceLen], s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to open sealed value for %s: %w", key, err)
	}
	return plaintext, nil
}

func (s *SealedStore) Set(ctx context.Context, key string, value []byte) error {
	ciphertext, nonce, err := cryptox.Seal(value, s.key)
	if err != nil {
		return fmt.Errorf("failed to seal value for %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, append(nonce, ciphertext...))
}

func (s *SealedStore) SetMany(ctx context.Context, values map[string][]byte) error {
	sealed := make(map[string][]byte, len(values))
	for key, value := range values {
		ciphertext, nonce, err := cryptox.Seal(value, s.key)
		if err != nil {
			return fmt.Errorf("failed to seal value for %s: %w", key, err)
		}
		sealed[key] = append(nonce, ciphertext...)
	}
	return s.inner.SetMany(ctx, sealed)
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *SealedStore) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}
