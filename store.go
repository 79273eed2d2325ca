package settings

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tarmac-project/settings/kv"
)

// Store is the string-only key/value store settings are kept in.
type Store interface {
	// WriteString stores value under key.
	WriteString(key, value string) error

	// ReadString returns the value under key. An absent key fails with an
	// error matching ErrNotFound.
	ReadString(key string) (string, error)

	// ReadNumber returns the value under key parsed as a number. An absent key
	// fails with an error matching ErrNotFound.
	ReadNumber(key string) (float64, error)

	// Exists reports whether key holds a value.
	Exists(key string) (bool, error)

	// List returns every key starting with prefix in store order.
	List(prefix string) ([]string, error)
}

// KVStore is a Store backed by a kv.KV capability client.
type KVStore struct {
	kv kv.KV
}

var _ Store = (*KVStore)(nil)

// NewKVStore wraps a KV client as a settings Store.
func NewKVStore(client kv.KV) *KVStore {
	return &KVStore{kv: client}
}

// WriteString implements Store.
func (s *KVStore) WriteString(key, value string) error {
	return s.kv.Set(key, []byte(value))
}

// ReadString implements Store.
func (s *KVStore) ReadString(key string) (string, error) {
	b, err := s.kv.Get(key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return "", errors.Join(ErrNotFound, err)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteNumber stores n using the shortest representation that reads back exactly.
func (s *KVStore) WriteNumber(key string, n float64) error {
	return s.WriteString(key, strconv.FormatFloat(n, 'g', -1, 64))
}

// ReadNumber implements Store.
func (s *KVStore) ReadNumber(key string) (float64, error) {
	v, err := s.ReadString(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Join(ErrNotNumber, err)
	}
	return n, nil
}

// Exists implements Store.
func (s *KVStore) Exists(key string) (bool, error) {
	_, err := s.kv.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, kv.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// List implements Store.
func (s *KVStore) List(prefix string) ([]string, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out, nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *KVStore) Remove(key string) error {
	if err := s.kv.Delete(key); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return err
	}
	return nil
}
