package mock

import (
	"sort"

	"github.com/tarmac-project/settings/kv"
)

// Operation names recorded in Call.Op.
const (
	OpGet    = "GET"
	OpSet    = "SET"
	OpDelete = "DELETE"
	OpKeys   = "KEYS"
)

// Config configures the mock client.
type Config struct {
	// Seed pre-populates the in-memory store.
	Seed map[string][]byte

	// KeyOrder fixes the order Keys reports seeded keys in. Keys set later are
	// appended in insertion order. When nil, Keys returns sorted keys.
	KeyOrder []string
}

// Call records an operation performed against the mock.
type Call struct {
	Op    string
	Key   string
	Value []byte
}

type override struct {
	value    []byte
	keys     []string
	err      error
	hasValue bool
	hasKeys  bool
}

// Override configures the outcome of one operation, optionally scoped to a key.
type Override struct {
	m  *Client
	id string
}

// ReturnValue makes GET return v instead of the stored value.
func (o *Override) ReturnValue(v []byte) *Override {
	ov := o.m.overrides[o.id]
	ov.value, ov.hasValue = v, true
	o.m.overrides[o.id] = ov
	return o
}

// ReturnKeys makes KEYS return keys instead of the stored key set.
func (o *Override) ReturnKeys(keys []string) *Override {
	ov := o.m.overrides[o.id]
	ov.keys, ov.hasKeys = append([]string(nil), keys...), true
	o.m.overrides[o.id] = ov
	return o
}

// ReturnError makes the operation fail with err without touching the store.
func (o *Override) ReturnError(err error) *Client {
	ov := o.m.overrides[o.id]
	ov.err = err
	o.m.overrides[o.id] = ov
	return o.m
}

// Client is an in-memory kv.KV for tests.
type Client struct {
	store     map[string][]byte
	order     []string
	sorted    bool
	overrides map[string]override

	// Calls stores a history of operations for assertions.
	Calls []Call
}

var _ kv.KV = (*Client)(nil)

// New creates a new mock KV client.
func New(cfg Config) *Client {
	m := &Client{
		store:     make(map[string][]byte, len(cfg.Seed)),
		overrides: make(map[string]override),
		sorted:    cfg.KeyOrder == nil,
	}
	for k, v := range cfg.Seed {
		m.store[k] = append([]byte(nil), v...)
	}
	for _, k := range cfg.KeyOrder {
		if _, ok := m.store[k]; ok {
			m.order = append(m.order, k)
		}
	}
	return m
}

// OnGet configures a GET outcome for key.
func (m *Client) OnGet(key string) *Override { return &Override{m: m, id: OpGet + " " + key} }

// OnSet configures a SET outcome for key.
func (m *Client) OnSet(key string) *Override { return &Override{m: m, id: OpSet + " " + key} }

// OnDelete configures a DELETE outcome for key.
func (m *Client) OnDelete(key string) *Override { return &Override{m: m, id: OpDelete + " " + key} }

// OnKeys configures the KEYS outcome.
func (m *Client) OnKeys() *Override { return &Override{m: m, id: OpKeys} }

// Get implements kv.KV.
func (m *Client) Get(key string) ([]byte, error) {
	m.Calls = append(m.Calls, Call{Op: OpGet, Key: key})
	if key == "" {
		return nil, kv.ErrInvalidKey
	}
	if ov, ok := m.overrides[OpGet+" "+key]; ok {
		if ov.err != nil {
			return nil, ov.err
		}
		if ov.hasValue {
			return ov.value, nil
		}
	}
	v, ok := m.store[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements kv.KV.
func (m *Client) Set(key string, value []byte) error {
	m.Calls = append(m.Calls, Call{Op: OpSet, Key: key, Value: append([]byte(nil), value...)})
	if key == "" {
		return kv.ErrInvalidKey
	}
	if value == nil {
		return kv.ErrInvalidValue
	}
	if ov, ok := m.overrides[OpSet+" "+key]; ok && ov.err != nil {
		return ov.err
	}
	if _, ok := m.store[key]; !ok && !m.sorted {
		m.order = append(m.order, key)
	}
	m.store[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements kv.KV.
func (m *Client) Delete(key string) error {
	m.Calls = append(m.Calls, Call{Op: OpDelete, Key: key})
	if key == "" {
		return kv.ErrInvalidKey
	}
	if ov, ok := m.overrides[OpDelete+" "+key]; ok && ov.err != nil {
		return ov.err
	}
	if _, ok := m.store[key]; !ok {
		return kv.ErrKeyNotFound
	}
	delete(m.store, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Keys implements kv.KV.
func (m *Client) Keys() ([]string, error) {
	m.Calls = append(m.Calls, Call{Op: OpKeys})
	if ov, ok := m.overrides[OpKeys]; ok {
		if ov.err != nil {
			return nil, ov.err
		}
		if ov.hasKeys {
			return append([]string(nil), ov.keys...), nil
		}
	}
	if !m.sorted {
		return append([]string(nil), m.order...), nil
	}
	keys := make([]string, 0, len(m.store))
	for k := range m.store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close implements kv.KV.
func (m *Client) Close() error { return nil }

// Len reports how many keys the store holds.
func (m *Client) Len() int { return len(m.store) }
