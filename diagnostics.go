package settings

import (
	"errors"
	"unicode/utf8"
)

// StorageUsed estimates the bytes held by every key the store lists, counting
// one byte per character of each stored value. Keys the store reserves for
// itself are not listed and not counted.
func (c *Client) StorageUsed() (int, error) {
	keys, err := c.store.List("")
	if err != nil {
		return 0, err
	}
	total := 0
	for _, k := range keys {
		v, err := c.store.ReadString(k)
		if errors.Is(err, ErrNotFound) {
			// removed since List
			continue
		}
		if err != nil {
			return 0, err
		}
		total += utf8.RuneCountInString(v)
	}
	return total, nil
}

// ListKeys returns the keys starting with prefix in the order the store gives
// them. An empty prefix lists every key.
func (c *Client) ListKeys(prefix string) ([]string, error) {
	return c.store.List(prefix)
}
