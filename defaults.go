package settings

import "errors"

// ReadNumberOrDefault returns the number stored under key, or fallback if key
// is absent. A stored value that is not a number fails in the Store.
func (c *Client) ReadNumberOrDefault(key string, fallback float64) (float64, error) {
	n, err := c.store.ReadNumber(key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	return n, err
}

// ReadStringOrDefault returns the string stored under key, or fallback if key
// is absent.
func (c *Client) ReadStringOrDefault(key string, fallback string) (string, error) {
	v, ok, err := c.read(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	return v, nil
}
