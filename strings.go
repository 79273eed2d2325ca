package settings

import (
	"bytes"
	"encoding/json"
	"errors"
)

// EncodeStrings returns list as a JSON array. A nil list encodes as "[]".
func EncodeStrings(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(list); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(b.Bytes(), []byte("\n"))), nil
}

// DecodeStrings parses a JSON array of strings. A JSON null decodes to an
// empty slice.
func DecodeStrings(encoded string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return nil, errors.Join(ErrCorruptValue, err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// WriteStringArray stores list under key.
func (c *Client) WriteStringArray(key string, list []string) error {
	encoded, err := EncodeStrings(list)
	if err != nil {
		return err
	}
	return c.store.WriteString(key, encoded)
}

// ReadStringArray returns the list stored under key, or an empty slice if key
// is absent. A stored value that does not parse is an error, never an empty list.
func (c *Client) ReadStringArray(key string) ([]string, error) {
	v, ok, err := c.read(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	list, err := DecodeStrings(v)
	if err != nil {
		c.corrupt(key, "strings", err)
		return nil, err
	}
	return list, nil
}
