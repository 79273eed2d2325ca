package settings

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
)

// boolHeaderSize covers the uint16 flag count.
const boolHeaderSize = 2

// EncodeBooleans bit-packs flags eight per byte, least significant bit first,
// after a little-endian uint16 count.
func EncodeBooleans(flags []bool) (string, error) {
	n := len(flags)
	if n > math.MaxUint16 {
		return "", fmt.Errorf("%w: %d booleans, limit is %d", ErrValueTooLarge, n, math.MaxUint16)
	}

	buf := make([]byte, boolHeaderSize+(n+7)/8)
	binary.LittleEndian.PutUint16(buf[0:boolHeaderSize], uint16(n))
	for i, f := range flags {
		if f {
			buf[boolHeaderSize+i>>3] |= 1 << (i & 7)
		}
	}
	return hex.EncodeToString(buf), nil
}

// DecodeBooleans unpacks a value written by EncodeBooleans.
func DecodeBooleans(encoded string) ([]bool, error) {
	buf, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrCorruptValue, err)
	}
	if len(buf) < boolHeaderSize {
		return nil, fmt.Errorf("%w: boolean header needs %d bytes, got %d", ErrCorruptValue, boolHeaderSize, len(buf))
	}

	n := int(binary.LittleEndian.Uint16(buf[0:boolHeaderSize]))
	if need := boolHeaderSize + (n+7)/8; len(buf) < need {
		return nil, fmt.Errorf("%w: %d booleans need %d bytes, got %d", ErrCorruptValue, n, need, len(buf))
	}

	flags := make([]bool, n)
	for i := range flags {
		flags[i] = buf[boolHeaderSize+i>>3]&(1<<(i&7)) != 0
	}
	return flags, nil
}

// WriteBooleanArray stores flags under key.
func (c *Client) WriteBooleanArray(key string, flags []bool) error {
	encoded, err := EncodeBooleans(flags)
	if err != nil {
		return err
	}
	return c.store.WriteString(key, encoded)
}

// ReadBooleanArray returns the flags stored under key, or an empty slice if
// key is absent.
func (c *Client) ReadBooleanArray(key string) ([]bool, error) {
	v, ok, err := c.read(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []bool{}, nil
	}
	flags, err := DecodeBooleans(v)
	if err != nil {
		c.corrupt(key, "booleans", err)
		return nil, err
	}
	return flags, nil
}
