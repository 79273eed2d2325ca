package settings

import "errors"

var (
	// ErrStoreNil is returned by New when Config.Store is nil.
	ErrStoreNil = errors.New("settings store cannot be nil")

	// ErrCorruptValue indicates a stored value that cannot be decoded.
	ErrCorruptValue = errors.New("stored value is corrupt")

	// ErrValueTooLarge indicates a value that does not fit its encoded length field.
	ErrValueTooLarge = errors.New("value is too large to encode")

	// ErrNoTileData indicates a tilemap without an index buffer.
	ErrNoTileData = errors.New("tilemap has no index data")

	// ErrTileDataShort indicates a tilemap with fewer indices than its dimensions need.
	ErrTileDataShort = errors.New("tilemap index data is shorter than its dimensions")

	// ErrNotFound indicates a key with no stored value.
	ErrNotFound = errors.New("setting not found")

	// ErrNotNumber indicates a stored value read as a number that does not parse as one.
	ErrNotNumber = errors.New("stored value is not a number")
)
