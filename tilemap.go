package settings

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
)

// tilemapHeaderSize covers the width and height fields.
const tilemapHeaderSize = 4

// TileScale is the pixel size of a tile as a power of two.
type TileScale uint8

// Supported tile sizes.
const (
	TileScaleEight     TileScale = 3
	TileScaleSixteen   TileScale = 4
	TileScaleThirtyTwo TileScale = 5
)

// Pixels returns the tile edge length in pixels.
func (s TileScale) Pixels() int { return 1 << s }

// TileMap is a grid of tile indices together with the tileset that renders them.
type TileMap struct {
	Width  uint16
	Height uint16

	// Data holds one tile index per cell in row-major order. A nil Data marks
	// a map with no index buffer; writing it is a no-op.
	Data []byte

	// Tileset maps indices to images. It is supplied by the caller on read and
	// is never persisted.
	Tileset []image.Image

	Scale TileScale
}

// NewTileMap returns a blank width x height map.
func NewTileMap(width, height uint16, tileset []image.Image, scale TileScale) *TileMap {
	return &TileMap{
		Width:   width,
		Height:  height,
		Data:    make([]byte, int(width)*int(height)),
		Tileset: tileset,
		Scale:   scale,
	}
}

// At returns the tile index at column col, row row.
func (m *TileMap) At(col, row int) (byte, bool) {
	if col < 0 || row < 0 || col >= int(m.Width) || row >= int(m.Height) {
		return 0, false
	}
	i := row*int(m.Width) + col
	if i >= len(m.Data) {
		return 0, false
	}
	return m.Data[i], true
}

// Set stores tile index idx at column col, row row.
func (m *TileMap) Set(col, row int, idx byte) bool {
	if col < 0 || row < 0 || col >= int(m.Width) || row >= int(m.Height) {
		return false
	}
	i := row*int(m.Width) + col
	if i >= len(m.Data) {
		return false
	}
	m.Data[i] = idx
	return true
}

// Image resolves the tile at col, row through the tileset. It returns nil when
// the cell is out of range or its index has no tileset entry.
func (m *TileMap) Image(col, row int) image.Image {
	idx, ok := m.At(col, row)
	if !ok || int(idx) >= len(m.Tileset) {
		return nil
	}
	return m.Tileset[idx]
}

// EncodeTilemap returns the hex form of m. It fails with ErrNoTileData when m
// has no index buffer and with ErrTileDataShort when the buffer holds fewer
// than Width*Height indices.
func EncodeTilemap(m *TileMap) (string, error) {
	if m == nil || m.Data == nil {
		return "", ErrNoTileData
	}
	if need := uint64(m.Width) * uint64(m.Height); uint64(len(m.Data)) < need {
		return "", fmt.Errorf("%w: %dx%d tilemap needs %d index bytes, got %d", ErrTileDataShort, m.Width, m.Height, need, len(m.Data))
	}
	buf := make([]byte, tilemapHeaderSize+len(m.Data))
	binary.LittleEndian.PutUint16(buf[0:2], m.Width)
	binary.LittleEndian.PutUint16(buf[2:4], m.Height)
	copy(buf[tilemapHeaderSize:], m.Data)
	return hex.EncodeToString(buf), nil
}

// DecodeTilemap rebuilds a map from its hex form. The tileset must list images
// in the order used when the map was written; that cannot be verified here.
func DecodeTilemap(encoded string, tileset []image.Image, scale TileScale) (*TileMap, error) {
	buf, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrCorruptValue, err)
	}
	if len(buf) < tilemapHeaderSize {
		return nil, fmt.Errorf("%w: tilemap header needs %d bytes, got %d", ErrCorruptValue, tilemapHeaderSize, len(buf))
	}

	w := binary.LittleEndian.Uint16(buf[0:2])
	h := binary.LittleEndian.Uint16(buf[2:4])
	cells := buf[tilemapHeaderSize:]
	if need := uint64(w) * uint64(h); uint64(len(cells)) < need {
		return nil, fmt.Errorf("%w: %dx%d tilemap needs %d index bytes, got %d", ErrCorruptValue, w, h, need, len(cells))
	}

	m := NewTileMap(w, h, tileset, scale)
	copy(m.Data, cells)
	return m, nil
}

// WriteTilemap stores m under key. A map without an index buffer is skipped
// silently; a map whose buffer is shorter than its dimensions is rejected.
func (c *Client) WriteTilemap(key string, m *TileMap) error {
	encoded, err := EncodeTilemap(m)
	if errors.Is(err, ErrNoTileData) {
		c.log.Debug("tilemap has no index data, write skipped", "key", key)
		return nil
	}
	if err != nil {
		return err
	}
	return c.store.WriteString(key, encoded)
}

// ReadTilemap returns the map stored under key, or nil if key is absent.
// A zero scale falls back to the configured TileScale.
func (c *Client) ReadTilemap(key string, tileset []image.Image, scale TileScale) (*TileMap, error) {
	v, ok, err := c.read(key)
	if err != nil || !ok {
		return nil, err
	}
	if scale == 0 {
		scale = c.tileScale
	}
	m, err := DecodeTilemap(v, tileset, scale)
	if err != nil {
		c.corrupt(key, "tilemap", err)
		return nil, err
	}
	return m, nil
}
