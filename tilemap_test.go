package settings_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarmac-project/settings"
)

func testTileset() []image.Image {
	colors := []color.Color{color.Black, color.White, color.RGBA{R: 255, A: 255}}
	tiles := make([]image.Image, len(colors))
	for i, c := range colors {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		img.Set(0, 0, c)
		tiles[i] = img
	}
	return tiles
}

func TestTilemapRoundTrip(t *testing.T) {
	tileset := testTileset()

	tt := []struct {
		name   string
		width  uint16
		height uint16
	}{
		{"single cell", 1, 1},
		{"square", 10, 10},
		{"wide", 300, 2},
		{"tall", 1, 513},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m := settings.NewTileMap(tc.width, tc.height, tileset, settings.TileScaleSixteen)
			for row := 0; row < int(tc.height); row++ {
				for col := 0; col < int(tc.width); col++ {
					require.True(t, m.Set(col, row, byte((row*7+col)%len(tileset))))
				}
			}

			c, _, _ := newClient(t, nil)
			require.NoError(t, c.WriteTilemap("level", m))

			got, err := c.ReadTilemap("level", tileset, settings.TileScaleEight)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.width, got.Width)
			assert.Equal(t, tc.height, got.Height)
			assert.Equal(t, m.Data, got.Data)
			assert.Equal(t, settings.TileScaleEight, got.Scale)
			assert.Same(t, tileset[m.Data[0]], got.Image(0, 0))
		})
	}
}

func TestEncodeTilemapLayout(t *testing.T) {
	m := settings.NewTileMap(3, 2, nil, 0)
	copy(m.Data, []byte{0, 1, 2, 3, 4, 5})

	encoded, err := settings.EncodeTilemap(m)
	require.NoError(t, err)
	assert.Equal(t, "03000200"+"000102030405", encoded)

	big := settings.NewTileMap(0x0102, 0, nil, 0)
	encoded, err = settings.EncodeTilemap(big)
	require.NoError(t, err)
	assert.Equal(t, "02010000", encoded)
}

func TestEncodeTilemapErrors(t *testing.T) {
	tt := []struct {
		name    string
		m       *settings.TileMap
		wantErr error
	}{
		{name: "nil map", m: nil, wantErr: settings.ErrNoTileData},
		{name: "nil data", m: &settings.TileMap{Width: 2, Height: 2}, wantErr: settings.ErrNoTileData},
		{name: "short data", m: &settings.TileMap{Width: 3, Height: 3, Data: []byte{1, 2}}, wantErr: settings.ErrTileDataShort},
		{name: "empty data", m: &settings.TileMap{Width: 1, Height: 1, Data: []byte{}}, wantErr: settings.ErrTileDataShort},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := settings.EncodeTilemap(tc.m)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, encoded)
		})
	}
}

func TestWriteTilemapShortData(t *testing.T) {
	c, store, _ := newClient(t, nil)

	err := c.WriteTilemap("level", &settings.TileMap{Width: 3, Height: 3, Data: []byte{1, 2}})
	assert.ErrorIs(t, err, settings.ErrTileDataShort)
	assert.Equal(t, 0, store.Len(), "a map the reader would reject must not be stored")

	got, err := c.ReadTilemap("level", nil, 0)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWriteTilemapExtraDataRoundTrips(t *testing.T) {
	c, _, _ := newClient(t, nil)
	require.NoError(t, c.WriteTilemap("level", &settings.TileMap{Width: 2, Height: 1, Data: []byte{4, 5, 6}}))

	got, err := c.ReadTilemap("level", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, got.Data)
}

func TestWriteTilemapWithoutData(t *testing.T) {
	tt := map[string]*settings.TileMap{
		"nil map":  nil,
		"nil data": {Width: 4, Height: 4},
	}

	for name, m := range tt {
		t.Run(name, func(t *testing.T) {
			c, store, log := newClient(t, nil)
			require.NoError(t, c.WriteTilemap("level", m))
			assert.Equal(t, 0, store.Len())
			require.Len(t, log.entries, 1)
			assert.Equal(t, "Debug", log.entries[0].level)
		})
	}
}

func TestReadTilemapAbsent(t *testing.T) {
	c, _, _ := newClient(t, nil)
	got, err := c.ReadTilemap("missing", testTileset(), settings.TileScaleSixteen)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadTilemapDefaultScale(t *testing.T) {
	c, _, _ := newClient(t, map[string][]byte{"level": []byte("0100010007")})
	got, err := c.ReadTilemap("level", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, settings.TileScaleSixteen, got.Scale)
	assert.Equal(t, 16, got.Scale.Pixels())

	idx, ok := got.At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, byte(7), idx)
	assert.Nil(t, got.Image(0, 0), "index 7 has no tileset entry")
}

func TestDecodeTilemapCorrupt(t *testing.T) {
	tt := map[string]string{
		"bad hex":        "xx000100",
		"short header":   "0100",
		"empty":          "",
		"missing cells":  "02000200" + "0000",
		"max dimensions": "ffffffff" + "00",
	}

	for name, raw := range tt {
		t.Run(name, func(t *testing.T) {
			got, err := settings.DecodeTilemap(raw, nil, settings.TileScaleSixteen)
			assert.ErrorIs(t, err, settings.ErrCorruptValue)
			assert.Nil(t, got)
		})
	}
}

func TestReadTilemapCorruptIsLogged(t *testing.T) {
	c, _, log := newClient(t, map[string][]byte{"level": []byte("0200020000")})
	got, err := c.ReadTilemap("level", nil, 0)
	assert.ErrorIs(t, err, settings.ErrCorruptValue)
	assert.Nil(t, got)
	require.Len(t, log.entries, 1)
	assert.Equal(t, "Warn", log.entries[0].level)
}

func TestTileMapBounds(t *testing.T) {
	m := settings.NewTileMap(2, 2, nil, 0)

	_, ok := m.At(2, 0)
	assert.False(t, ok)
	_, ok = m.At(0, -1)
	assert.False(t, ok)
	assert.False(t, m.Set(0, 2, 1))
	assert.True(t, m.Set(1, 1, 9))

	idx, ok := m.At(1, 1)
	assert.True(t, ok)
	assert.Equal(t, byte(9), idx)
	assert.Equal(t, byte(9), m.Data[3])
}

func TestDecodeTilemapKeepsExtraBytesOut(t *testing.T) {
	got, err := settings.DecodeTilemap("01000100"+"05"+"ffff", nil, settings.TileScaleSixteen)
	require.NoError(t, err)
	assert.Equal(t, []byte{5}, got.Data)
}
