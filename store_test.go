package settings_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarmac-project/settings"
	"github.com/tarmac-project/settings/kv"
	kvmock "github.com/tarmac-project/settings/kv/mock"
)

func TestKVStore(t *testing.T) {
	m := kvmock.New(kvmock.Config{})
	s := settings.NewKVStore(m)

	ok, err := s.Exists("a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.WriteString("a", ""))
	ok, err = s.Exists("a")
	require.NoError(t, err)
	assert.True(t, ok, "empty values still exist")

	v, err := s.ReadString("a")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = s.ReadString("missing")
	assert.ErrorIs(t, err, settings.ErrNotFound)
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	require.NoError(t, s.Remove("a"))
	require.NoError(t, s.Remove("a"), "removing an absent key is not an error")
	assert.Equal(t, 0, m.Len())

	m.OnGet("down").ReturnError(errStore)
	_, err = s.Exists("down")
	assert.ErrorIs(t, err, errStore)
	_, err = s.ReadString("down")
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, settings.ErrNotFound)

	m.OnDelete("locked").ReturnError(errStore)
	assert.ErrorIs(t, s.Remove("locked"), errStore)
}

func TestKVStoreNumbers(t *testing.T) {
	s := settings.NewKVStore(kvmock.New(kvmock.Config{}))

	for _, n := range []float64{0, -1, 3.25, 1e21, math.MaxFloat64, 0.1} {
		require.NoError(t, s.WriteNumber("n", n))
		got, err := s.ReadNumber("n")
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	require.NoError(t, s.WriteString("n", "twelve"))
	_, err := s.ReadNumber("n")
	assert.ErrorIs(t, err, settings.ErrNotNumber)

	_, err = s.ReadNumber("missing")
	assert.ErrorIs(t, err, settings.ErrNotFound)
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestKVStoreList(t *testing.T) {
	m := kvmock.New(kvmock.Config{})
	m.OnKeys().ReturnKeys([]string{"b.2", "a.1", "b.1", "c"})
	s := settings.NewKVStore(m)

	got, err := s.List("b.")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.2", "b.1"}, got, "store order is preserved")

	got, err = s.List("")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}
