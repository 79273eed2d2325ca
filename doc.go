/*
Package settings layers richer value types over a string-only key/value
settings store.

The host store only keeps strings. This package encodes tilemaps, string
arrays and boolean arrays into single string values, adds read-or-default
helpers for scalar settings, and reports storage diagnostics.

	store := settings.NewKVStore(kvClient)
	s, err := settings.New(settings.Config{Store: store})
	if err != nil {
		return err
	}
	if err := s.WriteBooleanArray("unlocked", []bool{true, false, true}); err != nil {
		return err
	}
	flags, err := s.ReadBooleanArray("unlocked")
	if err != nil {
		return err
	}
	fmt.Println(flags) // [true false true]

# Encodings

  - Tilemap: lowercase hex of [uint16-LE width][uint16-LE height][row-major tile indices].
  - String array: a JSON array of strings.
  - Boolean array: lowercase hex of [uint16-LE count][flags, LSB first, 8 per byte].

Absent keys are not errors: readers return nil tilemaps, empty slices or the
supplied fallback. Stored values that cannot be decoded fail with
ErrCorruptValue. Nothing is cached; every call goes to the Store.
*/
package settings
