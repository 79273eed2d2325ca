/*
Package mock provides an in-memory implementation of the kv.KV interface.

It can be pre-seeded with data, configured with per-operation overrides, and
it records calls for assertions in tests.

	m := mock.New(mock.Config{Seed: map[string][]byte{"a": []byte("1")}})
	m.OnGet("broken").ReturnValue([]byte("zz"))
	m.OnSet("full").ReturnError(errors.New("quota exceeded"))
	m.OnKeys().ReturnKeys([]string{"x", "y"})

	for _, c := range m.Calls {
		// c.Op, c.Key, c.Value
	}

Keys are reported sorted unless Config.KeyOrder is set, in which case they
follow insertion order the way a host store might.
*/
package mock
