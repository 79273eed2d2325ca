/*
Package hostmock provides a pretend host for waPC calls.

It validates what a capability client sends to the host without a real host
running. A Mock checks routing (namespace, capability and function), runs an
optional payload validator, and answers with scripted bytes or a failure.

# Single function

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "kvstore",
	  ExpectedFunction:   "get",
	  Response:           func() []byte { return resp },
	})

# Several functions

Handlers routes by function name, which lets one Mock stand in for a whole
capability (for example a stateful kvstore backed by a map):

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedCapability: "kvstore",
	  Handlers: map[string]hostmock.Handler{
	    "get": func(p []byte) ([]byte, error) { ... },
	    "set": func(p []byte) ([]byte, error) { ... },
	  },
	})

# Behavior

  - Every call is appended to Mock.Calls before any check runs.
  - If Fail is true, HostCall returns Error, or ErrOperationFailed when Error is nil.
  - Blank expectations are wildcards; only the values you set are enforced.
  - With Handlers set, ExpectedFunction and Response are ignored.
*/
package hostmock
