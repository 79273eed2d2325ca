package host

import "errors"

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "tarmac"

// HostCall defines the waPC host function signature shared by capability clients.
type HostCall func(namespace, capability, function string, payload []byte) ([]byte, error)

// RuntimeConfig carries configuration that is used during creation of capability clients.
type RuntimeConfig struct {
	// Namespace is the function namespace used to scope host interactions.
	Namespace string
}

// WithDefaults returns a copy of the runtime configuration with empty fields filled in.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	return c
}

var (
	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host returned an invalid or unexpected payload.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrHostError means the host completed the call but reported a failure status.
	ErrHostError = errors.New("host returned an error status")
)
