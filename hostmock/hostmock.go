package hostmock

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Handler answers a single routed host call with response bytes or an error.
type Handler func(payload []byte) ([]byte, error)

// Call records a host invocation received by the mock.
type Call struct {
	Namespace  string
	Capability string
	Function   string
	Payload    []byte
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	// Ignored when Handlers is set.
	ExpectedFunction string

	// Handlers routes calls by function name. A function missing from the map
	// fails with ErrUnexpectedFunction.
	Handlers map[string]Handler

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// Mock simulates a host call interface with validation and configurable responses.
type Mock struct {
	cfg Config

	// Calls stores every invocation in order, including rejected ones.
	Calls []Call
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	handlers := make(map[string]Handler, len(config.Handlers))
	for fn, h := range config.Handlers {
		if h == nil {
			return nil, fmt.Errorf("handler for function %q is nil", fn)
		}
		handlers[fn] = h
	}
	if len(handlers) > 0 {
		config.Handlers = handlers
	}
	return &Mock{cfg: config}, nil
}

// HostCall simulates a host call, validating inputs and returning a response or error.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.Calls = append(m.Calls, Call{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    append([]byte(nil), payload...),
	})

	if m.cfg.Fail {
		if m.cfg.Error != nil {
			return nil, m.cfg.Error
		}
		return nil, ErrOperationFailed
	}

	// Blank expectations act as wildcards
	if m.cfg.ExpectedNamespace != "" && m.cfg.ExpectedNamespace != namespace {
		return nil, fmt.Errorf("%w: expected namespace %s, got %s", ErrUnexpectedNamespace, m.cfg.ExpectedNamespace, namespace)
	}
	if m.cfg.ExpectedCapability != "" && m.cfg.ExpectedCapability != capability {
		return nil, fmt.Errorf("%w: expected capability %s, got %s", ErrUnexpectedCapability, m.cfg.ExpectedCapability, capability)
	}

	if m.cfg.PayloadValidator != nil {
		if err := m.cfg.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	if m.cfg.Handlers != nil {
		h, ok := m.cfg.Handlers[function]
		if !ok {
			return nil, fmt.Errorf("%w: no handler for function %s", ErrUnexpectedFunction, function)
		}
		return h(payload)
	}

	if m.cfg.ExpectedFunction != "" && m.cfg.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.cfg.ExpectedFunction, function)
	}

	if m.cfg.Response != nil {
		return m.cfg.Response(), nil
	}
	return nil, nil
}

// CallsTo returns the recorded calls made to the named function.
func (m *Mock) CallsTo(function string) []Call {
	var out []Call
	for _, c := range m.Calls {
		if c.Function == function {
			out = append(out, c)
		}
	}
	return out
}
