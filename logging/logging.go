package logging

import (
	"fmt"
	"strings"

	"github.com/tarmac-project/settings/host"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "logging"

// missingValue pads an odd trailing key in keysAndValues.
const missingValue = "(MISSING)"

// Client exposes convenience helpers for sending log entries to the host runtime.
// keysAndValues are alternating key/value pairs appended to the message.
type Client interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
	Trace(msg string, keysAndValues ...any)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig host.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall host.HostCall
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime  host.RuntimeConfig
	hostCall host.HostCall
}

// New creates a Client that emits logs through the configured host capability.
func New(cfg Config) (Client, error) {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:  cfg.SDKConfig.WithDefaults(),
		hostCall: hostCall,
	}, nil
}

func (c *client) Info(msg string, kv ...any)  { c.log("Info", msg, kv) }
func (c *client) Warn(msg string, kv ...any)  { c.log("Warn", msg, kv) }
func (c *client) Error(msg string, kv ...any) { c.log("Error", msg, kv) }
func (c *client) Debug(msg string, kv ...any) { c.log("Debug", msg, kv) }
func (c *client) Trace(msg string, kv ...any) { c.log("Trace", msg, kv) }

// Logging is fire-and-forget; host failures are dropped.
func (c *client) log(fn string, msg string, kv []any) {
	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, fn, []byte(Format(msg, kv...)))
}

// Format renders msg followed by space separated key=value pairs. Values
// containing spaces or quotes are quoted.
func Format(msg string, keysAndValues ...any) string {
	if len(keysAndValues) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		var v any = missingValue
		if i+1 < len(keysAndValues) {
			v = keysAndValues[i+1]
		}
		val := fmt.Sprint(v)
		if val == "" || strings.ContainsAny(val, " \t\n\"=") {
			val = fmt.Sprintf("%q", val)
		}
		fmt.Fprintf(&b, " %v=%s", keysAndValues[i], val)
	}
	return b.String()
}

type noop struct{}

func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}
func (noop) Debug(string, ...any) {}
func (noop) Trace(string, ...any) {}

// Noop returns a Client that discards every entry.
func Noop() Client { return noop{} }
