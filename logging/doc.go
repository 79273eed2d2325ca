/*
Package logging offers a client for emitting log entries from WebAssembly
functions to the host runtime.

The Client interface has one method per log level (Info, Warn, Error, Debug,
Trace). Each takes a message and optional key/value pairs which are rendered
into a single line before the host call:

	log.Warn("stored value is corrupt", "key", "flags", "kind", "booleans")
	// stored value is corrupt key=flags kind=booleans

Noop returns a Client that discards everything, used when a caller does not
configure logging.
*/
package logging
