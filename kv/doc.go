/*
Package kv provides a client for the host key-value capability from
WebAssembly guest functions.

The client serializes requests with protobuf messages, forwards them to the
host with waPC, and validates the status carried in every response. Zero-value
Config options fall back to host.DefaultNamespace and the default waPC host
call.

Construct a Client with New, then invoke Set, Get, Delete and Keys. Tests can
inject host behaviour through Config.HostCall (see hostmock) or replace the
whole client with the in-memory kv/mock package.
*/
package kv
