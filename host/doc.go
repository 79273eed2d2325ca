/*
Package host holds the runtime configuration and error values shared by the
capability clients in this module.

Clients such as kv and logging accept a RuntimeConfig and fall back to
DefaultNamespace when the namespace is empty. Host invocations share the
HostCall signature so tests can substitute hostmock.Mock.HostCall for the real
waPC entry point.
*/
package host
