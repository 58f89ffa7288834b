// Package fsp defines the client surface of the remote filesystem-proxy
// service: the session object handed out at initialization time, the
// filesystem objects issued per device, and the file/directory sub-objects
// issued per open. All calls are synchronous request/response round-trips and
// the service keeps no cursor state for files; callers pass explicit offsets.
//
// The package also ships an in-process implementation of the service backed
// by afero (NewMemoryProvider, NewLocalProvider) so applications and tests
// can run without a reachable service.
package fsp
