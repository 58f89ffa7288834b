// Package vfs layers a virtual filesystem with device-prefixed paths on top
// of the stateless filesystem-proxy service defined in common/fsp. A Client
// owns the proxy session and an ordered mount table mapping root segments
// like "sdmc:" to service filesystem objects. Paths of the form
// "device:/a/b/c" are segmented, routed to the mounted device named by their
// first segment, and repacked into the service-local form before each call.
//
// File and Directory wrap the per-open service objects with the cursor
// semantics the service itself does not provide: files get seek/read/write
// over an explicit byte offset, directories get lazily paged iteration over
// an entry-count snapshot taken at open time.
package vfs
